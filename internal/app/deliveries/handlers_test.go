package deliveries

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	json "github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/safatanc/course-library/internal/app/services"
	"github.com/safatanc/course-library/internal/infrastructures"
	"github.com/safatanc/course-library/pkg/paging"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	authorColumns = []string{"id", "first_name", "last_name", "date_of_birth", "date_of_death", "main_category", "created_at", "updated_at"}
	courseColumns = []string{"id", "title", "description", "author_id", "created_at", "updated_at"}
)

func newTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}

	registry, err := services.NewPropertyMappingRegistry()
	if err != nil {
		t.Fatalf("unexpected registry error: %v", err)
	}
	validator := infrastructures.NewValidator()
	config := &infrastructures.AppConfig{DEFAULT_PAGE_SIZE: 10, MAX_PAGE_SIZE: 20}

	authorService := services.NewAuthorService(db, validator, registry)
	courseService := services.NewCourseService(db, validator, registry, authorService)

	app := fiber.New(fiber.Config{
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})
	NewRootHandler().RegisterRoutes(app)
	NewAuthorHandler(authorService, registry, config).RegisterRoutes(app)
	NewAuthorCollectionHandler(authorService).RegisterRoutes(app)
	NewCourseHandler(courseService, registry).RegisterRoutes(app)

	return app, mock
}

func doRequest(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, target, err)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}

	var decoded map[string]any
	if strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("failed to decode %q: %v", raw, err)
		}
	}
	return resp, decoded
}

func TestGetRootLinks(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doRequest(t, app, fiber.MethodGet, "/api", "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	links := body["data"].([]any)
	if len(links) != 3 {
		t.Fatalf("expected 3 links, got %v", links)
	}
	first := links[0].(map[string]any)
	if first["href"] != "http://example.com/api" || first["rel"] != "self" {
		t.Fatalf("unexpected self link: %v", first)
	}
}

func TestGetAuthorsRejectsInvalidQuery(t *testing.T) {
	app, mock := newTestApp(t)

	tests := []string{
		"/api/authors?orderBy=dateOfBirth",
		"/api/authors?fields=id,firstName",
		"/api/authors?pageNumber=abc",
	}
	for _, target := range tests {
		resp, body := doRequest(t, app, fiber.MethodGet, target, "")
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, resp.StatusCode)
		}
		if body["success"] != false {
			t.Errorf("%s: expected error envelope, got %v", target, body)
		}
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no query should run: %v", err)
	}
}

func TestGetAuthorsShapesAndPages(t *testing.T) {
	app, mock := newTestApp(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "authors"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT \* FROM "authors" ORDER BY "first_name","last_name"`).
		WillReturnRows(sqlmock.NewRows(authorColumns).
			AddRow(uuid.NewString(), "Ada", "Lovelace", time.Date(1815, time.December, 10, 0, 0, 0, 0, time.UTC), nil, "Mathematics", now, now))

	resp, body := doRequest(t, app, fiber.MethodGet, "/api/authors?fields=id,name&pageSize=1", "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %v", resp.StatusCode, body)
	}

	var metadata paging.Metadata
	if err := json.UnmarshalString(resp.Header.Get("X-Pagination"), &metadata); err != nil {
		t.Fatalf("invalid pagination header: %v", err)
	}
	if metadata.TotalCount != 2 || metadata.TotalPages != 2 || metadata.CurrentPage != 1 || metadata.PageSize != 1 {
		t.Fatalf("unexpected metadata: %+v", metadata)
	}
	if metadata.PreviousPageLink != "" {
		t.Fatalf("first page has no previous link, got %q", metadata.PreviousPageLink)
	}
	if !strings.Contains(metadata.NextPageLink, "pageNumber=2") || !strings.Contains(metadata.NextPageLink, "fields=id%2Cname") {
		t.Fatalf("unexpected next link: %q", metadata.NextPageLink)
	}

	data := body["data"].(map[string]any)
	authors := data["value"].([]any)
	if len(authors) != 1 {
		t.Fatalf("expected one author, got %v", authors)
	}
	author := authors[0].(map[string]any)
	if author["name"] != "Ada Lovelace" {
		t.Fatalf("unexpected author: %v", author)
	}
	if _, ok := author["age"]; ok {
		t.Fatal("age was not requested")
	}
	if _, ok := author["links"]; !ok {
		t.Fatal("expected author links")
	}
	if links := data["links"].([]any); len(links) != 2 {
		t.Fatalf("expected self and next links, got %v", links)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetAuthorsOptions(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doRequest(t, app, fiber.MethodOptions, "/api/authors", "")
	if resp.StatusCode != fiber.StatusOK || resp.Header.Get(fiber.HeaderAllow) != "GET,OPTIONS,POST" {
		t.Fatalf("unexpected options response: %d %q", resp.StatusCode, resp.Header.Get(fiber.HeaderAllow))
	}
}

func TestGetAuthorNotFound(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(`SELECT \* FROM "authors" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(authorColumns))

	resp, body := doRequest(t, app, fiber.MethodGet, "/api/authors/"+uuid.NewString(), "")
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	if body["message"] != "Author not found" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestCreateAuthorSetsLocation(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "authors"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	payload := `{"firstName":"James","lastName":"Ellroy","dateOfBirth":"1948-03-04T00:00:00Z","mainCategory":"Thrillers"}`
	resp, body := doRequest(t, app, fiber.MethodPost, "/api/authors", payload)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d: %v", resp.StatusCode, body)
	}

	data := body["data"].(map[string]any)
	if resp.Header.Get(fiber.HeaderLocation) != "http://example.com/api/authors/"+data["id"].(string) {
		t.Fatalf("unexpected location %q", resp.Header.Get(fiber.HeaderLocation))
	}
	if data["name"] != "James Ellroy" {
		t.Fatalf("unexpected author: %v", data)
	}
}

func TestGetAuthorCollectionRejectsInvalidIds(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doRequest(t, app, fiber.MethodGet, "/api/authorcollections/(abc,def)", "")
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestUpdateCourseUpserts(t *testing.T) {
	app, mock := newTestApp(t)
	authorId, courseId := uuid.New(), uuid.New()
	target := "/api/authors/" + authorId.String() + "/courses/" + courseId.String()
	payload := `{"title":"Sailing","description":"Open water"}`
	now := time.Now()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "authors"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "courses"`).
		WillReturnRows(sqlmock.NewRows(courseColumns))
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "courses"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp, _ := doRequest(t, app, fiber.MethodPut, target, payload)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201 on create, got %d", resp.StatusCode)
	}
	if resp.Header.Get(fiber.HeaderLocation) != "http://example.com"+target {
		t.Fatalf("unexpected location %q", resp.Header.Get(fiber.HeaderLocation))
	}

	mock.ExpectQuery(`SELECT count\(\*\) FROM "authors"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "courses"`).
		WillReturnRows(sqlmock.NewRows(courseColumns).
			AddRow(courseId.String(), "Old", "Old description", authorId.String(), now, now))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "courses" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp, _ = doRequest(t, app, fiber.MethodPut, target, payload)
	if resp.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204 on update, got %d", resp.StatusCode)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateCourseValidation(t *testing.T) {
	app, _ := newTestApp(t)

	target := "/api/authors/" + uuid.NewString() + "/courses"
	resp, _ := doRequest(t, app, fiber.MethodPost, target, `{"title":"Same","description":"Same"}`)
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}
}
