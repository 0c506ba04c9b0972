package infrastructures

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	appError "github.com/safatanc/course-library/internal/app/errors"
	"github.com/safatanc/course-library/internal/app/models"
)

func statusOf(err error) int {
	var appErr *appError.AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return 0
}

func TestValidatorCourseRules(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name   string
		req    *models.CourseCreateRequest
		status int
	}{
		{"valid", &models.CourseCreateRequest{Title: "Go", Description: "Learn Go"}, 0},
		{"missing title", &models.CourseCreateRequest{Description: "Learn Go"}, http.StatusUnprocessableEntity},
		{"title equals description", &models.CourseCreateRequest{Title: "Go", Description: "Go"}, http.StatusUnprocessableEntity},
		{"title too long", &models.CourseCreateRequest{Title: strings.Repeat("x", 101), Description: "Learn"}, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		err := v.Validate(tt.req)
		if got := statusOf(err); got != tt.status {
			t.Errorf("%s: expected status %d, got %d (%v)", tt.name, tt.status, got, err)
		}
	}
}

func TestValidatorDivesIntoAuthorCourses(t *testing.T) {
	v := NewValidator()

	req := &models.AuthorCreateRequest{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		DateOfBirth:  time.Date(1815, time.December, 10, 0, 0, 0, 0, time.UTC),
		MainCategory: "Mathematics",
		Courses:      []models.CourseCreateRequest{{Title: "Same", Description: "Same"}},
	}

	if got := statusOf(v.Validate(req)); got != http.StatusUnprocessableEntity {
		t.Fatalf("expected nested course rule to fail, got status %d", got)
	}

	req.Courses[0].Description = "Different"
	if err := v.Validate(req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidatorNilBody(t *testing.T) {
	if got := statusOf(NewValidator().Validate(nil)); got != http.StatusBadRequest {
		t.Fatalf("expected bad request, got %d", got)
	}
}
