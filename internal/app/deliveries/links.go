package deliveries

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/safatanc/course-library/internal/app/models"
)

func link(c *fiber.Ctx, path, rel, method string) models.LinkDto {
	return models.LinkDto{
		Href:   c.BaseURL() + path,
		Rel:    rel,
		Method: method,
	}
}

func authorPath(authorId uuid.UUID) string {
	return "/api/authors/" + authorId.String()
}

func coursePath(authorId, courseId uuid.UUID) string {
	return authorPath(authorId) + "/courses/" + courseId.String()
}

func authorLinks(c *fiber.Ctx, authorId uuid.UUID, fields string) []models.LinkDto {
	self := authorPath(authorId)
	if fields != "" {
		self += "?" + url.Values{"fields": {fields}}.Encode()
	}

	return []models.LinkDto{
		link(c, self, "self", fiber.MethodGet),
		link(c, authorPath(authorId), "delete_author", fiber.MethodDelete),
		link(c, authorPath(authorId)+"/courses", "create_course_for_author", fiber.MethodPost),
		link(c, authorPath(authorId)+"/courses", "courses", fiber.MethodGet),
	}
}

func courseLinks(c *fiber.Ctx, authorId, courseId uuid.UUID) []models.LinkDto {
	path := coursePath(authorId, courseId)
	return []models.LinkDto{
		link(c, path, "self", fiber.MethodGet),
		link(c, path, "update_course", fiber.MethodPut),
		link(c, path, "partially_update_course", fiber.MethodPatch),
		link(c, path, "delete_course", fiber.MethodDelete),
	}
}

// authorsPageLink rebuilds the listing query for another page
func authorsPageLink(c *fiber.Ctx, params *models.AuthorsResourceParameters, pageNumber int) string {
	query := url.Values{}
	if params.Fields != "" {
		query.Set("fields", params.Fields)
	}
	if params.MainCategory != "" {
		query.Set("mainCategory", params.MainCategory)
	}
	if params.SearchQuery != "" {
		query.Set("searchQuery", params.SearchQuery)
	}
	query.Set("orderBy", params.OrderBy)
	query.Set("pageNumber", strconv.Itoa(pageNumber))
	query.Set("pageSize", strconv.Itoa(params.PageSize))

	return c.BaseURL() + "/api/authors?" + query.Encode()
}
