package deliveries

import (
	json "github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/safatanc/course-library/internal/app/errors"
	"github.com/safatanc/course-library/internal/app/models"
	"github.com/safatanc/course-library/internal/app/pkg"
	"github.com/safatanc/course-library/internal/app/services"
	"github.com/safatanc/course-library/internal/infrastructures"
	"github.com/safatanc/course-library/pkg/propertymapping"
	"github.com/safatanc/course-library/pkg/shaping"
)

type AuthorHandler struct {
	authorService *services.AuthorService
	mappings      *propertymapping.Registry
	config        *infrastructures.AppConfig
}

func NewAuthorHandler(authorService *services.AuthorService, mappings *propertymapping.Registry, config *infrastructures.AppConfig) *AuthorHandler {
	return &AuthorHandler{
		authorService: authorService,
		mappings:      mappings,
		config:        config,
	}
}

func (h *AuthorHandler) RegisterRoutes(router fiber.Router) {
	authorGroup := router.Group("/api/authors")

	authorGroup.Get("/", h.GetAuthors)
	authorGroup.Post("/", h.CreateAuthor)
	authorGroup.Options("/", h.GetAuthorsOptions)
	authorGroup.Get("/:authorId", h.GetAuthor)
	authorGroup.Delete("/:authorId", h.DeleteAuthor)
}

func (h *AuthorHandler) GetAuthors(c *fiber.Ctx) error {
	var params models.AuthorsResourceParameters
	if err := c.QueryParser(&params); err != nil {
		return pkg.ErrorResponse(c, errors.NewBadRequestError("Invalid query parameters"))
	}

	if !propertymapping.MappingExistsFor[models.AuthorDto, models.Author](h.mappings, params.OrderBy) {
		return pkg.ErrorResponse(c, errors.NewBadRequestError("Invalid orderBy: "+params.OrderBy))
	}
	if !models.AuthorDtoFields.HasFields(params.Fields) {
		return pkg.ErrorResponse(c, errors.NewBadRequestError("Invalid fields: "+params.Fields))
	}

	params.ApplyDefaults(h.config.DEFAULT_PAGE_SIZE, h.config.MAX_PAGE_SIZE)

	page, err := h.authorService.GetAuthors(c.UserContext(), &params)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	metadata := page.Metadata()
	if page.HasPrevious() {
		metadata.PreviousPageLink = authorsPageLink(c, &params, page.CurrentPage-1)
	}
	if page.HasNext() {
		metadata.NextPageLink = authorsPageLink(c, &params, page.CurrentPage+1)
	}

	header, err := json.MarshalString(metadata)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}
	c.Set("X-Pagination", header)

	shaped := make([]*shaping.Object, 0, len(page.Items))
	for _, author := range page.Items {
		dto := author.ToDto()
		obj, err := models.AuthorDtoFields.Shape(dto, params.Fields)
		if err != nil {
			return pkg.ErrorResponse(c, errors.NewBadRequestError(err.Error()))
		}
		obj.Set("links", authorLinks(c, dto.ID, ""))
		shaped = append(shaped, obj)
	}

	links := []models.LinkDto{
		{Href: authorsPageLink(c, &params, page.CurrentPage), Rel: "self", Method: fiber.MethodGet},
	}
	if metadata.PreviousPageLink != "" {
		links = append(links, models.LinkDto{Href: metadata.PreviousPageLink, Rel: "previousPage", Method: fiber.MethodGet})
	}
	if metadata.NextPageLink != "" {
		links = append(links, models.LinkDto{Href: metadata.NextPageLink, Rel: "nextPage", Method: fiber.MethodGet})
	}

	return pkg.SuccessResponse(c, models.LinkedCollection[*shaping.Object]{
		Value: shaped,
		Links: links,
	})
}

func (h *AuthorHandler) GetAuthor(c *fiber.Ctx) error {
	fields := c.Query("fields")
	if !models.AuthorDtoFields.HasFields(fields) {
		return pkg.ErrorResponse(c, errors.NewBadRequestError("Invalid fields: "+fields))
	}

	author, err := h.authorService.GetAuthor(c.UserContext(), c.Params("authorId"))
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	dto := author.ToDto()
	obj, err := models.AuthorDtoFields.Shape(dto, fields)
	if err != nil {
		return pkg.ErrorResponse(c, errors.NewBadRequestError(err.Error()))
	}
	obj.Set("links", authorLinks(c, dto.ID, fields))

	return pkg.SuccessResponse(c, obj)
}

func (h *AuthorHandler) CreateAuthor(c *fiber.Ctx) error {
	var req models.AuthorCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, errors.NewBadRequestError("Invalid request body"))
	}

	author, err := h.authorService.CreateAuthor(c.UserContext(), &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	dto := author.ToDto()
	obj, err := models.AuthorDtoFields.Shape(dto, "")
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}
	obj.Set("links", authorLinks(c, dto.ID, ""))

	return pkg.CreatedResponse(c, c.BaseURL()+authorPath(dto.ID), obj)
}

func (h *AuthorHandler) DeleteAuthor(c *fiber.Ctx) error {
	if err := h.authorService.DeleteAuthor(c.UserContext(), c.Params("authorId")); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.NoContentResponse(c)
}

func (h *AuthorHandler) GetAuthorsOptions(c *fiber.Ctx) error {
	c.Set(fiber.HeaderAllow, "GET,OPTIONS,POST")
	return c.SendStatus(fiber.StatusOK)
}
