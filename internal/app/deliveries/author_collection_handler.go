package deliveries

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/safatanc/course-library/internal/app/errors"
	"github.com/safatanc/course-library/internal/app/models"
	"github.com/safatanc/course-library/internal/app/pkg"
	"github.com/safatanc/course-library/internal/app/services"
	"github.com/samber/lo"
)

type AuthorCollectionHandler struct {
	authorService *services.AuthorService
}

func NewAuthorCollectionHandler(authorService *services.AuthorService) *AuthorCollectionHandler {
	return &AuthorCollectionHandler{
		authorService: authorService,
	}
}

func (h *AuthorCollectionHandler) RegisterRoutes(router fiber.Router) {
	collectionGroup := router.Group("/api/authorcollections")

	collectionGroup.Get("/:ids", h.GetAuthorCollection)
	collectionGroup.Post("/", h.CreateAuthorCollection)
}

// GetAuthorCollection accepts ids as "(id1,id2)" or "id1,id2"
func (h *AuthorCollectionHandler) GetAuthorCollection(c *fiber.Ctx) error {
	ids, err := pkg.ParseIDList(c.Params("ids"))
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	authors, err := h.authorService.GetAuthorCollection(c.UserContext(), ids)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, toAuthorDtos(authors))
}

func (h *AuthorCollectionHandler) CreateAuthorCollection(c *fiber.Ctx) error {
	var reqs []models.AuthorCreateRequest
	if err := c.BodyParser(&reqs); err != nil {
		return pkg.ErrorResponse(c, errors.NewBadRequestError("Invalid request body"))
	}

	authors, err := h.authorService.CreateAuthorCollection(c.UserContext(), reqs)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	ids := lo.Map(authors, func(author models.Author, _ int) uuid.UUID { return author.ID })
	location := c.BaseURL() + "/api/authorcollections/" + pkg.JoinIDs(ids)

	return pkg.CreatedResponse(c, location, toAuthorDtos(authors))
}

func toAuthorDtos(authors []models.Author) []models.AuthorDto {
	return lo.Map(authors, func(author models.Author, _ int) models.AuthorDto { return author.ToDto() })
}
