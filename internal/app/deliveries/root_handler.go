package deliveries

import (
	"github.com/gofiber/fiber/v2"
	"github.com/safatanc/course-library/internal/app/models"
	"github.com/safatanc/course-library/internal/app/pkg"
)

type RootHandler struct{}

func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

func (h *RootHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/api", h.GetRoot)
}

// GetRoot is the entry point of the API and lists the top-level links
func (h *RootHandler) GetRoot(c *fiber.Ctx) error {
	return pkg.SuccessResponse(c, []models.LinkDto{
		link(c, "/api", "self", fiber.MethodGet),
		link(c, "/api/authors", "authors", fiber.MethodGet),
		link(c, "/api/authors", "create_author", fiber.MethodPost),
	})
}
