package injector

import (
	"github.com/gofiber/fiber/v2"
	"github.com/safatanc/course-library/internal/app/deliveries"
	"github.com/safatanc/course-library/internal/app/middlewares"
)

// Application represents the main application container for course-library
type Application struct {
	HealthHandler           *deliveries.HealthHandler
	RootHandler             *deliveries.RootHandler
	AuthorHandler           *deliveries.AuthorHandler
	AuthorCollectionHandler *deliveries.AuthorCollectionHandler
	CourseHandler           *deliveries.CourseHandler
	RateLimitMiddleware     *middlewares.RateLimitMiddleware
}

// RegisterRoutes registers all application routes using a Fiber router
func (app *Application) RegisterRoutes(router fiber.Router) {
	app.HealthHandler.RegisterRoutes(router)

	// Rate limit the public API, not the health probe
	router.Use("/api", app.RateLimitMiddleware.LimitByIP())

	app.RootHandler.RegisterRoutes(router)
	app.AuthorHandler.RegisterRoutes(router)
	app.AuthorCollectionHandler.RegisterRoutes(router)
	app.CourseHandler.RegisterRoutes(router)
}
