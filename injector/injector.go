//go:build wireinject
// +build wireinject

package injector

import (
	"github.com/google/wire"
	"github.com/safatanc/course-library/internal/app/deliveries"
	"github.com/safatanc/course-library/internal/app/middlewares"
	"github.com/safatanc/course-library/internal/app/services"
	"github.com/safatanc/course-library/internal/infrastructures"
)

// Infrastructure providers
var infrastructureSet = wire.NewSet(
	infrastructures.NewDatabase,
	infrastructures.NewRedisClient,
	infrastructures.NewValidator,
	middlewares.NewLimiter,
)

// Service providers
var serviceSet = wire.NewSet(
	services.NewPropertyMappingRegistry,
	services.NewAuthorService,
	services.NewCourseService,
)

// Middleware providers
var middlewareSet = wire.NewSet(
	middlewares.NewRateLimitMiddleware,
)

// Handler providers
var handlerSet = wire.NewSet(
	deliveries.NewHealthHandler,
	deliveries.NewRootHandler,
	deliveries.NewAuthorHandler,
	deliveries.NewAuthorCollectionHandler,
	deliveries.NewCourseHandler,
	wire.Struct(new(Application), "*"),
)

// InitializeApplication initializes the application with all its dependencies
func InitializeApplication(config *infrastructures.AppConfig) (*Application, error) {
	wire.Build(
		infrastructureSet,
		serviceSet,
		middlewareSet,
		handlerSet,
	)
	return &Application{}, nil
}
