package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/nanduks/driver_logistics_app/cmd/docs"
	portssvc "github.com/nanduks/driver_logistics_app/internal/core/ports/services"
	"github.com/nanduks/driver_logistics_app/internal/middleware"
	"github.com/nanduks/driver_logistics_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	bearer portssvc.AuthStrategy,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public authentication routes
	registerAuthRoutes(r, services)
	registerGoogleAuthRoutes(r, services)

	// Admin routes guarded by configured admin credentials
	registerAdminUserRoutes(r, cfg, services.User)

	// Bearer-protected API
	setupAPIV1Routes(r, services, bearer)

	// Swagger routes (off in production)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to the entity route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	bearer portssvc.AuthStrategy,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(bearer))

	registerSessionRoutes(v1, services.Auth)
	registerUserRoutes(v1, services.User)
	registerVehicleRoutes(v1, services.Vehicle)
	registerOrderRoutes(v1, services.Order)
	registerLocationRoutes(v1, services.Location)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
