package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/EstateDesk/estate_management_app/cmd/docs"
	"github.com/EstateDesk/estate_management_app/internal/core/domain"
	portssvc "github.com/EstateDesk/estate_management_app/internal/core/ports/services"
	"github.com/EstateDesk/estate_management_app/internal/middleware"
	"github.com/EstateDesk/estate_management_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public routes: auth, google sign-in and the property catalogue
	registerAuthRoutes(r, services)
	registerGoogleOAuthRoutes(r, services)
	registerPublicPropertyRoutes(r, services.Property)

	// Role-gated API routes
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (non-production only)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the per-role groups. Every group carries
// AuthMiddleware plus an exact role check.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	admin := v1.Group("/admin", middleware.RequireRole(domain.RoleAdmin))
	registerAdminRoutes(admin, services.Account)

	owner := v1.Group("/owner", middleware.RequireRole(domain.RoleOwner))
	registerOwnerPropertyRoutes(owner, services.Property)
	registerOwnerContractRoutes(owner, services.Contract)

	realtor := v1.Group("/realtor", middleware.RequireRole(domain.RoleRealtor))
	registerRealtorPropertyRoutes(realtor, services.Property)
	registerRealtorApplicationRoutes(realtor, services.Application, services.Account)
	registerRealtorContractRoutes(realtor, services.Contract)

	customer := v1.Group("/customer", middleware.RequireRole(domain.RoleCustomer))
	registerCustomerApplicationRoutes(customer, services.Application)
	registerCustomerContractRoutes(customer, services.Contract)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
