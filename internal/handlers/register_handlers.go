package handlers

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	portssvc "github.com/stroyhub/fitout_crm_backend/internal/core/ports/services"
	"github.com/stroyhub/fitout_crm_backend/internal/middleware"
	"github.com/stroyhub/fitout_crm_backend/internal/platform/config"
)

// changePasswordPath is exempt from the forced-password-change guard so a
// user in that state can actually get out of it.
const changePasswordPath = "/api/v1/auth/change-password"

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	RegisterCustomValidators()

	r.Use(cors.New(corsConfig(cfg)))

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group; the password guard sits
	// behind it since it needs the authenticated user.
	v1 := r.Group("/api/v1",
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.ForcePasswordChangeGuard(services.User, changePasswordPath),
	)

	// Delegate route registration to specific handlers, passing required services
	registerProtectedAuthRoutes(v1, cfg, services)
	registerUserRoutes(v1, services.User)
	RegisterLeadRoutes(v1, services.Lead)
	registerProjectRoutes(v1, cfg, services)
	registerCommissionRoutes(v1, services.Commission)
	registerCurrencyRoutes(v1, services.Currency)
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	// Credentials are needed for the refresh cookie, which rules out the
	// wildcard origin; echo the caller's origin instead.
	c.AllowOriginFunc = func(string) bool { return true }
	c.AllowCredentials = true
	c.AllowHeaders = append(c.AllowHeaders, "Authorization")
	c.MaxAge = 12 * time.Hour
	return c
}
