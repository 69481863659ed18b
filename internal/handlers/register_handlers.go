package handlers

import (
	portssvc "github.com/SscSPs/money_field/internal/core/ports/services"
	"github.com/SscSPs/money_field/internal/middleware"
	"github.com/SscSPs/money_field/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", getHealth)

	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group. Bearer auth is applied only
// when a JWT secret is configured.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	var chain []gin.HandlerFunc
	if cfg.JWTSecret != "" {
		chain = append(chain, middleware.AuthMiddleware(cfg.JWTSecret))
	}
	v1 := r.Group("/api/v1", chain...)

	RegisterCurrencyRoutes(v1, services.Currency)
	RegisterMoneyFieldRoutes(v1, services.MoneyField)
}
