package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/money_field/internal/core/services"
	"github.com/SscSPs/money_field/internal/handlers"
	"github.com/SscSPs/money_field/internal/middleware"
	"github.com/SscSPs/money_field/internal/platform/config"
	"github.com/SscSPs/money_field/internal/repositories/cldr"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Money defaults loaded",
		slog.String("currency", cfg.Money.DefaultCurrency),
		slog.String("locale", cfg.Money.DefaultLocale),
		slog.Int("decimal_digits", cfg.Money.DecimalDigits),
		slog.String("symbol_placement", cfg.Money.SymbolPlacement),
		slog.Bool("strict_parse", cfg.Money.StrictParse),
	)

	limiterInstance, err := middleware.NewLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, rate limit)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.RateLimit(limiterInstance))

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
			ExposeHeaders:    []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos, err := cldr.NewRepositoryProvider()
	if err != nil {
		logger.Error("Failed to initialize repositories", slog.String("error", err.Error()))
		os.Exit(1)
	}
	handlers.RegisterRoutes(r, cfg, services.NewServiceContainer(cfg, repos))

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
