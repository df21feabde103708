package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/SscSPs/price_listing_app/internal/core/services"
	"github.com/SscSPs/price_listing_app/internal/handlers"
	"github.com/SscSPs/price_listing_app/internal/middleware"
	"github.com/SscSPs/price_listing_app/internal/platform/config"
	"github.com/SscSPs/price_listing_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/price_listing_app/internal/validation"
	"github.com/SscSPs/price_listing_app/pkg/database"
	"github.com/gin-gonic/gin"
)

// @title Price Listing API
// @version 1.0
// @description Providers, currencies and the articles that price them.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	level.Set(cfg.LogLevel)

	if err := validation.RegisterWithGin(); err != nil {
		logger.Error("Failed to register validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.RunMigrations {
		logger.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL, logger); err != nil {
			logger.Error("Failed to run migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	failureStatus := http.StatusBadRequest
	if cfg.StandardStatusCodes {
		failureStatus = http.StatusInternalServerError
	}
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		middleware.Recovery(failureStatus),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)

	if cfg.RateLimit != "" {
		limiter, err := middleware.NewRateLimiter(cfg.RateLimit)
		if err != nil {
			logger.Error("Failed to configure rate limiter", slog.String("error", err.Error()))
			os.Exit(1)
		}
		r.Use(middleware.RateLimit(limiter))
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
