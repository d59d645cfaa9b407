package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/app"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Level:      logger.ParseLevel(cfg.Logger.Level),
		JSON:       cfg.Logger.Format == "json",
		CallerInfo: cfg.Logger.CallerInfo,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Flush()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	bank, err := app.Build(ctx, cfg, appLogger, registry)
	if err != nil {
		appLogger.Error("Failed to initialize application", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() {
		if err := bank.Close(); err != nil {
			appLogger.Error("Failed to release resources", map[string]any{"error": err.Error()})
		}
	}()

	userHandler := handler.NewUserHandler(bank.Users, appLogger)
	gameHandler := handler.NewGameHandler(bank.Games, appLogger)

	middlewareOpts := routes.MiddlewareOptions{AllowedOrigins: cfg.Server.AllowedOrigins}
	metricsOpts := routes.MetricsOptions{Path: cfg.Metrics.Path}
	if cfg.Metrics.Enabled {
		httpMetrics, err := middleware.NewHTTPMetrics(registry, cfg.Metrics.Namespace)
		if err != nil {
			appLogger.Error("Failed to register HTTP metrics", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		middlewareOpts.HTTPMetrics = httpMetrics
		metricsOpts.Gatherer = registry
	}

	var limiter *middleware.RateLimiter
	if cfg.Server.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.Server.RateLimit.RequestsPerSecond,
			Burst:             cfg.Server.RateLimit.Burst,
		}, appLogger)
	}

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, middlewareOpts)
	routes.SetupRoutes(router, userHandler, gameHandler, limiter, metricsOpts)

	server := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":     server.Addr,
			"env":      cfg.Environment,
			"database": cfg.Database.Driver,
			"counter":  cfg.Redis.Driver,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			appLogger.Error("Failed to start server", map[string]any{"error": err.Error()})
		}
	}

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}
