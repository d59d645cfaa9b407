package routes

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/party-bank/internal/domain/port/core"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MiddlewareOptions configures the global middleware chain
type MiddlewareOptions struct {
	AllowedOrigins []string
	HTTPMetrics    *middleware.HTTPMetrics // nil disables request metrics
}

// MetricsOptions configures the scrape endpoint
type MetricsOptions struct {
	Path     string
	Gatherer prometheus.Gatherer // nil disables the endpoint
}

// SetupRoutes configures all the routes for the API.
// Coin-moving game routes sit behind the rate limiter when one is given.
func SetupRoutes(
	router *gin.Engine,
	userHandler *handler.UserHandler,
	gameHandler *handler.GameHandler,
	limiter *middleware.RateLimiter,
	metrics MetricsOptions,
) {
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if metrics.Gatherer != nil {
		router.GET(metrics.Path, gin.WrapH(promhttp.HandlerFor(metrics.Gatherer, promhttp.HandlerOpts{})))
	}

	// POST /user
	router.POST("/user", userHandler.Register)

	userRoutes := router.Group("/user")
	{
		// GET /user/:userId/balance
		userRoutes.GET("/:userId/balance", userHandler.GetBalance)

		// POST /user/:userId/transaction
		userRoutes.POST("/:userId/transaction", userHandler.ModifyBalance)
	}

	gameRoutes := router.Group("/user")
	if limiter != nil {
		gameRoutes.Use(limiter.Handler())
	}
	{
		gameRoutes.POST("/:userId/risk-card", gameHandler.DrawRiskCard)
		gameRoutes.POST("/:userId/scan/:code", gameHandler.ScanCode)
		gameRoutes.POST("/:userId/missions/:traitId/:index/claim", gameHandler.ClaimMission)
	}

	traitRoutes := router.Group("/traits")
	{
		traitRoutes.GET("", gameHandler.ListTraits)
		traitRoutes.GET("/:traitId/missions", gameHandler.MissionsForTrait)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, opts MiddlewareOptions) {
	// Request id first so every later middleware can log it
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	if opts.HTTPMetrics != nil {
		router.Use(opts.HTTPMetrics.Handler())
	}
	router.Use(middleware.CORS(opts.AllowedOrigins))
}
