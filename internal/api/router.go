package api

import (
	"github.com/gin-gonic/gin"

	"github.com/jstittsworth/prospect-evaluator/internal/api/handlers"
	"github.com/jstittsworth/prospect-evaluator/internal/api/middleware"
	"github.com/jstittsworth/prospect-evaluator/internal/engine"
	"github.com/jstittsworth/prospect-evaluator/internal/services"
	"github.com/jstittsworth/prospect-evaluator/pkg/config"
)

// SetupRoutes configures all API routes on the given router group.
func SetupRoutes(group *gin.RouterGroup, eng *engine.Engine, cache *services.CacheService, store *services.HistoricalStore, refresher *services.RefresherService, cfg *config.Config) {
	evaluationHandler := handlers.NewEvaluationHandler(eng, cache, cfg.ResultCacheTTL, cfg.BatchEvalLimit)
	historicalHandler := handlers.NewHistoricalHandler(store, refresher)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	group.Use(rateLimiter.Middleware())

	// Evaluation endpoints
	group.POST("/evaluate", evaluationHandler.Evaluate)
	group.POST("/evaluate/batch", evaluationHandler.EvaluateBatch)

	// Historical reference population
	group.GET("/historical/players", historicalHandler.ListPlayers)
	// Admin endpoint for forcing a cache refresh (should be protected in production)
	group.POST("/historical/refresh", historicalHandler.Refresh)
}
