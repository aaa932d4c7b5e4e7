package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jstittsworth/prospect-evaluator/internal/engine"
	"github.com/jstittsworth/prospect-evaluator/internal/models"
	"github.com/jstittsworth/prospect-evaluator/internal/services"
	"github.com/jstittsworth/prospect-evaluator/pkg/utils"
)

type EvaluationHandler struct {
	engine     *engine.Engine
	cache      *services.CacheService
	cacheTTL   time.Duration
	batchLimit int
}

func NewEvaluationHandler(eng *engine.Engine, cache *services.CacheService, cacheTTL time.Duration, batchLimit int) *EvaluationHandler {
	return &EvaluationHandler{
		engine:     eng,
		cache:      cache,
		cacheTTL:   cacheTTL,
		batchLimit: batchLimit,
	}
}

// Evaluate runs one prospect record through the engine.
// Query params: comparables=false skips comparable matching,
// fresh=true bypasses the result cache.
func (h *EvaluationHandler) Evaluate(c *gin.Context) {
	var record models.ProspectRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		utils.SendValidationError(c, "Invalid prospect record", err.Error())
		return
	}
	if record.Name == "" {
		utils.SendValidationError(c, "Prospect record requires a name", "")
		return
	}

	opts := engine.Options{
		SkipComparables: c.Query("comparables") == "false",
	}
	fresh := c.Query("fresh") == "true"

	ctx := c.Request.Context()
	cacheKey := services.EvaluationCacheKey(&record)

	if !fresh && !opts.SkipComparables {
		var cached models.EvaluationResult
		if err := h.cache.Get(ctx, cacheKey, &cached); err == nil {
			utils.SendSuccess(c, cached)
			return
		}
	}

	result := h.engine.EvaluateWithOptions(ctx, &record, opts)

	// Cache failures degrade to direct evaluation; never fail the request.
	if !opts.SkipComparables {
		_ = h.cache.SetWithRetry(ctx, cacheKey, result, h.cacheTTL, 2)
	}

	utils.SendSuccess(c, result)
}

// EvaluateBatch evaluates up to the configured limit of records in one call.
func (h *EvaluationHandler) EvaluateBatch(c *gin.Context) {
	var records []models.ProspectRecord
	if err := c.ShouldBindJSON(&records); err != nil {
		utils.SendValidationError(c, "Invalid prospect records", err.Error())
		return
	}
	if len(records) == 0 {
		utils.SendValidationError(c, "No prospect records supplied", "")
		return
	}
	if len(records) > h.batchLimit {
		utils.SendValidationError(c, "Too many records in one batch", "")
		return
	}

	ctx := c.Request.Context()
	results := make([]*models.EvaluationResult, 0, len(records))
	for i := range records {
		results = append(results, h.engine.Evaluate(ctx, &records[i]))
	}

	utils.SendSuccess(c, results)
}
