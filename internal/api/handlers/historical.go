package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jstittsworth/prospect-evaluator/internal/services"
	"github.com/jstittsworth/prospect-evaluator/pkg/utils"
)

type HistoricalHandler struct {
	store     *services.HistoricalStore
	refresher *services.RefresherService
}

func NewHistoricalHandler(store *services.HistoricalStore, refresher *services.RefresherService) *HistoricalHandler {
	return &HistoricalHandler{
		store:     store,
		refresher: refresher,
	}
}

// ListPlayers returns a page of the eligible historical population.
func (h *HistoricalHandler) ListPlayers(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.SendValidationError(c, "Invalid page", c.Query("page"))
		return
	}
	perPage, err := strconv.Atoi(c.DefaultQuery("per_page", "50"))
	if err != nil || perPage < 1 || perPage > 200 {
		utils.SendValidationError(c, "Invalid per_page", c.Query("per_page"))
		return
	}

	players, total, err := h.store.List(c.Request.Context(), page, perPage)
	if err != nil {
		utils.SendInternalError(c, "Failed to list historical players")
		return
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	utils.SendSuccessWithMeta(c, players, &utils.Meta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	})
}

// Refresh forces an immediate re-warm of the engine's population cache.
func (h *HistoricalHandler) Refresh(c *gin.Context) {
	if err := h.refresher.Refresh(c.Request.Context()); err != nil {
		utils.SendInternalError(c, "Failed to refresh historical population")
		return
	}
	utils.SendSuccess(c, gin.H{"refreshed": true})
}
