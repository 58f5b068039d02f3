package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/jacfrist/hr-pg/internal/services"

	"github.com/gin-gonic/gin"
)

type HistoryHandler struct {
	historyService *services.HistoryService
}

func NewHistoryHandler(historyService *services.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

// ListHistory godoc
// @Summary      List battle history
// @Description  All sessions for the authenticated player, newest first, with nested turns. Unauthenticated callers get an empty list.
// @Tags         history
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} services.HistoryEntry
// @Router       /api/v1/history [get]
func (h *HistoryHandler) ListHistory(c *gin.Context) {
	id, ok := c.Get("user_id")
	if !ok {
		c.JSON(http.StatusOK, []services.HistoryEntry{})
		return
	}

	entries, err := h.historyService.ListSessions(id.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// ExportHistory godoc
// @Summary      Export battle history
// @Description  Download the player's full battle history as a JSON file
// @Tags         history
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} services.HistoryEntry
// @Router       /api/v1/history/export [get]
func (h *HistoryHandler) ExportHistory(c *gin.Context) {
	id, ok := c.Get("user_id")
	if !ok {
		c.JSON(http.StatusOK, []services.HistoryEntry{})
		return
	}

	entries, err := h.historyService.ListSessions(id.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	filename := fmt.Sprintf("battle_history_%s.json", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.JSON(http.StatusOK, entries)
}
