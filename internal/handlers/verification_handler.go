package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"devgate/internal/services"
)

type PendingCounter interface {
	PendingCount() int
}

type VerificationHandler struct {
	Outcomes *services.OutcomeService
	Pending  PendingCounter
}

func NewVerificationHandler(outcomes *services.OutcomeService, pending PendingCounter) *VerificationHandler {
	return &VerificationHandler{Outcomes: outcomes, Pending: pending}
}

func (h *VerificationHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "pending": h.Pending.PendingCount()})
}

func (h *VerificationHandler) Recent(c *gin.Context) {
	chatID, err := strconv.ParseInt(c.Param("chat_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chat_id"})
		return
	}
	limit := getIntQuery(c, "limit", 50)

	items, err := h.Outcomes.Recent(c.Request.Context(), chatID, limit)
	if err != nil {
		respondHistoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"chat_id": chatID, "items": items})
}

func (h *VerificationHandler) Summary(c *gin.Context) {
	chatID, err := strconv.ParseInt(c.Param("chat_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chat_id"})
		return
	}
	hours := getIntQuery(c, "hours", 24)

	sum, err := h.Outcomes.Summary(c.Request.Context(), chatID, time.Duration(hours)*time.Hour)
	if err != nil {
		respondHistoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

func respondHistoryError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrHistoryDisabled) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot load verification history"})
}
