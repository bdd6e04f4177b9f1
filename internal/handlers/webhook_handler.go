package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type WebhookHandler struct {
	Updates *UpdatesHandler
}

func NewWebhookHandler(updates *UpdatesHandler) *WebhookHandler {
	return &WebhookHandler{Updates: updates}
}

// Webhook always answers 200 so Telegram doesn't redeliver malformed updates.
func (h *WebhookHandler) Webhook(c *gin.Context) {
	var up tgbotapi.Update
	if err := c.ShouldBindJSON(&up); err != nil {
		h.Updates.Logger.WarnContext(c.Request.Context(), "webhook bind json failed", "error", err)
		c.Status(http.StatusOK)
		return
	}
	h.Updates.Handle(c.Request.Context(), up)
	c.Status(http.StatusOK)
}
