package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"devgate/internal/handlers"
	"devgate/internal/middleware"
)

// SetupRoutes registers the HTTP surface. webhookHandler is nil in polling
// mode; apiSecret empty disables the history API.
func SetupRoutes(
	r *gin.Engine,
	verificationHandler *handlers.VerificationHandler,
	webhookHandler *handlers.WebhookHandler,
	apiSecret string,
) *gin.Engine {
	r.GET("/healthz", verificationHandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if webhookHandler != nil {
		r.POST("/telegram/webhook", webhookHandler.Webhook)
	}

	if apiSecret != "" {
		api := r.Group("/api")
		api.Use(middleware.AuthMiddleware([]byte(apiSecret)))
		chats := api.Group("/chats/:chat_id", middleware.RequireChatScope())
		{
			chats.GET("/verifications", verificationHandler.Recent)
			chats.GET("/verifications/summary", verificationHandler.Summary)
		}
	}
	return r
}
