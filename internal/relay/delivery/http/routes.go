package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the relay endpoints onto rg. webhookMws guard only
// the webhook itself.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, webhookMws ...gin.HandlerFunc) {
	rg.POST("/omi-webhook", append(webhookMws, h.Webhook)...)
	rg.GET("/help", h.Help)
	rg.GET("/conversation/:sessionId", h.Conversation)
	rg.GET("/rate-limit/:userId", h.RateLimit)
}
