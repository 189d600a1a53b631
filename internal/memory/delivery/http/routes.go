package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the memory endpoints onto rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mws ...gin.HandlerFunc) {
	memories := rg.Group("/memories", mws...)
	{
		memories.POST("", h.Save)
		memories.GET("/search", h.Search)
	}
}
