package http

import (
	"github.com/gin-gonic/gin"

	"banking-assistant/internal/middleware"
)

// RegisterRoutes maps the assistant endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.Scope(), mw.RateLimit())

	sessions := rg.Group("/sessions")
	{
		sessions.POST("", h.StartSession)
		sessions.GET("/:id/messages", h.Transcript)
		sessions.DELETE("/:id", h.EndSession)
	}

	rg.POST("/chat", h.Chat)
	rg.POST("/voice", h.Voice)
	rg.GET("/charts/:kind", h.ChartData)
}
