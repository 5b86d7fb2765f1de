package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	assistantHTTP "banking-assistant/internal/assistant/delivery/http"
	"banking-assistant/internal/middleware"
)

// setupAssistantDomain registers /api/v1/assistant.
func (srv HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := assistantHTTP.New(srv.l, srv.assistantUC)
	assistantHTTP.RegisterRoutes(api.Group("/assistant"), h, mw)

	srv.l.Infof(ctx, "Assistant domain registered")
	return nil
}
