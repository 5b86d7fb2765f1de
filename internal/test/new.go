package test

import (
	"github.com/gin-gonic/gin"

	"banking-assistant/internal/assistant"
	"banking-assistant/internal/router"
	pkgLog "banking-assistant/pkg/log"
)

// Handler is the interface for the test handler
type Handler interface {
	HandleClassify(c *gin.Context)
	HandleResetSession(c *gin.Context)
	HandleHealthCheck(c *gin.Context)
}

// New creates a new test handler
func New(
	l pkgLog.Logger,
	router router.Router,
	uc assistant.UseCase,
) Handler {
	return &handler{
		l:      l,
		router: router,
		uc:     uc,
	}
}
