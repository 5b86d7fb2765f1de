package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"banking-assistant/internal/assistant"
	"banking-assistant/pkg/response"
)

// mapError writes the HTTP error for a use-case error.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, assistant.ErrEmptyInput),
		errors.Is(err, assistant.ErrInvalidMode),
		errors.Is(err, assistant.ErrInvalidEvent),
		errors.Is(err, assistant.ErrUnknownChart):
		response.Error(c, err, nil)
	case errors.Is(err, assistant.ErrSessionNotFound):
		response.NotFound(c, err)
	case errors.Is(err, assistant.ErrModeMismatch):
		response.Conflict(c, err)
	default:
		h.l.Errorf(c.Request.Context(), "internal.assistant.delivery.http: %v", err)
		response.InternalError(c, err)
	}
}
