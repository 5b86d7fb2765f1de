package test

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"banking-assistant/internal/assistant"
	"banking-assistant/internal/middleware"
	"banking-assistant/internal/model"
	"banking-assistant/internal/router"
	pkgLog "banking-assistant/pkg/log"
)

type handler struct {
	l      pkgLog.Logger
	router router.Router
	uc     assistant.UseCase
}

// HandleClassify runs the router without touching any session
// @Summary Test intent classification
// @Description Classify a message with the chat or voice rule table, without producing a reply
// @Tags test
// @Accept json
// @Produce json
// @Param request body ClassifyRequest true "Message to classify"
// @Success 200 {object} ClassifyResponse
// @Router /test/classify [post]
func (h *handler) HandleClassify(c *gin.Context) {
	ctx := c.Request.Context()

	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	mode := model.Mode(req.Mode)
	out := h.router.Classify(ctx, mode, req.Text)

	h.l.Infof(ctx, "internal.test.HandleClassify: mode=%s text=%q intent=%s command=%s",
		mode, req.Text, out.Intent, out.Command)

	c.JSON(200, ClassifyResponse{
		Success:    true,
		Mode:       req.Mode,
		Text:       req.Text,
		Normalized: router.Normalize(req.Text),
		Intent:     string(out.Intent),
		Command:    string(out.Command),
		Trigger:    out.Trigger,
	})
}

// HandleResetSession drops a session and its transcript
// @Summary Reset test session
// @Description Clear the transcript of a session
// @Tags test
// @Accept json
// @Produce json
// @Param request body ResetSessionRequest true "Reset session"
// @Success 200 {object} ResetSessionResponse
// @Router /test/reset [post]
func (h *handler) HandleResetSession(c *gin.Context) {
	ctx := c.Request.Context()

	var req ResetSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	if req.UserID == "" {
		req.UserID = middleware.AnonymousUserID
	}

	sc := model.Scope{UserID: req.UserID}
	if err := h.uc.EndSession(ctx, sc, req.SessionID); err != nil {
		if errors.Is(err, assistant.ErrSessionNotFound) {
			c.JSON(404, ResetSessionResponse{Success: false, Message: err.Error()})
			return
		}
		h.l.Errorf(ctx, "internal.test.HandleResetSession: %v", err)
		c.JSON(500, ResetSessionResponse{Success: false, Message: "Reset failed"})
		return
	}

	h.l.Infof(ctx, "internal.test.HandleResetSession: Cleared session %s for user_id=%s", req.SessionID, req.UserID)

	c.JSON(200, ResetSessionResponse{
		Success: true,
		Message: fmt.Sprintf("Session %s cleared", req.SessionID),
	})
}

// HandleHealthCheck returns the health status of test endpoints
// @Summary Test health check
// @Description Check if test endpoints are available
// @Tags test
// @Produce json
// @Success 200 {object} HealthCheckResponse
// @Router /test/health [get]
func (h *handler) HandleHealthCheck(c *gin.Context) {
	c.JSON(200, HealthCheckResponse{
		Status:  "ok",
		Message: "Test endpoints are available",
	})
}
