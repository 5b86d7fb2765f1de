package http

import (
	"github.com/gin-gonic/gin"

	"banking-assistant/internal/middleware"
	"banking-assistant/internal/model"
	"banking-assistant/pkg/response"
)

// StartSession godoc
// @Summary     Start an assistant session
// @Description Opens a chat or voice session. Chat sessions start with a greeting.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string          false "Caller id"
// @Param       body      body   startSessionReq true  "Session mode"
// @Success     200 {object} startSessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/sessions [POST]
func (h *handler) StartSession(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processStartSessionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.StartSession(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newStartSessionResp(out))
}

// Chat godoc
// @Summary     Send a chat message
// @Description Classifies the text, appends the exchange to the session and returns the reply.
// @Description reveal_after_ms is how long the client should show a typing indicator.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string  false "Caller id"
// @Param       body      body   chatReq true  "Chat message and account context"
// @Success     200 {object} replyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Session Not Found"
// @Failure     409 {object} response.Resp "Session Mode Mismatch"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Chat(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newReplyResp(out))
}

// Voice godoc
// @Summary     Submit a speech recognition event
// @Description Routes a recognized utterance to a banking command, or reports a recognition failure.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string   false "Caller id"
// @Param       body      body   voiceReq true  "Recognition event and account context"
// @Success     200 {object} replyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Session Not Found"
// @Failure     409 {object} response.Resp "Session Mode Mismatch"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/voice [POST]
func (h *handler) Voice(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processVoiceReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Voice(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newReplyResp(out))
}

// Transcript godoc
// @Summary     List session messages
// @Description Returns the session transcript in arrival order, optionally only the most recent messages.
// @Tags        Assistant
// @Produce     json
// @Param       X-User-ID header string false "Caller id"
// @Param       id        path   string true  "Session ID"
// @Param       limit     query  int    false "Most recent N messages"
// @Success     200 {object} transcriptResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Session Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/sessions/{id}/messages [GET]
func (h *handler) Transcript(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTranscriptReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Transcript(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newTranscriptResp(out))
}

// EndSession godoc
// @Summary     End a session
// @Description Deletes the session and its transcript.
// @Tags        Assistant
// @Produce     json
// @Param       X-User-ID header string false "Caller id"
// @Param       id        path   string true  "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Session Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/sessions/{id} [DELETE]
func (h *handler) EndSession(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.EndSession(ctx, middleware.GetScope(c), c.Param("id")); err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}

// ChartData godoc
// @Summary     Get chart dataset
// @Description Returns the dataset behind a show_chart side effect.
// @Tags        Assistant
// @Produce     json
// @Param       kind path string true "Chart kind (spending/category)"
// @Success     200 {object} assistant.ChartOutput
// @Failure     400 {object} response.Resp "Unknown Chart"
// @Router      /api/v1/assistant/charts/{kind} [GET]
func (h *handler) ChartData(c *gin.Context) {
	out, err := h.uc.ChartData(c.Request.Context(), model.ChartKind(c.Param("kind")))
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, out)
}
