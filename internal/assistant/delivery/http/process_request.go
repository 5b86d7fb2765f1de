package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processStartSessionReq(c *gin.Context) (startSessionReq, error) {
	var req startSessionReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

func (h *handler) processVoiceReq(c *gin.Context) (voiceReq, error) {
	var req voiceReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

// processTranscriptReq binds the session id path param and the limit query.
func (h *handler) processTranscriptReq(c *gin.Context) (transcriptReq, error) {
	var req transcriptReq
	if err := c.ShouldBindUri(&req); err != nil {
		return req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
