package http

import (
	"banking-assistant/internal/assistant"
	"banking-assistant/internal/model"
	"banking-assistant/pkg/response"
)

// --- Request DTOs ---

type accountReq struct {
	ID      string  `json:"id"      binding:"required"`
	Balance float64 `json:"balance"`
}

type profileReq struct {
	ID string `json:"id" binding:"required"`
}

type contextReq struct {
	Accounts []accountReq `json:"accounts" binding:"dive"`
	Profile  *profileReq  `json:"profile"`
}

func (r contextReq) toDomain() model.DomainContext {
	dc := model.DomainContext{Accounts: make([]model.Account, len(r.Accounts))}
	for i, a := range r.Accounts {
		dc.Accounts[i] = model.Account{ID: a.ID, Balance: a.Balance}
	}
	if r.Profile != nil {
		dc.Profile = &model.Profile{ID: r.Profile.ID}
	}
	return dc
}

type startSessionReq struct {
	Mode string `json:"mode" binding:"required,oneof=chat voice"`
}

func (r startSessionReq) toInput() assistant.StartSessionInput {
	return assistant.StartSessionInput{Mode: model.Mode(r.Mode)}
}

type chatReq struct {
	SessionID string     `json:"session_id"`
	Text      string     `json:"text"    binding:"required,max=2000"`
	Context   contextReq `json:"context"`
}

func (r chatReq) toInput() assistant.ChatInput {
	return assistant.ChatInput{
		SessionID: r.SessionID,
		Text:      r.Text,
		Context:   r.Context.toDomain(),
	}
}

type eventReq struct {
	Kind       string `json:"kind"       binding:"required,oneof=result error unsupported"`
	Transcript string `json:"transcript" binding:"max=2000"`
}

type voiceReq struct {
	SessionID string     `json:"session_id"`
	Event     eventReq   `json:"event"`
	Context   contextReq `json:"context"`
}

func (r voiceReq) toInput() assistant.VoiceInput {
	return assistant.VoiceInput{
		SessionID: r.SessionID,
		Event: assistant.RecognitionEvent{
			Kind:       assistant.RecognitionKind(r.Event.Kind),
			Transcript: r.Event.Transcript,
		},
		Context: r.Context.toDomain(),
	}
}

type transcriptReq struct {
	SessionID string `uri:"id"     binding:"required"`
	Limit     int    `form:"limit" binding:"min=0,max=1000"`
}

func (r transcriptReq) toInput() assistant.TranscriptInput {
	return assistant.TranscriptInput{SessionID: r.SessionID, Limit: r.Limit}
}

// --- Response DTOs ---

type sessionResp struct {
	ID        string            `json:"id"`
	Mode      string            `json:"mode"`
	CreatedAt response.DateTime `json:"created_at"`
	UpdatedAt response.DateTime `json:"updated_at"`
}

func newSessionResp(s model.Session) sessionResp {
	return sessionResp{
		ID:        s.ID,
		Mode:      string(s.Mode),
		CreatedAt: response.DateTime(s.CreatedAt),
		UpdatedAt: response.DateTime(s.UpdatedAt),
	}
}

func newMessagesResp(msgs model.Transcript) []model.Message {
	if msgs == nil {
		return []model.Message{}
	}
	return msgs
}

type startSessionResp struct {
	Session  sessionResp     `json:"session"`
	Messages []model.Message `json:"messages"`
}

func (h *handler) newStartSessionResp(out assistant.StartSessionOutput) startSessionResp {
	return startSessionResp{
		Session:  newSessionResp(out.Session),
		Messages: newMessagesResp(out.Messages),
	}
}

type replyResp struct {
	SessionID     string         `json:"session_id"`
	UserMessage   *model.Message `json:"user_message,omitempty"`
	Reply         model.Message  `json:"reply"`
	Intent        string         `json:"intent,omitempty"`
	Command       string         `json:"command,omitempty"`
	RevealAfterMs int64          `json:"reveal_after_ms"`
}

func (h *handler) newReplyResp(out assistant.ReplyOutput) replyResp {
	return replyResp{
		SessionID:     out.Session.ID,
		UserMessage:   out.UserMessage,
		Reply:         out.Reply,
		Intent:        string(out.Intent),
		Command:       string(out.Command),
		RevealAfterMs: out.RevealAfter.Milliseconds(),
	}
}

type transcriptResp struct {
	Session  sessionResp     `json:"session"`
	Messages []model.Message `json:"messages"`
}

func (h *handler) newTranscriptResp(out assistant.TranscriptOutput) transcriptResp {
	return transcriptResp{
		Session:  newSessionResp(out.Session),
		Messages: newMessagesResp(out.Messages),
	}
}
