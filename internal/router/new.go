package router

import (
	"context"

	"banking-assistant/internal/model"
	"banking-assistant/pkg/log"
)

// Router is the interface for intent routing
type Router interface {
	Classify(ctx context.Context, mode model.Mode, message string) RouterOutput
}

// KeywordRouter classifies user intent with ordered keyword rules
type KeywordRouter struct {
	l     log.Logger
	rules map[model.Mode]Rules
}

// Ensure KeywordRouter implements Router interface
var _ Router = (*KeywordRouter)(nil)

// New creates a new KeywordRouter with the chat and voice tables.
func New(l log.Logger) *KeywordRouter {
	return &KeywordRouter{
		l: l,
		rules: map[model.Mode]Rules{
			model.ModeChat:  ChatRules(),
			model.ModeVoice: VoiceRules(),
		},
	}
}
