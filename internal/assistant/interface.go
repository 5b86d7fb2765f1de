package assistant

import (
	"context"

	"banking-assistant/internal/model"
)

// UseCase defines the business logic interface for the assistant domain.
type UseCase interface {
	// StartSession opens a new chat or voice session. Chat sessions start with a greeting.
	StartSession(ctx context.Context, sc model.Scope, input StartSessionInput) (StartSessionOutput, error)

	// Chat routes one typed message and appends both sides of the exchange to the transcript.
	Chat(ctx context.Context, sc model.Scope, input ChatInput) (ReplyOutput, error)

	// Voice routes one speech recognition event.
	Voice(ctx context.Context, sc model.Scope, input VoiceInput) (ReplyOutput, error)

	// Transcript returns the messages of a session in arrival order.
	Transcript(ctx context.Context, sc model.Scope, input TranscriptInput) (TranscriptOutput, error)

	// EndSession drops a session and its transcript.
	EndSession(ctx context.Context, sc model.Scope, sessionID string) error

	// ChartData returns the illustrative dataset behind a chart side effect.
	ChartData(ctx context.Context, kind model.ChartKind) (ChartOutput, error)
}
