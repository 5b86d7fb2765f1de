package repository

import (
	"context"

	"banking-assistant/internal/model"
)

// TranscriptRepository stores sessions and their append-only transcripts.
// Implementations must keep messages in append order.
type TranscriptRepository interface {
	CreateSession(ctx context.Context, opt CreateSessionOptions) (model.Session, error)
	GetSession(ctx context.Context, id string) (model.Session, error)
	AppendMessages(ctx context.Context, sessionID string, msgs ...model.Message) error
	ListMessages(ctx context.Context, sessionID string, opt ListMessagesOptions) (model.Transcript, error)
	DeleteSession(ctx context.Context, id string) error
}
