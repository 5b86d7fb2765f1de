package repository

import "banking-assistant/internal/model"

// CreateSessionOptions holds the fields of a new session.
type CreateSessionOptions struct {
	ID     string
	UserID string
	Mode   model.Mode
}

// ListMessagesOptions pages a transcript from its tail.
type ListMessagesOptions struct {
	Limit int // Most recent N messages, 0 = all
}
