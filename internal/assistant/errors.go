package assistant

import "errors"

// Domain-specific errors for the assistant package.
var (
	ErrEmptyInput      = errors.New("input text is empty")
	ErrSessionNotFound = errors.New("session not found")
	ErrUnknownChart    = errors.New("unknown chart kind")
	ErrInvalidMode     = errors.New("invalid session mode")
	ErrInvalidEvent    = errors.New("invalid recognition event")
	ErrModeMismatch    = errors.New("session belongs to another mode")
)
