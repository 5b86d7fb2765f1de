package model

import "time"

// Mode selects which front end a session serves.
type Mode string

const (
	ModeChat  Mode = "chat"
	ModeVoice Mode = "voice"
)

// IsValid reports whether m is a known mode.
func (m Mode) IsValid() bool {
	return m == ModeChat || m == ModeVoice
}

// Session is one conversation between a user and the assistant.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Mode      Mode      `json:"mode"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
