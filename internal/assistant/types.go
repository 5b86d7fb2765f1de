package assistant

import (
	"time"

	"banking-assistant/internal/model"
	"banking-assistant/internal/router"
)

// StartSessionInput is the input for opening a session.
type StartSessionInput struct {
	Mode model.Mode
}

// StartSessionOutput is the new session plus any opening messages.
type StartSessionOutput struct {
	Session  model.Session
	Messages model.Transcript
}

// ChatInput is one typed submission. An empty SessionID starts a new chat session.
type ChatInput struct {
	SessionID string
	Text      string
	Context   model.DomainContext
}

// RecognitionKind is the terminal event of a speech capture.
type RecognitionKind string

const (
	RecognitionResult      RecognitionKind = "result"
	RecognitionError       RecognitionKind = "error"
	RecognitionUnsupported RecognitionKind = "unsupported"
)

// RecognitionEvent is what the speech collaborator delivers once listening stops.
type RecognitionEvent struct {
	Kind       RecognitionKind
	Transcript string // Set for RecognitionResult
}

// VoiceInput is one voice submission. An empty SessionID starts a new voice session.
type VoiceInput struct {
	SessionID string
	Event     RecognitionEvent
	Context   model.DomainContext
}

// ReplyOutput is the result of one round trip.
type ReplyOutput struct {
	Session     model.Session
	UserMessage *model.Message // Nil when the event carried no utterance
	Reply       model.Message
	Intent      router.Intent
	Command     router.Command
	// RevealAfter is how long the caller should wait before showing Reply.
	// The use case itself never waits.
	RevealAfter time.Duration
}

// TranscriptInput selects a session's messages. Limit <= 0 returns all.
type TranscriptInput struct {
	SessionID string
	Limit     int
}

// TranscriptOutput is a session's ordered messages.
type TranscriptOutput struct {
	Session  model.Session
	Messages model.Transcript
}

// SpendingPoint is one month of the spending series.
type SpendingPoint struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// CategorySlice is one slice of the category breakdown.
type CategorySlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// ChartOutput holds the dataset for one chart kind. Exactly one of Spending
// or Categories is populated.
type ChartOutput struct {
	Kind       model.ChartKind `json:"kind"`
	Spending   []SpendingPoint `json:"spending,omitempty"`
	Categories []CategorySlice `json:"categories,omitempty"`
}

// Config tunes the caller-side delays the use case advertises.
type Config struct {
	ReplyDelay    time.Duration // Typing delay before a chat reply is revealed
	NavigateDelay time.Duration // Delay attached to navigation side effects
	HistoryLimit  int           // Default transcript page size, 0 = unbounded
}
