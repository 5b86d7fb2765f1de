package model

import "time"

// Role is the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// SideEffectKind tags a SideEffect.
type SideEffectKind string

const (
	SideEffectShowChart SideEffectKind = "show_chart"
	SideEffectNavigate  SideEffectKind = "navigate"
)

// ChartKind is a chart the transcript renderer knows how to draw.
type ChartKind string

const (
	ChartSpending ChartKind = "spending"
	ChartCategory ChartKind = "category"
)

// IsValid reports whether k is a known chart kind.
func (k ChartKind) IsValid() bool {
	return k == ChartSpending || k == ChartCategory
}

// SideEffect describes a UI action requested by the assistant. It is data
// only: the caller renders the chart or performs the navigation.
type SideEffect struct {
	Kind    SideEffectKind `json:"kind"`
	Chart   ChartKind      `json:"chart,omitempty"`
	Path    string         `json:"path,omitempty"`
	DelayMs int            `json:"delay_ms,omitempty"`
}

// ShowChart returns a chart side effect.
func ShowChart(kind ChartKind) *SideEffect {
	return &SideEffect{Kind: SideEffectShowChart, Chart: kind}
}

// Navigate returns a delayed navigation side effect.
func Navigate(path string, delay time.Duration) *SideEffect {
	return &SideEffect{Kind: SideEffectNavigate, Path: path, DelayMs: int(delay.Milliseconds())}
}

// Message is one entry of a transcript. Messages are never edited once
// appended.
type Message struct {
	ID         string      `json:"id"`
	Role       Role        `json:"role"`
	Text       string      `json:"text"`
	SideEffect *SideEffect `json:"side_effect,omitempty"`
	Intent     string      `json:"intent,omitempty"`
	Command    string      `json:"command,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}

// Transcript is the ordered message history of a session.
type Transcript []Message

// Append returns a new transcript with msg at the end. t is left untouched.
func (t Transcript) Append(msg ...Message) Transcript {
	out := make(Transcript, 0, len(t)+len(msg))
	out = append(out, t...)
	return append(out, msg...)
}

// Last returns the most recent n messages in order. n <= 0 returns all.
func (t Transcript) Last(n int) Transcript {
	if n <= 0 || n >= len(t) {
		return t
	}
	return t[len(t)-n:]
}
