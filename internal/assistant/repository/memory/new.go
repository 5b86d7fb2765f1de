package memory

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"banking-assistant/internal/assistant/repository"
	"banking-assistant/internal/model"
	pkgLog "banking-assistant/pkg/log"
)

// Defaults used when the caller passes zero values.
const (
	DefaultMaxSessions = 10000
	DefaultTTL         = 30 * time.Minute
)

type sessionEntry struct {
	mu       sync.Mutex
	session  model.Session
	messages model.Transcript
	deleted  bool
}

type implRepository struct {
	l        pkgLog.Logger
	sessions *expirable.LRU[string, *sessionEntry]
	now      func() time.Time
}

var _ repository.TranscriptRepository = (*implRepository)(nil)

// New creates an in-process transcript repository. Sessions expire ttl after
// their last write; the least recently used session is evicted once
// maxSessions is reached.
func New(l pkgLog.Logger, maxSessions int, ttl time.Duration) repository.TranscriptRepository {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	r := &implRepository{
		l:   l,
		now: time.Now,
	}
	r.sessions = expirable.NewLRU[string, *sessionEntry](maxSessions, r.onEvict, ttl)
	return r
}

func (r *implRepository) onEvict(id string, _ *sessionEntry) {
	r.l.Debugf(context.Background(), "internal.assistant.repository.memory: session %s evicted", id)
}
