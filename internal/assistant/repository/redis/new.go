package redis

import (
	"time"

	goredis "github.com/redis/go-redis/v9"

	"banking-assistant/internal/assistant/repository"
	pkgLog "banking-assistant/pkg/log"
)

const (
	keyPrefix  = "assistant:session:"
	DefaultTTL = 30 * time.Minute

	maxTxRetries = 16
)

type implRepository struct {
	l      pkgLog.Logger
	client goredis.UniversalClient
	ttl    time.Duration
	now    func() time.Time
}

var _ repository.TranscriptRepository = (*implRepository)(nil)

// New creates a Redis-backed transcript repository. Both the session record
// and its message list expire ttl after the last write.
func New(l pkgLog.Logger, client goredis.UniversalClient, ttl time.Duration) repository.TranscriptRepository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &implRepository{
		l:      l,
		client: client,
		ttl:    ttl,
		now:    time.Now,
	}
}

func sessionKey(id string) string  { return keyPrefix + id }
func messagesKey(id string) string { return keyPrefix + id + ":messages" }
