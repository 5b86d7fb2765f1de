package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"banking-assistant/internal/assistant/repository"
	"banking-assistant/internal/model"
)

func (r *implRepository) CreateSession(ctx context.Context, opt repository.CreateSessionOptions) (model.Session, error) {
	id := opt.ID
	if id == "" {
		id = uuid.New().String()
	}

	now := r.now()
	sess := model.Session{
		ID:        id,
		UserID:    opt.UserID,
		Mode:      opt.Mode,
		CreatedAt: now,
		UpdatedAt: now,
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return model.Session{}, fmt.Errorf("marshal session: %w", err)
	}

	ok, err := r.client.SetNX(ctx, sessionKey(id), data, r.ttl).Result()
	if err != nil {
		return model.Session{}, fmt.Errorf("redis setnx session: %w", err)
	}
	if !ok {
		return model.Session{}, repository.ErrSessionExists
	}

	return sess, nil
}

func (r *implRepository) GetSession(ctx context.Context, id string) (model.Session, error) {
	data, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return model.Session{}, repository.ErrSessionNotFound
	}
	if err != nil {
		return model.Session{}, fmt.Errorf("redis get session: %w", err)
	}

	var sess model.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return model.Session{}, fmt.Errorf("unmarshal session: %w", err)
	}
	return sess, nil
}

// AppendMessages watches the session key so a concurrent DeleteSession
// aborts the write instead of leaving an orphaned session behind.
func (r *implRepository) AppendMessages(ctx context.Context, sessionID string, msgs ...model.Message) error {
	values := make([]interface{}, 0, len(msgs))
	for _, msg := range msgs {
		data, err := json.Marshal(msg)
		if err != nil {
			return fmt.Errorf("marshal message: %w", err)
		}
		values = append(values, data)
	}

	txf := func(tx *goredis.Tx) error {
		data, err := tx.Get(ctx, sessionKey(sessionID)).Bytes()
		if errors.Is(err, goredis.Nil) {
			return repository.ErrSessionNotFound
		}
		if err != nil {
			return fmt.Errorf("redis get session: %w", err)
		}
		if len(values) == 0 {
			return nil
		}

		var sess model.Session
		if err := json.Unmarshal(data, &sess); err != nil {
			return fmt.Errorf("unmarshal session: %w", err)
		}
		sess.UpdatedAt = r.now()
		sessData, err := json.Marshal(sess)
		if err != nil {
			return fmt.Errorf("marshal session: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.RPush(ctx, messagesKey(sessionID), values...)
			pipe.Expire(ctx, messagesKey(sessionID), r.ttl)
			pipe.Set(ctx, sessionKey(sessionID), sessData, r.ttl)
			return nil
		})
		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err := r.client.Watch(ctx, txf, sessionKey(sessionID))
		if errors.Is(err, goredis.TxFailedErr) {
			continue
		}
		if err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
			return fmt.Errorf("redis append messages: %w", err)
		}
		return err
	}
	return fmt.Errorf("redis append messages: %w", goredis.TxFailedErr)
}

func (r *implRepository) ListMessages(ctx context.Context, sessionID string, opt repository.ListMessagesOptions) (model.Transcript, error) {
	n, err := r.client.Exists(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis exists session: %w", err)
	}
	if n == 0 {
		return nil, repository.ErrSessionNotFound
	}

	start := int64(0)
	if opt.Limit > 0 {
		start = -int64(opt.Limit)
	}

	raw, err := r.client.LRange(ctx, messagesKey(sessionID), start, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis lrange messages: %w", err)
	}

	out := make(model.Transcript, 0, len(raw))
	for _, item := range raw {
		var msg model.Message
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			r.l.Warnf(ctx, "internal.assistant.repository.redis.ListMessages: skipping bad message in %s: %v", sessionID, err)
			continue
		}
		out = append(out, msg)
	}
	return out, nil
}

func (r *implRepository) DeleteSession(ctx context.Context, id string) error {
	n, err := r.client.Del(ctx, sessionKey(id), messagesKey(id)).Result()
	if err != nil {
		return fmt.Errorf("redis del session: %w", err)
	}
	if n == 0 {
		return repository.ErrSessionNotFound
	}
	return nil
}
