package memory

import (
	"context"

	"github.com/google/uuid"

	"banking-assistant/internal/assistant/repository"
	"banking-assistant/internal/model"
)

func (r *implRepository) CreateSession(ctx context.Context, opt repository.CreateSessionOptions) (model.Session, error) {
	id := opt.ID
	if id == "" {
		id = uuid.New().String()
	}
	if r.sessions.Contains(id) {
		return model.Session{}, repository.ErrSessionExists
	}

	now := r.now()
	sess := model.Session{
		ID:        id,
		UserID:    opt.UserID,
		Mode:      opt.Mode,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.sessions.Add(id, &sessionEntry{session: sess})
	return sess, nil
}

func (r *implRepository) GetSession(ctx context.Context, id string) (model.Session, error) {
	e, ok := r.sessions.Get(id)
	if !ok {
		return model.Session{}, repository.ErrSessionNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session, nil
}

func (r *implRepository) AppendMessages(ctx context.Context, sessionID string, msgs ...model.Message) error {
	e, ok := r.sessions.Get(sessionID)
	if !ok {
		return repository.ErrSessionNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	// A concurrent delete or expiry must not be undone by the TTL refresh.
	if cur, ok := r.sessions.Peek(sessionID); e.deleted || !ok || cur != e {
		return repository.ErrSessionNotFound
	}

	e.messages = e.messages.Append(msgs...)
	e.session.UpdatedAt = r.now()

	// Re-adding refreshes the entry's TTL.
	r.sessions.Add(sessionID, e)
	return nil
}

func (r *implRepository) ListMessages(ctx context.Context, sessionID string, opt repository.ListMessagesOptions) (model.Transcript, error) {
	e, ok := r.sessions.Get(sessionID)
	if !ok {
		return nil, repository.ErrSessionNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	tail := e.messages.Last(opt.Limit)
	out := make(model.Transcript, len(tail))
	copy(out, tail)
	return out, nil
}

func (r *implRepository) DeleteSession(ctx context.Context, id string) error {
	e, ok := r.sessions.Peek(id)
	if !ok {
		return repository.ErrSessionNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.deleted {
		return repository.ErrSessionNotFound
	}
	e.deleted = true
	r.sessions.Remove(id)
	return nil
}
