package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"banking-assistant/internal/assistant"
	"banking-assistant/internal/assistant/repository"
	"banking-assistant/internal/model"
	"banking-assistant/pkg/metrics"
)

// stamp assigns an id and creation time to a message built by the synthesizer.
func (uc *implUseCase) stamp(msg model.Message) model.Message {
	msg.ID = uuid.NewString()
	msg.CreatedAt = uc.now()
	return msg
}

func (uc *implUseCase) userMessage(text string) model.Message {
	return uc.stamp(model.Message{
		Role: model.RoleUser,
		Text: text,
	})
}

// openSession returns the caller's session, creating one of the given mode
// when sessionID is empty.
func (uc *implUseCase) openSession(ctx context.Context, sc model.Scope, sessionID string, mode model.Mode) (model.Session, error) {
	if sessionID == "" {
		out, err := uc.startSession(ctx, sc, mode)
		if err != nil {
			return model.Session{}, err
		}
		return out.Session, nil
	}

	sess, err := uc.getOwnedSession(ctx, sc, sessionID)
	if err != nil {
		return model.Session{}, err
	}
	if sess.Mode != mode {
		return model.Session{}, assistant.ErrModeMismatch
	}
	return sess, nil
}

// getOwnedSession loads a session and hides sessions of other users.
func (uc *implUseCase) getOwnedSession(ctx context.Context, sc model.Scope, sessionID string) (model.Session, error) {
	sess, err := uc.repo.GetSession(ctx, sessionID)
	if err != nil {
		return model.Session{}, mapRepoError(err)
	}
	if sess.UserID != sc.UserID {
		return model.Session{}, assistant.ErrSessionNotFound
	}
	return sess, nil
}

func mapRepoError(err error) error {
	if errors.Is(err, repository.ErrSessionNotFound) {
		return assistant.ErrSessionNotFound
	}
	return fmt.Errorf("transcript repository: %w", err)
}

func recordReply(mode model.Mode, reply model.Message) {
	metrics.IntentsTotal.WithLabelValues(string(mode), reply.Intent, reply.Command).Inc()
	if reply.SideEffect != nil {
		metrics.SideEffectsTotal.WithLabelValues(string(mode), string(reply.SideEffect.Kind)).Inc()
	}
}
