package usecase

import (
	"context"

	"banking-assistant/internal/assistant"
	"banking-assistant/internal/assistant/repository"
	"banking-assistant/internal/model"
)

// StartSession opens a session. Chat transcripts begin with the greeting.
func (uc *implUseCase) StartSession(ctx context.Context, sc model.Scope, input assistant.StartSessionInput) (assistant.StartSessionOutput, error) {
	if !input.Mode.IsValid() {
		return assistant.StartSessionOutput{}, assistant.ErrInvalidMode
	}
	return uc.startSession(ctx, sc, input.Mode)
}

func (uc *implUseCase) startSession(ctx context.Context, sc model.Scope, mode model.Mode) (assistant.StartSessionOutput, error) {
	sess, err := uc.repo.CreateSession(ctx, repository.CreateSessionOptions{
		UserID: sc.UserID,
		Mode:   mode,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: CreateSession: %v", LogPrefixStartSession, err)
		return assistant.StartSessionOutput{}, mapRepoError(err)
	}

	var msgs model.Transcript
	if mode == model.ModeChat {
		greeting := uc.stamp(model.Message{
			Role: model.RoleAssistant,
			Text: MsgGreeting,
		})
		if err := uc.repo.AppendMessages(ctx, sess.ID, greeting); err != nil {
			uc.l.Errorf(ctx, "%s: AppendMessages: %v", LogPrefixStartSession, err)
			return assistant.StartSessionOutput{}, mapRepoError(err)
		}
		msgs = msgs.Append(greeting)
	}

	uc.l.Infof(ctx, "%s: session %s started (mode=%s user=%s)", LogPrefixStartSession, sess.ID, mode, sc.UserID)
	return assistant.StartSessionOutput{Session: sess, Messages: msgs}, nil
}

// Transcript returns a session's messages, the most recent Limit of them
// when Limit > 0. Without a Limit the configured history limit applies.
func (uc *implUseCase) Transcript(ctx context.Context, sc model.Scope, input assistant.TranscriptInput) (assistant.TranscriptOutput, error) {
	sess, err := uc.getOwnedSession(ctx, sc, input.SessionID)
	if err != nil {
		return assistant.TranscriptOutput{}, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = uc.cfg.HistoryLimit
	}

	msgs, err := uc.repo.ListMessages(ctx, sess.ID, repository.ListMessagesOptions{Limit: limit})
	if err != nil {
		uc.l.Errorf(ctx, "%s: ListMessages: %v", LogPrefixTranscript, err)
		return assistant.TranscriptOutput{}, mapRepoError(err)
	}

	return assistant.TranscriptOutput{Session: sess, Messages: msgs}, nil
}

// EndSession deletes a session and its transcript.
func (uc *implUseCase) EndSession(ctx context.Context, sc model.Scope, sessionID string) error {
	sess, err := uc.getOwnedSession(ctx, sc, sessionID)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteSession(ctx, sess.ID); err != nil {
		uc.l.Errorf(ctx, "%s: DeleteSession: %v", LogPrefixEndSession, err)
		return mapRepoError(err)
	}

	uc.l.Infof(ctx, "%s: session %s ended", LogPrefixEndSession, sess.ID)
	return nil
}
