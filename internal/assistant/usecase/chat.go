package usecase

import (
	"context"
	"strings"

	"banking-assistant/internal/assistant"
	"banking-assistant/internal/model"
	"banking-assistant/internal/router"
)

// Chat classifies one typed message and appends the exchange to the
// session transcript. The reply is returned immediately; RevealAfter tells
// the caller how long to show the typing indicator.
func (uc *implUseCase) Chat(ctx context.Context, sc model.Scope, input assistant.ChatInput) (assistant.ReplyOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return assistant.ReplyOutput{}, assistant.ErrEmptyInput
	}

	sess, err := uc.openSession(ctx, sc, input.SessionID, model.ModeChat)
	if err != nil {
		return assistant.ReplyOutput{}, err
	}

	out := uc.router.Classify(ctx, model.ModeChat, input.Text)

	userMsg := uc.userMessage(input.Text)
	reply := uc.stamp(uc.synth.Synthesize(model.ModeChat, out, input.Context))

	if err := uc.repo.AppendMessages(ctx, sess.ID, userMsg, reply); err != nil {
		uc.l.Errorf(ctx, "%s: AppendMessages: %v", LogPrefixChat, err)
		return assistant.ReplyOutput{}, mapRepoError(err)
	}
	recordReply(model.ModeChat, reply)

	uc.l.Debugf(ctx, "%s: session=%s intent=%s", LogPrefixChat, sess.ID, out.Intent)

	return assistant.ReplyOutput{
		Session:     sess,
		UserMessage: &userMsg,
		Reply:       reply,
		Intent:      router.Intent(reply.Intent),
		Command:     router.Command(reply.Command),
		RevealAfter: uc.cfg.ReplyDelay,
	}, nil
}
