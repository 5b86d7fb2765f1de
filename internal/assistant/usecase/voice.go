package usecase

import (
	"context"

	"banking-assistant/internal/assistant"
	"banking-assistant/internal/model"
	"banking-assistant/internal/router"
	"banking-assistant/pkg/metrics"
)

// Voice handles the terminal event of one speech capture. Recognition
// errors and missing speech support produce an informational reply with no
// user message. A blank result appends nothing and returns ErrEmptyInput.
func (uc *implUseCase) Voice(ctx context.Context, sc model.Scope, input assistant.VoiceInput) (assistant.ReplyOutput, error) {
	switch input.Event.Kind {
	case assistant.RecognitionResult, assistant.RecognitionError, assistant.RecognitionUnsupported:
	default:
		return assistant.ReplyOutput{}, assistant.ErrInvalidEvent
	}
	if input.Event.Kind == assistant.RecognitionResult && router.Normalize(input.Event.Transcript) == "" {
		return assistant.ReplyOutput{}, assistant.ErrEmptyInput
	}

	sess, err := uc.openSession(ctx, sc, input.SessionID, model.ModeVoice)
	if err != nil {
		return assistant.ReplyOutput{}, err
	}
	metrics.RecognitionEventsTotal.WithLabelValues(string(input.Event.Kind)).Inc()

	var (
		userMsg *model.Message
		reply   model.Message
	)

	switch input.Event.Kind {
	case assistant.RecognitionUnsupported:
		reply = uc.stamp(model.Message{Role: model.RoleAssistant, Text: MsgSpeechUnsupported})

	case assistant.RecognitionError:
		reply = uc.stamp(model.Message{Role: model.RoleAssistant, Text: MsgSpeechNotUnderstood})

	default:
		normalized := router.Normalize(input.Event.Transcript)
		out := uc.router.Classify(ctx, model.ModeVoice, normalized)
		msg := uc.userMessage(normalized)
		userMsg = &msg
		reply = uc.stamp(uc.synth.Synthesize(model.ModeVoice, out, input.Context))
	}

	msgs := []model.Message{reply}
	if userMsg != nil {
		msgs = []model.Message{*userMsg, reply}
	}
	if err := uc.repo.AppendMessages(ctx, sess.ID, msgs...); err != nil {
		uc.l.Errorf(ctx, "%s: AppendMessages: %v", LogPrefixVoice, err)
		return assistant.ReplyOutput{}, mapRepoError(err)
	}
	if reply.Intent != "" {
		recordReply(model.ModeVoice, reply)
	}

	uc.l.Debugf(ctx, "%s: session=%s event=%s intent=%s", LogPrefixVoice, sess.ID, input.Event.Kind, reply.Intent)

	return assistant.ReplyOutput{
		Session:     sess,
		UserMessage: userMsg,
		Reply:       reply,
		Intent:      router.Intent(reply.Intent),
		Command:     router.Command(reply.Command),
	}, nil
}
