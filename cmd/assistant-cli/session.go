package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"banking-assistant/internal/assistant"
	"banking-assistant/internal/assistant/repository/memory"
	"banking-assistant/internal/assistant/usecase"
	"banking-assistant/internal/model"
	"banking-assistant/internal/router"
	"banking-assistant/pkg/log"
)

const (
	lineUnsupported = ":unsupported"
	lineError       = ":error"
	lineQuit        = ":quit"
)

// session drives one assistant session over a line-oriented stream.
type session struct {
	uc    assistant.UseCase
	sc    model.Scope
	mode  model.Mode
	dc    model.DomainContext
	out   io.Writer
	delay func(ctx context.Context, d time.Duration)

	sessionID string
}

func newLogger() log.Logger {
	if !verbose {
		return log.NewNop()
	}
	return log.Init(log.ZapConfig{
		Level:    log.LevelDebug,
		Mode:     log.ModeDebug,
		Encoding: log.EncodingConsole,
	})
}

func newUseCase(l log.Logger, tipSeed int64) assistant.UseCase {
	if tipSeed == 0 {
		tipSeed = time.Now().UnixNano()
	}
	return usecase.New(l, router.New(l), memory.New(l, 1, 0), rand.New(rand.NewSource(tipSeed)), assistant.Config{
		ReplyDelay:    usecase.DefaultReplyDelay,
		NavigateDelay: usecase.DefaultNavigateDelay,
	})
}

func runSessionCmd(cmd *cobra.Command, mode model.Mode) error {
	dc, err := parseDomainContext(accounts, profileID)
	if err != nil {
		return err
	}

	uc := newUseCase(newLogger(), seed)
	s := &session{
		uc:    uc,
		sc:    model.Scope{UserID: "cli", Username: "cli"},
		mode:  mode,
		dc:    dc,
		out:   cmd.OutOrStdout(),
		delay: sleepCtx,
	}
	if noDelay {
		s.delay = func(context.Context, time.Duration) {}
	}

	return s.run(cmd.Context(), cmd.InOrStdin())
}

// run starts the session and processes in line by line until EOF or ":quit".
func (s *session) run(ctx context.Context, in io.Reader) error {
	start, err := s.uc.StartSession(ctx, s.sc, assistant.StartSessionInput{Mode: s.mode})
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	s.sessionID = start.Session.ID
	for _, msg := range start.Messages {
		s.printMessage(ctx, msg)
	}
	if s.mode == model.ModeVoice {
		fmt.Fprintln(s.out, "🎤 Say a command (one per line).")
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			break
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == lineQuit {
			break
		}
		if err := s.submit(ctx, line); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	return s.uc.EndSession(context.Background(), s.sc, s.sessionID)
}

func (s *session) submit(ctx context.Context, line string) error {
	var (
		out assistant.ReplyOutput
		err error
	)

	if s.mode == model.ModeChat {
		out, err = s.uc.Chat(ctx, s.sc, assistant.ChatInput{SessionID: s.sessionID, Text: line, Context: s.dc})
		if errors.Is(err, assistant.ErrEmptyInput) {
			return nil
		}
	} else {
		out, err = s.uc.Voice(ctx, s.sc, assistant.VoiceInput{SessionID: s.sessionID, Event: voiceEvent(line), Context: s.dc})
	}
	if err != nil {
		return err
	}

	if out.UserMessage != nil && s.mode == model.ModeVoice {
		fmt.Fprintf(s.out, "You said: %q\n", out.UserMessage.Text)
	}
	if out.RevealAfter > 0 {
		fmt.Fprintln(s.out, "…")
		s.delay(ctx, out.RevealAfter)
	}
	s.printMessage(ctx, out.Reply)
	return nil
}

func voiceEvent(line string) assistant.RecognitionEvent {
	switch strings.TrimSpace(line) {
	case lineUnsupported:
		return assistant.RecognitionEvent{Kind: assistant.RecognitionUnsupported}
	case lineError, "":
		return assistant.RecognitionEvent{Kind: assistant.RecognitionError}
	default:
		return assistant.RecognitionEvent{Kind: assistant.RecognitionResult, Transcript: line}
	}
}

func (s *session) printMessage(ctx context.Context, msg model.Message) {
	fmt.Fprintf(s.out, "assistant> %s\n", msg.Text)

	se := msg.SideEffect
	if se == nil {
		return
	}
	switch se.Kind {
	case model.SideEffectShowChart:
		s.printChart(ctx, se.Chart)
	case model.SideEffectNavigate:
		s.delay(ctx, time.Duration(se.DelayMs)*time.Millisecond)
		fmt.Fprintf(s.out, "→ navigate %s\n", se.Path)
	}
}

func (s *session) printChart(ctx context.Context, kind model.ChartKind) {
	chart, err := s.uc.ChartData(ctx, kind)
	if err != nil {
		return
	}

	fmt.Fprintf(s.out, "  [%s chart]\n", kind)
	for _, p := range chart.Spending {
		fmt.Fprintf(s.out, "  %-4s %8.0f\n", p.Month, p.Amount)
	}
	for _, c := range chart.Categories {
		fmt.Fprintf(s.out, "  %-18s %8.0f\n", c.Name, c.Value)
	}
}

// parseDomainContext builds the caller context from --account id:balance
// and --profile flags. Order of accounts is preserved.
func parseDomainContext(raw []string, profile string) (model.DomainContext, error) {
	var dc model.DomainContext
	for _, a := range raw {
		id, bal, ok := strings.Cut(a, ":")
		id = strings.TrimSpace(id)
		if !ok || id == "" {
			return model.DomainContext{}, fmt.Errorf("invalid --account %q, want id:balance", a)
		}
		balance, err := strconv.ParseFloat(strings.TrimSpace(bal), 64)
		if err != nil {
			return model.DomainContext{}, fmt.Errorf("invalid balance in --account %q: %w", a, err)
		}
		dc.Accounts = append(dc.Accounts, model.Account{ID: id, Balance: balance})
	}
	if profile != "" {
		dc.Profile = &model.Profile{ID: profile}
	}
	return dc, nil
}
