package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"banking-assistant/internal/model"
	"banking-assistant/pkg/log"
)

func TestParseDomainContext(t *testing.T) {
	t.Run("Accounts in order with profile", func(t *testing.T) {
		dc, err := parseDomainContext([]string{"A1:1000", " A2 : 1640.5 "}, "P1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := model.DomainContext{
			Accounts: []model.Account{{ID: "A1", Balance: 1000}, {ID: "A2", Balance: 1640.5}},
			Profile:  &model.Profile{ID: "P1"},
		}
		if diff := cmp.Diff(want, dc); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	for _, bad := range []string{"A1", ":100", "A1:lots"} {
		t.Run("Invalid "+bad, func(t *testing.T) {
			if _, err := parseDomainContext([]string{bad}, ""); err == nil {
				t.Errorf("expected error for %q", bad)
			}
		})
	}
}

func newTestSession(mode model.Mode, dc model.DomainContext, out *bytes.Buffer, waited *[]time.Duration) *session {
	return &session{
		uc:   newUseCase(log.NewNop(), 1),
		sc:   model.Scope{UserID: "cli"},
		mode: mode,
		dc:   dc,
		out:  out,
		delay: func(_ context.Context, d time.Duration) {
			*waited = append(*waited, d)
		},
	}
}

func TestChatSession(t *testing.T) {
	var (
		out    bytes.Buffer
		waited []time.Duration
	)
	dc := model.DomainContext{Accounts: []model.Account{{ID: "A1", Balance: 1000}, {ID: "A2", Balance: 1640}}}
	s := newTestSession(model.ModeChat, dc, &out, &waited)

	in := strings.NewReader("what's my balance?\n\nshow spending\n:quit\nignored\n")
	if err := s.run(context.Background(), in); err != nil {
		t.Fatalf("run: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Hello! I'm your AI Financial Assistant.",
		"total balance of ₹2,640",
		"[spending chart]",
		"Jan",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "ignored") {
		t.Errorf("input after :quit was processed")
	}
	if len(waited) != 2 || waited[0] != time.Second {
		t.Errorf("expected two 1s reveal delays, got %v", waited)
	}
}

func TestVoiceSession(t *testing.T) {
	var (
		out    bytes.Buffer
		waited []time.Duration
	)
	dc := model.DomainContext{Accounts: []model.Account{{ID: "A1", Balance: 500}}}
	s := newTestSession(model.ModeVoice, dc, &out, &waited)

	in := strings.NewReader("Transfer money\n:unsupported\n:error\nopen profile\n")
	if err := s.run(context.Background(), in); err != nil {
		t.Fatalf("run: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		`You said: "transfer money"`,
		"→ navigate /account/transfer/A1",
		"Voice recognition is not supported in your browser.",
		"Sorry, I couldn't understand that. Please try again.",
		"Unable to access profile. Please try again.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if len(waited) != 1 || waited[0] != 1500*time.Millisecond {
		t.Errorf("expected one 1.5s navigation delay, got %v", waited)
	}
}

func TestClassifyCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"classify", "--mode", "voice", "check my balance, need help", "deposit cash", "hello"})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil) })

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	want := "check my balance, need help\tBALANCE_INQUIRY\n" +
		"deposit cash\tACCOUNT_COMMAND/DEPOSIT\n" +
		"hello\tUNKNOWN\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}
