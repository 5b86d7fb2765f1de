package router_test

import (
	"context"
	"testing"

	"banking-assistant/internal/model"
	"banking-assistant/internal/router"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func TestNormalize(t *testing.T) {
	tcs := map[string]string{
		"":                       "",
		"   ":                    "",
		"\t\n":                   "",
		"Check Balance":          "check balance",
		"  TRANSFER money  \n":   "transfer money",
		"What's my Spending?":    "what's my spending?",
		" mixed  Inner  Spaces ": "mixed  inner  spaces",
	}

	for in, want := range tcs {
		got := router.Normalize(in)
		if got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
		if again := router.Normalize(got); again != got {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, got, again)
		}
	}
}

func TestChatRulesOrder(t *testing.T) {
	want := []router.Intent{
		router.IntentSpendingInquiry,
		router.IntentBudgetAdvice,
		router.IntentCategoryBreakdown,
		router.IntentBalanceInquiry,
		router.IntentInvestmentAdvice,
		router.IntentFinancialTip,
	}

	rules := router.ChatRules()
	if len(rules) != len(want) {
		t.Fatalf("expected %d chat rules, got %d", len(want), len(rules))
	}
	for i, r := range rules {
		if r.Intent != want[i] {
			t.Errorf("chat rule %d: got %s, want %s", i, r.Intent, want[i])
		}
	}
}

func TestVoiceRulesOrder(t *testing.T) {
	want := []router.RouterOutput{
		{Intent: router.IntentBalanceInquiry},
		{Intent: router.IntentAccountCommand, Command: router.CommandTransfer},
		{Intent: router.IntentAccountCommand, Command: router.CommandDeposit},
		{Intent: router.IntentAccountCommand, Command: router.CommandWithdraw},
		{Intent: router.IntentAccountCommand, Command: router.CommandTransactionHistory},
		{Intent: router.IntentAccountCommand, Command: router.CommandProfile},
		{Intent: router.IntentHelp},
	}

	rules := router.VoiceRules()
	if len(rules) != len(want) {
		t.Fatalf("expected %d voice rules, got %d", len(want), len(rules))
	}
	for i, r := range rules {
		if r.Intent != want[i].Intent || r.Command != want[i].Command {
			t.Errorf("voice rule %d: got %s/%s, want %s/%s", i, r.Intent, r.Command, want[i].Intent, want[i].Command)
		}
	}
}

func TestRulesMatch(t *testing.T) {
	type tc struct {
		rules       router.Rules
		text        string
		wantIntent  router.Intent
		wantCommand router.Command
	}

	tcs := map[string]tc{
		"chat spending":                {router.ChatRules(), "how much did i spend", router.IntentSpendingInquiry, router.CommandNone},
		"chat spending beats account":  {router.ChatRules(), "spending on my account", router.IntentSpendingInquiry, router.CommandNone},
		"chat save beats categories":   {router.ChatRules(), "i want to save on categories", router.IntentBudgetAdvice, router.CommandNone},
		"chat category":                {router.ChatRules(), "show categories", router.IntentCategoryBreakdown, router.CommandNone},
		"chat account is balance":      {router.ChatRules(), "my account", router.IntentBalanceInquiry, router.CommandNone},
		"chat balance beats advice":    {router.ChatRules(), "balance advice", router.IntentBalanceInquiry, router.CommandNone},
		"chat invest beats tip":        {router.ChatRules(), "investment tip", router.IntentInvestmentAdvice, router.CommandNone},
		"chat advice":                  {router.ChatRules(), "any advice?", router.IntentFinancialTip, router.CommandNone},
		"chat has no help rule":        {router.ChatRules(), "help", router.IntentUnknown, router.CommandNone},
		"chat unknown":                 {router.ChatRules(), "xyzzy", router.IntentUnknown, router.CommandNone},
		"voice balance beats help":     {router.VoiceRules(), "check my balance, need help", router.IntentBalanceInquiry, router.CommandNone},
		"voice transfer beats help":    {router.VoiceRules(), "help me with a transfer", router.IntentAccountCommand, router.CommandTransfer},
		"voice deposit beats withdraw": {router.VoiceRules(), "deposit then withdraw", router.IntentAccountCommand, router.CommandDeposit},
		"voice withdraw":               {router.VoiceRules(), "withdraw money", router.IntentAccountCommand, router.CommandWithdraw},
		"voice history":                {router.VoiceRules(), "transaction history", router.IntentAccountCommand, router.CommandTransactionHistory},
		"voice history beats profile":  {router.VoiceRules(), "profile history", router.IntentAccountCommand, router.CommandTransactionHistory},
		"voice profile":                {router.VoiceRules(), "open my profile", router.IntentAccountCommand, router.CommandProfile},
		"voice help":                   {router.VoiceRules(), "help", router.IntentHelp, router.CommandNone},
		"voice account is not balance": {router.VoiceRules(), "open my account", router.IntentUnknown, router.CommandNone},
		"voice unknown":                {router.VoiceRules(), "xyzzy", router.IntentUnknown, router.CommandNone},
		"empty text":                   {router.VoiceRules(), "", router.IntentUnknown, router.CommandNone},
		"nil table":                    {nil, "balance", router.IntentUnknown, router.CommandNone},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			got := tc.rules.Match(tc.text)
			if got.Intent != tc.wantIntent || got.Command != tc.wantCommand {
				t.Errorf("Match(%q) = %s/%s, want %s/%s", tc.text, got.Intent, got.Command, tc.wantIntent, tc.wantCommand)
			}
			if got.Intent == router.IntentUnknown && got.Trigger != "" {
				t.Errorf("unknown intent should carry no trigger, got %q", got.Trigger)
			}
		})
	}
}

func TestRulesMatchIsPure(t *testing.T) {
	rules := router.VoiceRules()
	inputs := []string{"check balance", "help me with a transfer", "xyzzy", "history"}

	for _, in := range inputs {
		first := rules.Match(in)
		for i := 0; i < 50; i++ {
			if got := rules.Match(in); got != first {
				t.Fatalf("Match(%q) changed between calls: %+v then %+v", in, first, got)
			}
		}
	}
}

func TestRulesTablesAreCopies(t *testing.T) {
	r := router.New(&mockLogger{})
	ctx := context.Background()

	for name, rules := range map[string]func() router.Rules{"chat": router.ChatRules, "voice": router.VoiceRules} {
		t.Run(name, func(t *testing.T) {
			mutated := rules()
			want := mutated[0].Triggers[0]
			for i := range mutated {
				for j := range mutated[i].Triggers {
					mutated[i].Triggers[j] = "xyzzy"
				}
			}

			if got := rules()[0].Triggers[0]; got != want {
				t.Errorf("fresh table saw mutation: got %q, want %q", got, want)
			}
		})
	}

	if got := r.Classify(ctx, model.ModeChat, "my spending"); got.Intent != router.IntentSpendingInquiry {
		t.Errorf("router saw mutation: got %s", got.Intent)
	}
	if got := r.Classify(ctx, model.ModeVoice, "transfer"); got.Command != router.CommandTransfer {
		t.Errorf("router saw mutation: got %+v", got)
	}
}

func TestRulesFor(t *testing.T) {
	if len(router.RulesFor(model.ModeChat)) != len(router.ChatRules()) {
		t.Errorf("chat mode should use the chat table")
	}
	if len(router.RulesFor(model.ModeVoice)) != len(router.VoiceRules()) {
		t.Errorf("voice mode should use the voice table")
	}
	if router.RulesFor(model.Mode("sms")) != nil {
		t.Errorf("unknown mode should have no table")
	}
}

func TestKeywordRouter_Classify(t *testing.T) {
	r := router.New(&mockLogger{})
	ctx := context.Background()

	t.Run("normalizes before matching", func(t *testing.T) {
		got := r.Classify(ctx, model.ModeVoice, "   TRANSFER Fifty Dollars ")
		if got.Intent != router.IntentAccountCommand || got.Command != router.CommandTransfer {
			t.Errorf("got %+v", got)
		}
		if got.Trigger != "transfer" {
			t.Errorf("expected trigger transfer, got %q", got.Trigger)
		}
	})

	t.Run("mode selects table", func(t *testing.T) {
		if got := r.Classify(ctx, model.ModeChat, "Help"); got.Intent != router.IntentUnknown {
			t.Errorf("chat help should be unknown, got %s", got.Intent)
		}
		if got := r.Classify(ctx, model.ModeVoice, "Help"); got.Intent != router.IntentHelp {
			t.Errorf("voice help should be help, got %s", got.Intent)
		}
	})

	t.Run("unknown mode", func(t *testing.T) {
		if got := r.Classify(ctx, model.Mode("sms"), "balance"); got.Intent != router.IntentUnknown {
			t.Errorf("unknown mode should classify as unknown, got %s", got.Intent)
		}
	})
}
