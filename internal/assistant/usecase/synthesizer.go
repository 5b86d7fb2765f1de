package usecase

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"banking-assistant/internal/model"
	"banking-assistant/internal/router"
)

// RandSource picks tip indexes. *rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

// Synthesizer turns a classification into an assistant message. It has no
// side effects beyond drawing from its RandSource.
type Synthesizer struct {
	mu            sync.Mutex
	rand          RandSource
	navigateDelay time.Duration
}

// NewSynthesizer creates a Synthesizer. A nil rnd is seeded from the clock
// and a zero navigateDelay uses DefaultNavigateDelay.
func NewSynthesizer(rnd RandSource, navigateDelay time.Duration) *Synthesizer {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if navigateDelay <= 0 {
		navigateDelay = DefaultNavigateDelay
	}
	return &Synthesizer{
		rand:          rnd,
		navigateDelay: navigateDelay,
	}
}

// Synthesize builds the reply for out. Every intent has a defined reply:
// missing accounts or profile produce an explanatory text instead of an
// error. The returned message has no ID or timestamp yet.
func (s *Synthesizer) Synthesize(mode model.Mode, out router.RouterOutput, dc model.DomainContext) model.Message {
	msg := model.Message{
		Role:    model.RoleAssistant,
		Intent:  string(out.Intent),
		Command: string(out.Command),
	}

	switch out.Intent {
	case router.IntentSpendingInquiry:
		msg.Text = MsgSpending
		msg.SideEffect = model.ShowChart(model.ChartSpending)

	case router.IntentBudgetAdvice:
		msg.Text = MsgBudget
		msg.SideEffect = model.ShowChart(model.ChartCategory)

	case router.IntentCategoryBreakdown:
		msg.Text = MsgCategory
		msg.SideEffect = model.ShowChart(model.ChartCategory)

	case router.IntentBalanceInquiry:
		if mode == model.ModeVoice {
			msg.Text = MsgNavigateBalance
			msg.SideEffect = model.Navigate(PathRetrieveBalance, s.navigateDelay)
			break
		}
		count, total, max := dc.BalanceSummary()
		msg.Text = fmt.Sprintf(MsgBalanceTemplate, count, formatAmount(total), formatAmount(max))

	case router.IntentInvestmentAdvice:
		msg.Text = MsgInvestment

	case router.IntentFinancialTip:
		msg.Text = MsgTipPrefix + s.pickTip()

	case router.IntentAccountCommand:
		msg.Text, msg.SideEffect = s.accountCommand(mode, out.Command, dc)

	case router.IntentHelp:
		msg.Text = helpText(mode)

	default:
		msg.Intent = string(router.IntentUnknown)
		msg.Command = ""
		msg.Text = unknownText(mode)
	}

	return msg
}

func (s *Synthesizer) accountCommand(mode model.Mode, cmd router.Command, dc model.DomainContext) (string, *model.SideEffect) {
	if cmd == router.CommandProfile {
		id := dc.ProfileID()
		if id == "" {
			return MsgNoProfile, nil
		}
		return MsgOpenProfile, model.Navigate(fmt.Sprintf(PathProfile, id), s.navigateDelay)
	}

	text, pathTemplate, ok := accountTarget(cmd)
	if !ok {
		return unknownText(mode), nil
	}
	accountID := dc.PrimaryAccountID()
	if accountID == "" {
		return MsgNoAccounts, nil
	}
	return text, model.Navigate(fmt.Sprintf(pathTemplate, accountID), s.navigateDelay)
}

// accountTarget returns the reply text and path template of an
// account-scoped command.
func accountTarget(cmd router.Command) (text string, pathTemplate string, ok bool) {
	switch cmd {
	case router.CommandTransfer:
		return MsgOpenTransfer, PathTransfer, true
	case router.CommandDeposit:
		return MsgOpenDeposit, PathDeposit, true
	case router.CommandWithdraw:
		return MsgOpenWithdraw, PathWithdraw, true
	case router.CommandTransactionHistory:
		return MsgOpenTransactions, PathTransactions, true
	default:
		return "", "", false
	}
}

func (s *Synthesizer) pickTip() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.rand.Intn(len(Tips))
	if i < 0 || i >= len(Tips) {
		i = 0
	}
	return Tips[i]
}

func helpText(mode model.Mode) string {
	if mode == model.ModeVoice {
		return MsgVoiceHelp
	}
	return MsgChatCapabilities
}

func unknownText(mode model.Mode) string {
	if mode == model.ModeVoice {
		return MsgVoiceUnknown
	}
	return MsgChatCapabilities
}

// formatAmount renders v with thousands separators and at most two
// fraction digits: 2640 -> "2,640", 1234.5 -> "1,234.5".
func formatAmount(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	cents := int64(math.Round(v * 100))
	whole := strconv.FormatInt(cents/100, 10)
	frac := cents % 100

	var b strings.Builder
	b.WriteString(sign)
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if frac != 0 {
		b.WriteByte('.')
		b.WriteString(strings.TrimRight(fmt.Sprintf("%02d", frac), "0"))
	}

	if b.String() == "-0" {
		return "0"
	}
	return b.String()
}
