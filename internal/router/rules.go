package router

import (
	"slices"
	"strings"

	"banking-assistant/internal/model"
)

// Normalize lowercases and trims raw input. Blank input yields "".
func Normalize(raw string) string {
	return strings.TrimSpace(strings.ToLower(raw))
}

// ChatRules returns a fresh copy of the chat assistant's rule table in
// match order.
func ChatRules() Rules {
	return Rules{
		{Intent: IntentSpendingInquiry, Triggers: slices.Clone(triggersSpending)},
		{Intent: IntentBudgetAdvice, Triggers: slices.Clone(triggersBudget)},
		{Intent: IntentCategoryBreakdown, Triggers: slices.Clone(triggersCategory)},
		{Intent: IntentBalanceInquiry, Triggers: slices.Clone(triggersBalance)},
		{Intent: IntentInvestmentAdvice, Triggers: slices.Clone(triggersInvestment)},
		{Intent: IntentFinancialTip, Triggers: slices.Clone(triggersTip)},
	}
}

// VoiceRules returns a fresh copy of the voice banking rule table in match
// order.
func VoiceRules() Rules {
	return Rules{
		{Intent: IntentBalanceInquiry, Triggers: slices.Clone(triggersVoiceBalance)},
		{Intent: IntentAccountCommand, Command: CommandTransfer, Triggers: slices.Clone(triggersTransfer)},
		{Intent: IntentAccountCommand, Command: CommandDeposit, Triggers: slices.Clone(triggersDeposit)},
		{Intent: IntentAccountCommand, Command: CommandWithdraw, Triggers: slices.Clone(triggersWithdraw)},
		{Intent: IntentAccountCommand, Command: CommandTransactionHistory, Triggers: slices.Clone(triggersHistory)},
		{Intent: IntentAccountCommand, Command: CommandProfile, Triggers: slices.Clone(triggersProfile)},
		{Intent: IntentHelp, Triggers: slices.Clone(triggersHelp)},
	}
}

// RulesFor returns the rule table for mode, or nil for an unknown mode.
func RulesFor(mode model.Mode) Rules {
	switch mode {
	case model.ModeChat:
		return ChatRules()
	case model.ModeVoice:
		return VoiceRules()
	default:
		return nil
	}
}

// Match returns the first rule whose trigger is contained in normalized.
// normalized must already have gone through Normalize.
func (rs Rules) Match(normalized string) RouterOutput {
	if normalized == "" {
		return RouterOutput{Intent: RouterFallbackIntent}
	}

	for _, r := range rs {
		for _, trigger := range r.Triggers {
			if strings.Contains(normalized, trigger) {
				return RouterOutput{Intent: r.Intent, Command: r.Command, Trigger: trigger}
			}
		}
	}

	return RouterOutput{Intent: RouterFallbackIntent}
}
