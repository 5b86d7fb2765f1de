package router

// Intent is the closed classification assigned to one piece of user input.
type Intent string

const (
	IntentSpendingInquiry   Intent = "SPENDING_INQUIRY"
	IntentBudgetAdvice      Intent = "BUDGET_ADVICE"
	IntentCategoryBreakdown Intent = "CATEGORY_BREAKDOWN"
	IntentBalanceInquiry    Intent = "BALANCE_INQUIRY"
	IntentInvestmentAdvice  Intent = "INVESTMENT_ADVICE"
	IntentFinancialTip      Intent = "FINANCIAL_TIP"
	IntentAccountCommand    Intent = "ACCOUNT_COMMAND"
	IntentHelp              Intent = "HELP"
	IntentUnknown           Intent = "UNKNOWN"
)

// Command refines IntentAccountCommand.
type Command string

const (
	CommandNone               Command = ""
	CommandTransfer           Command = "TRANSFER"
	CommandDeposit            Command = "DEPOSIT"
	CommandWithdraw           Command = "WITHDRAW"
	CommandTransactionHistory Command = "TRANSACTION_HISTORY"
	CommandProfile            Command = "PROFILE"
)

// RouterOutput is the result of classifying one message.
type RouterOutput struct {
	Intent  Intent  `json:"intent"`
	Command Command `json:"command,omitempty"` // Only set for IntentAccountCommand
	Trigger string  `json:"trigger,omitempty"` // Phrase that matched, empty for IntentUnknown
}

// Rule maps trigger phrases to an intent. A rule matches when the normalized
// text contains any of its triggers.
type Rule struct {
	Intent   Intent
	Command  Command
	Triggers []string
}

// Rules is an ordered rule table. Order is the tie-break: the first matching
// rule wins.
type Rules []Rule
