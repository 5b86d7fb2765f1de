package usecase

import (
	"time"

	"banking-assistant/internal/assistant"
)

// Log prefixes
const (
	LogPrefixStartSession = "internal.assistant.usecase.StartSession"
	LogPrefixChat         = "internal.assistant.usecase.Chat"
	LogPrefixVoice        = "internal.assistant.usecase.Voice"
	LogPrefixTranscript   = "internal.assistant.usecase.Transcript"
	LogPrefixEndSession   = "internal.assistant.usecase.EndSession"
)

// Defaults
const (
	DefaultReplyDelay    = 1000 * time.Millisecond
	DefaultNavigateDelay = 1500 * time.Millisecond
)

// Navigation targets
const (
	PathRetrieveBalance = "/retrieve-balance"
	PathTransfer        = "/account/transfer/%s"
	PathDeposit         = "/account/deposit/%s"
	PathWithdraw        = "/account/withdraw/%s"
	PathTransactions    = "/account/in/%s"
	PathProfile         = "/profile/%s"
)

// Chat copy
const (
	MsgGreeting = "Hello! I'm your AI Financial Assistant. I can help you analyze your spending, create budgets, and provide financial insights. What would you like to know?"

	MsgSpending = "Based on your recent transactions, you're spending an average of ₹5,483 per month. Your spending has increased by 15% compared to last quarter. I recommend setting a monthly budget of ₹6,000 to keep your finances on track."

	MsgBudget = "Here's a recommended budget breakdown for you:\n\n" +
		"• Food & Dining: ₹3,000 (30%)\n" +
		"• Transport: ₹1,000 (10%)\n" +
		"• Bills: ₹2,000 (20%)\n" +
		"• Savings: ₹2,500 (25%)\n" +
		"• Miscellaneous: ₹1,500 (15%)\n\n" +
		"Try to save at least 25% of your monthly income. You're currently at 18%, so there's room for improvement!"

	MsgCategory = "Your spending is distributed across these categories. Food & Dining takes the largest portion at 35%. Consider meal planning to reduce this expense by 10-15%."

	MsgBalanceTemplate = "You currently have %d account(s) with a total balance of ₹%s. Your largest account has ₹%s."

	MsgInvestment = "Based on your savings pattern, I recommend:\n\n" +
		"1. Emergency Fund: Save 6 months of expenses (₹40,000)\n" +
		"2. Fixed Deposits: ₹20,000 at 7% interest\n" +
		"3. Mutual Funds: ₹15,000 monthly SIP\n" +
		"4. Keep ₹10,000 liquid for opportunities\n\n" +
		"Start with building your emergency fund first!"

	MsgTipPrefix = "💡 Financial Tip: "

	MsgChatCapabilities = "I can help you with:\n\n" +
		"• Analyzing your spending patterns\n" +
		"• Creating a budget plan\n" +
		"• Providing savings advice\n" +
		"• Investment recommendations\n" +
		"• Financial tips\n" +
		"• Account balance overview\n\n" +
		"Just ask me anything about your finances!"
)

// Voice copy
const (
	MsgNavigateBalance     = "Navigating to balance page..."
	MsgOpenTransfer        = "Opening transfer page..."
	MsgOpenDeposit         = "Opening deposit page..."
	MsgOpenWithdraw        = "Opening withdrawal page..."
	MsgOpenTransactions    = "Showing your transactions..."
	MsgOpenProfile         = "Opening your profile..."
	MsgNoAccounts          = "You don't have any accounts yet. Please create an account first."
	MsgNoProfile           = "Unable to access profile. Please try again."
	MsgVoiceHelp           = "You can say: 'Check balance', 'Transfer money', 'Deposit', 'Withdraw', 'Show transactions', or 'Open profile'"
	MsgVoiceUnknown        = "I didn't understand that. Say 'help' to see available commands."
	MsgSpeechUnsupported   = "Voice recognition is not supported in your browser."
	MsgSpeechNotUnderstood = "Sorry, I couldn't understand that. Please try again."
)

// Tips is the fixed pool FinancialTip draws from.
var Tips = []string{
	"Track every expense, no matter how small. Small purchases add up quickly!",
	"Use the 50/30/20 rule: 50% needs, 30% wants, 20% savings.",
	"Automate your savings - transfer to savings account on payday.",
	"Review subscriptions monthly and cancel unused ones.",
	"Set specific financial goals with deadlines to stay motivated.",
}

// Illustrative chart datasets.
var (
	spendingSeries = []assistant.SpendingPoint{
		{Month: "Jan", Amount: 4500},
		{Month: "Feb", Amount: 5200},
		{Month: "Mar", Amount: 4800},
		{Month: "Apr", Amount: 6100},
		{Month: "May", Amount: 5500},
		{Month: "Jun", Amount: 6800},
	}

	categoryBreakdown = []assistant.CategorySlice{
		{Name: "Food & Dining", Value: 3500, Color: "#FF6384"},
		{Name: "Transport", Value: 1200, Color: "#36A2EB"},
		{Name: "Shopping", Value: 2800, Color: "#FFCE56"},
		{Name: "Bills & Utilities", Value: 1500, Color: "#4BC0C0"},
		{Name: "Entertainment", Value: 800, Color: "#9966FF"},
	}
)
