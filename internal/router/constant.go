package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// RouterFallbackIntent is returned when no rule matches.
const RouterFallbackIntent = IntentUnknown

// Chat triggers
var (
	triggersSpending   = []string{"spending", "spend"}
	triggersBudget     = []string{"budget", "save"}
	triggersCategory   = []string{"category", "categories"}
	triggersBalance    = []string{"balance", "account"}
	triggersInvestment = []string{"invest", "investment"}
	triggersTip        = []string{"tip", "advice"}
)

// Voice triggers
var (
	triggersVoiceBalance = []string{"balance", "check balance"}
	triggersTransfer     = []string{"transfer"}
	triggersDeposit      = []string{"deposit"}
	triggersWithdraw     = []string{"withdraw"}
	triggersHistory      = []string{"transaction", "history", "transactions"}
	triggersProfile      = []string{"profile"}
	triggersHelp         = []string{"help"}
)
