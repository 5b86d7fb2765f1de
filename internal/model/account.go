package model

// Account is the slice of an account the assistant needs: its id and balance.
type Account struct {
	ID      string  `json:"id"`
	Balance float64 `json:"balance"`
}

// Profile identifies the signed-in user's profile.
type Profile struct {
	ID string `json:"id"`
}

// DomainContext is the caller's read-only snapshot for one request.
// Accounts keep the caller's order; the first account is the default target
// of account commands.
type DomainContext struct {
	Accounts []Account `json:"accounts"`
	Profile  *Profile  `json:"profile,omitempty"`
}

// HasAccounts reports whether at least one account is present.
func (dc DomainContext) HasAccounts() bool {
	return len(dc.Accounts) > 0
}

// PrimaryAccountID returns the id of the first account, or "" when there is none.
func (dc DomainContext) PrimaryAccountID() string {
	if !dc.HasAccounts() {
		return ""
	}
	return dc.Accounts[0].ID
}

// ProfileID returns the profile id, or "" when no profile is known.
func (dc DomainContext) ProfileID() string {
	if dc.Profile == nil {
		return ""
	}
	return dc.Profile.ID
}

// BalanceSummary returns the number of accounts, their total balance and the
// largest single balance. An empty context yields zeros.
func (dc DomainContext) BalanceSummary() (count int, total float64, max float64) {
	for i, acc := range dc.Accounts {
		total += acc.Balance
		if i == 0 || acc.Balance > max {
			max = acc.Balance
		}
	}
	return len(dc.Accounts), total, max
}
