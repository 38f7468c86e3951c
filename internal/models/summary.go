package models

import (
	"github.com/shopspring/decimal"
)

// AccountsSummary is the aggregate view over a report's account list.
type AccountsSummary struct {
	TotalCreditCards    int             `json:"totalCreditCards" csv:"TotalCreditCards"`
	TotalLoans          int             `json:"totalLoans" csv:"TotalLoans"`
	TotalActiveAccounts int             `json:"totalActiveAccounts" csv:"TotalActiveAccounts"`
	TotalClosedAccounts int             `json:"totalClosedAccounts" csv:"TotalClosedAccounts"`
	TotalOverdueAmount  decimal.Decimal `json:"totalOverdueAmount" csv:"TotalOverdueAmount"`
	TotalCurrentBalance decimal.Decimal `json:"totalCurrentBalance" csv:"TotalCurrentBalance"`
	AccountsWithOverdue int             `json:"accountsWithOverdue" csv:"AccountsWithOverdue"`
}

// NewAccountsSummary returns a summary with zeroed totals.
func NewAccountsSummary() AccountsSummary {
	return AccountsSummary{
		TotalOverdueAmount:  decimal.Zero,
		TotalCurrentBalance: decimal.Zero,
	}
}
