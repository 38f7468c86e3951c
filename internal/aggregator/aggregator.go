// Package aggregator derives account-level statistics from a normalized
// report's account list.
package aggregator

import (
	"strings"

	"github.com/shopspring/decimal"

	"fjacquet/bureau-json/internal/codes"
	"fjacquet/bureau-json/internal/models"
)

// GetAccountsSummary aggregates the account list into counts and exact
// sums. An account counts as a credit card when its type code is the card
// code or its label contains "credit card" case-insensitively; everything
// else counts as a loan. Active/closed counts match on the status label by
// case-insensitive substring, since labels vary across bureaus ("Active",
// "ACTIVE ACCOUNT", "Closed by consumer"). Pure function, no error cases:
// absent or zero fields contribute zero.
func GetAccountsSummary(accounts []models.CreditAccount) models.AccountsSummary {
	summary := models.NewAccountsSummary()

	for _, account := range accounts {
		if account.AccountTypeCode == codes.CreditCardTypeCode ||
			strings.Contains(strings.ToLower(account.Type), "credit card") {
			summary.TotalCreditCards++
		} else {
			summary.TotalLoans++
		}

		status := strings.ToLower(account.AccountStatus)
		if strings.Contains(status, "active") {
			summary.TotalActiveAccounts++
		} else if strings.Contains(status, "closed") {
			summary.TotalClosedAccounts++
		}

		summary.TotalOverdueAmount = summary.TotalOverdueAmount.Add(account.AmountOverdue)
		summary.TotalCurrentBalance = summary.TotalCurrentBalance.Add(account.CurrentBalance)

		if account.AmountOverdue.GreaterThan(decimal.Zero) {
			summary.AccountsWithOverdue++
		}
	}

	return summary
}
