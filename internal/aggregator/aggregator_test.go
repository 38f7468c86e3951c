package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fjacquet/bureau-json/internal/models"
)

func account(typeCode, typeLabel, status, overdue, balance string) models.CreditAccount {
	a := models.NewCreditAccount()
	a.AccountTypeCode = typeCode
	a.Type = typeLabel
	a.AccountStatus = status
	a.AmountOverdue = models.ParseAmount(overdue)
	a.CurrentBalance = models.ParseAmount(balance)
	return a
}

func TestGetAccountsSummary(t *testing.T) {
	accounts := []models.CreditAccount{
		account("10", "Credit Card", "Active", "0", "100"),
		account("05", "Auto Loan", "Closed", "50", "200"),
	}

	summary := GetAccountsSummary(accounts)

	assert.Equal(t, 1, summary.TotalCreditCards)
	assert.Equal(t, 1, summary.TotalLoans)
	assert.Equal(t, 1, summary.TotalActiveAccounts)
	assert.Equal(t, 1, summary.TotalClosedAccounts)
	assert.Equal(t, 1, summary.AccountsWithOverdue)
	assert.True(t, summary.TotalOverdueAmount.Equal(models.ParseAmount("50")))
	assert.True(t, summary.TotalCurrentBalance.Equal(models.ParseAmount("300")))
}

func TestGetAccountsSummaryCardByLabel(t *testing.T) {
	// No card type code, but the label identifies the account as a card.
	accounts := []models.CreditAccount{
		account("35", "Secured Credit Card", "Active", "0", "0"),
	}
	summary := GetAccountsSummary(accounts)
	assert.Equal(t, 1, summary.TotalCreditCards)
	assert.Equal(t, 0, summary.TotalLoans)
}

func TestGetAccountsSummaryStatusSubstring(t *testing.T) {
	accounts := []models.CreditAccount{
		account("05", "Auto Loan", "ACTIVE ACCOUNT", "0", "0"),
		account("05", "Auto Loan", "Closed by consumer", "0", "0"),
		account("05", "Auto Loan", "Written Off", "0", "0"),
	}
	summary := GetAccountsSummary(accounts)
	assert.Equal(t, 1, summary.TotalActiveAccounts)
	assert.Equal(t, 1, summary.TotalClosedAccounts)
}

func TestGetAccountsSummaryExactSums(t *testing.T) {
	accounts := []models.CreditAccount{
		account("05", "Auto Loan", "Active", "0.10", "0.10"),
		account("05", "Auto Loan", "Active", "0.20", "0.20"),
	}
	summary := GetAccountsSummary(accounts)
	assert.True(t, summary.TotalOverdueAmount.Equal(models.ParseAmount("0.30")),
		"decimal sums must be exact, got %s", summary.TotalOverdueAmount)
	assert.True(t, summary.TotalCurrentBalance.Equal(models.ParseAmount("0.30")))
	assert.Equal(t, 2, summary.AccountsWithOverdue)
}

func TestGetAccountsSummaryEmpty(t *testing.T) {
	summary := GetAccountsSummary(nil)
	assert.Equal(t, 0, summary.TotalCreditCards)
	assert.Equal(t, 0, summary.TotalLoans)
	assert.True(t, summary.TotalOverdueAmount.IsZero())
	assert.True(t, summary.TotalCurrentBalance.IsZero())
}
