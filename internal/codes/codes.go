// Package codes maps bureau-specific account type and status codes to
// human labels. The base tables are fixed, process-wide constants; the
// store package may merge label overrides on top at startup, after which
// lookups are read-only and safe for concurrent use.
package codes

import (
	"fmt"
)

// CreditCardTypeCode is the account type code bureaus use for credit
// cards. The aggregator treats any account with this code as a card.
const CreditCardTypeCode = "10"

var accountTypes = map[string]string{
	"10": "Credit Card",
	"51": "Personal Loan",
	"52": "Personal Loan",
	"01": "Home Loan",
	"02": "Housing Loan",
	"03": "Property Loan",
	"04": "Loan Against Property",
	"05": "Auto Loan",
	"06": "Two Wheeler Loan",
	"07": "Education Loan",
	"08": "Gold Loan",
	"09": "Business Loan",
	"32": "Commercial Vehicle Loan",
	"33": "Overdraft",
	"35": "Secured Credit Card",
	"36": "Consumer Loan",
	"37": "Prime Minister Jaan Dhan Yojana",
	"38": "Mudra Loans - Shishu",
	"39": "Mudra Loans - Kishor",
}

var accountStatuses = map[string]string{
	"11": "Active",
	"13": "Closed",
	"53": "Written Off",
	"71": "Active",
	"82": "Settled",
	"83": "Post (WO) Settled",
	"84": "Wilful Default",
}

// AccountType returns the label for an account type code. Unknown codes
// get a synthesized label rather than an error.
func AccountType(code string) string {
	if label, ok := accountTypes[code]; ok {
		return label
	}
	return fmt.Sprintf("Account Type %s", code)
}

// AccountStatus returns the label for an account status code, with a
// synthesized default for unknown codes.
func AccountStatus(code string) string {
	if label, ok := accountStatuses[code]; ok {
		return label
	}
	return fmt.Sprintf("Status %s", code)
}

// MergeTypeOverrides adds or replaces account type labels. Meant to be
// called once during startup, before any concurrent lookups.
func MergeTypeOverrides(overrides map[string]string) {
	for code, label := range overrides {
		accountTypes[code] = label
	}
}

// MergeStatusOverrides adds or replaces account status labels.
func MergeStatusOverrides(overrides map[string]string) {
	for code, label := range overrides {
		accountStatuses[code] = label
	}
}
