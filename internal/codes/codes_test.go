package codes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountType(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected string
	}{
		{"Credit card", "10", "Credit Card"},
		{"Personal loan", "51", "Personal Loan"},
		{"Home loan", "01", "Home Loan"},
		{"Gold loan", "08", "Gold Loan"},
		{"Overdraft", "33", "Overdraft"},
		{"Unknown code", "77", "Account Type 77"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, AccountType(tc.code))
		})
	}
}

func TestAccountStatus(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected string
	}{
		{"Active", "11", "Active"},
		{"Alternate active", "71", "Active"},
		{"Closed", "13", "Closed"},
		{"Written off", "53", "Written Off"},
		{"Unknown code", "99", "Status 99"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, AccountStatus(tc.code))
		})
	}
}

func TestMergeOverrides(t *testing.T) {
	MergeTypeOverrides(map[string]string{"90": "Crop Loan"})
	MergeStatusOverrides(map[string]string{"21": "Restructured"})
	defer func() {
		delete(accountTypes, "90")
		delete(accountStatuses, "21")
	}()

	assert.Equal(t, "Crop Loan", AccountType("90"))
	assert.Equal(t, "Restructured", AccountStatus("21"))
	// Base entries are untouched.
	assert.Equal(t, "Credit Card", AccountType("10"))
}
