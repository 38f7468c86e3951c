// Package models provides the data structures used throughout the application.
package models

import (
	"github.com/shopspring/decimal"

	"fjacquet/bureau-json/internal/xmltree"
)

// Format identifies the bureau schema a report document was detected as.
type Format string

const (
	FormatCIBIL        Format = "CIBIL"
	FormatExperian     Format = "EXPERIAN"
	FormatCRIFHighMark Format = "CRIF_HIGHMARK"
	FormatEquifax      Format = "EQUIFAX"
	FormatGeneric      Format = "GENERIC"
)

// NormalizedReport is the canonical in-memory form of a bureau report,
// whatever schema it arrived in. String fields default to "" and numeric
// fields to zero; absence is never represented as null.
type NormalizedReport struct {
	Name           string          `json:"name"`
	MobilePhone    string          `json:"mobilePhone"`
	PAN            string          `json:"pan"`
	CreditScore    int             `json:"creditScore"`
	ReportSummary  ReportSummary   `json:"reportSummary"`
	CreditAccounts []CreditAccount `json:"creditAccounts"`
	DetectedFormat Format          `json:"detectedFormat"`
	// RawParsed keeps the decoded document verbatim for audit and debugging.
	RawParsed *xmltree.Node `json:"rawParsed,omitempty"`
}

// ReportSummary holds the account-level totals a bureau reports about the
// applicant. Raw keeps the source summary subtree for audit.
type ReportSummary struct {
	TotalAccounts        int             `json:"totalAccounts"`
	ActiveAccounts       int             `json:"activeAccounts"`
	ClosedAccounts       int             `json:"closedAccounts"`
	CurrentBalanceAmount decimal.Decimal `json:"currentBalanceAmount"`
	SecuredAmount        decimal.Decimal `json:"securedAmount"`
	UnsecuredAmount      decimal.Decimal `json:"unsecuredAmount"`
	Last7DaysEnquiries   int             `json:"last7DaysEnquiries"`
	Raw                  *xmltree.Node   `json:"raw,omitempty"`
}

// CreditAccount is one tradeline from the report. Dates are formatted
// strings (DD/MM/YYYY where the source format was recognized); monetary
// fields are exact decimals defaulting to zero.
type CreditAccount struct {
	Type                string          `json:"type" csv:"Type"`
	AccountTypeCode     string          `json:"accountTypeCode" csv:"TypeCode"`
	PortfolioType       string          `json:"portfolioType,omitempty" csv:"PortfolioType"`
	Bank                string          `json:"bank" csv:"Bank"`
	AccountNumber       string          `json:"accountNumber" csv:"AccountNumber"`
	AccountStatus       string          `json:"accountStatus" csv:"Status"`
	AccountStatusCode   string          `json:"accountStatusCode" csv:"StatusCode"`
	OpenDate            string          `json:"openDate" csv:"OpenDate"`
	DateReported        string          `json:"dateReported" csv:"DateReported"`
	DateClosed          string          `json:"dateClosed" csv:"DateClosed"`
	CreditLimit         decimal.Decimal `json:"creditLimit" csv:"CreditLimit"`
	HighestCreditAmount decimal.Decimal `json:"highestCreditAmount" csv:"HighestCredit"`
	CurrentBalance      decimal.Decimal `json:"currentBalance" csv:"CurrentBalance"`
	AmountOverdue       decimal.Decimal `json:"amountOverdue" csv:"AmountOverdue"`
	PaymentRating       string          `json:"paymentRating" csv:"PaymentRating"`
	PaymentHistory      string          `json:"paymentHistory" csv:"PaymentHistory"`
	Address             string          `json:"address" csv:"Address"`
	HolderName          string          `json:"holderName" csv:"HolderName"`
	PAN                 string          `json:"pan" csv:"PAN"`
	DateOfBirth         string          `json:"dateOfBirth" csv:"DateOfBirth"`
	Phone               string          `json:"phone" csv:"Phone"`
	SuitFiled           string          `json:"suitFiled" csv:"SuitFiled"`
	WrittenOffStatus    string          `json:"writtenOffStatus" csv:"WrittenOffStatus"`
	Raw                 *xmltree.Node   `json:"raw,omitempty" csv:"-"`
}

// NewNormalizedReport returns a report with every numeric field set to a
// concrete zero, ready for an extractor to fill in.
func NewNormalizedReport() *NormalizedReport {
	return &NormalizedReport{
		CreditAccounts: []CreditAccount{},
		ReportSummary: ReportSummary{
			CurrentBalanceAmount: decimal.Zero,
			SecuredAmount:        decimal.Zero,
			UnsecuredAmount:      decimal.Zero,
		},
	}
}

// NewCreditAccount returns an account with zeroed monetary fields.
func NewCreditAccount() CreditAccount {
	return CreditAccount{
		CreditLimit:         decimal.Zero,
		HighestCreditAmount: decimal.Zero,
		CurrentBalance:      decimal.Zero,
		AmountOverdue:       decimal.Zero,
	}
}
