package genericparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/bureau-json/internal/models"
	"fjacquet/bureau-json/internal/xmltree"
)

func decode(t *testing.T, xml string) *xmltree.Node {
	t.Helper()
	root, err := xmltree.DecodeString(xml)
	require.NoError(t, err)
	return root
}

func TestExtractPrefersFirstLastOverFullName(t *testing.T) {
	doc := decode(t, `<root>
		<FullName>Wrong Pick</FullName>
		<FirstName>Jane</FirstName>
		<LastName>Smith</LastName>
	</root>`)

	report := Extract(doc)
	assert.Equal(t, "Jane Smith", report.Name)
}

func TestExtractSingleNameHalf(t *testing.T) {
	doc := decode(t, `<root><FirstName>Jane</FirstName></root>`)
	assert.Equal(t, "Jane", Extract(doc).Name)
}

func TestExtractFullNameFallback(t *testing.T) {
	doc := decode(t, `<root><ConsumerName>Jane Smith</ConsumerName></root>`)
	assert.Equal(t, "Jane Smith", Extract(doc).Name)
}

func TestExtractHeadFields(t *testing.T) {
	doc := decode(t, `<root>
		<Profile>
			<MobileNumber>9000000000</MobileNumber>
			<PanNumber>ABCDE1234F</PanNumber>
		</Profile>
		<ScoreBlock><CreditScore>720</CreditScore></ScoreBlock>
		<Totals>
			<TotalAccounts>4</TotalAccounts>
			<ActiveAccounts>3</ActiveAccounts>
			<ClosedAccounts>1</ClosedAccounts>
			<TotalOutstanding>120000</TotalOutstanding>
		</Totals>
	</root>`)

	report := Extract(doc)
	assert.Equal(t, "9000000000", report.MobilePhone)
	assert.Equal(t, "ABCDE1234F", report.PAN)
	assert.Equal(t, 720, report.CreditScore)
	assert.Equal(t, 4, report.ReportSummary.TotalAccounts)
	assert.Equal(t, 3, report.ReportSummary.ActiveAccounts)
	assert.Equal(t, 1, report.ReportSummary.ClosedAccounts)
	assert.True(t, report.ReportSummary.CurrentBalanceAmount.Equal(models.ParseAmount("120000")))
}

func TestExtractAccountsFromTradelines(t *testing.T) {
	doc := decode(t, `<root><Report>
		<Tradeline>
			<AccountType>Credit Card</AccountType>
			<Lender>Some Bank</Lender>
			<AccountNo>4111</AccountNo>
			<Status>Active</Status>
			<Balance>1500</Balance>
			<OverdueAmount>0</OverdueAmount>
			<CreditLimit>50000</CreditLimit>
		</Tradeline>
		<Tradeline>
			<AccountType>Auto Loan</AccountType>
			<Lender>Other Bank</Lender>
			<Status>Closed</Status>
			<Balance>0</Balance>
		</Tradeline>
	</Report></root>`)

	report := Extract(doc)
	require.Len(t, report.CreditAccounts, 2)

	first := report.CreditAccounts[0]
	assert.Equal(t, "Credit Card", first.Type)
	assert.Equal(t, "Some Bank", first.Bank)
	assert.Equal(t, "4111", first.AccountNumber)
	assert.Equal(t, "Active", first.AccountStatus)
	assert.True(t, first.CurrentBalance.Equal(models.ParseAmount("1500")))
	assert.True(t, first.CreditLimit.Equal(models.ParseAmount("50000")))
	assert.NotNil(t, first.Raw)

	assert.Equal(t, "Closed", report.CreditAccounts[1].AccountStatus)
}

func TestExtractSingletonAccountCoercion(t *testing.T) {
	doc := decode(t, `<root><Accounts>
		<LoanAccount><AccountType>Auto Loan</AccountType><Balance>200</Balance></LoanAccount>
	</Accounts></root>`)

	report := Extract(doc)
	require.Len(t, report.CreditAccounts, 1)
	assert.Equal(t, "Auto Loan", report.CreditAccounts[0].Type)
}

func TestExtractStringCodePassesThrough(t *testing.T) {
	// A status encoded as a numeric string bypasses the code lookup: any
	// string value is treated as already human-readable.
	doc := decode(t, `<root><Tradeline>
		<AccountType>10</AccountType>
		<Status>11</Status>
	</Tradeline></root>`)

	report := Extract(doc)
	require.Len(t, report.CreditAccounts, 1)
	assert.Equal(t, "10", report.CreditAccounts[0].Type)
	assert.Equal(t, "11", report.CreditAccounts[0].AccountStatus)
}

func TestExtractMissingTypeIsUnknown(t *testing.T) {
	doc := decode(t, `<root><Tradeline><Lender>Bank</Lender></Tradeline></root>`)

	report := Extract(doc)
	require.Len(t, report.CreditAccounts, 1)
	assert.Equal(t, "Unknown", report.CreditAccounts[0].Type)
	assert.Empty(t, report.CreditAccounts[0].AccountStatus)
}

func TestExtractAddressMapFlattened(t *testing.T) {
	doc := decode(t, `<root><Tradeline>
		<AccountType>Auto Loan</AccountType>
		<Address>
			<Line1>12 Main St</Line1>
			<City>Mumbai</City>
			<Pin>400001</Pin>
		</Address>
	</Tradeline></root>`)

	report := Extract(doc)
	require.Len(t, report.CreditAccounts, 1)
	assert.Equal(t, "12 Main St, Mumbai, 400001", report.CreditAccounts[0].Address)
}

func TestExtractAddressString(t *testing.T) {
	doc := decode(t, `<root><Tradeline>
		<AccountType>Auto Loan</AccountType>
		<Address>12 Main St, Mumbai</Address>
	</Tradeline></root>`)

	report := Extract(doc)
	require.Len(t, report.CreditAccounts, 1)
	assert.Equal(t, "12 Main St, Mumbai", report.CreditAccounts[0].Address)
}

func TestExtractNothingFound(t *testing.T) {
	report := Extract(decode(t, `<root><Unrelated>stuff</Unrelated></root>`))

	assert.Empty(t, report.Name)
	assert.Zero(t, report.CreditScore)
	assert.Empty(t, report.CreditAccounts)
	assert.True(t, report.ReportSummary.CurrentBalanceAmount.IsZero())
}
