// Package cibilparser extracts normalized reports from CIBIL-format
// documents using the schema's fixed element paths.
package cibilparser

import (
	"strings"

	"github.com/sirupsen/logrus"

	"fjacquet/bureau-json/internal/codes"
	"fjacquet/bureau-json/internal/dateutils"
	"fjacquet/bureau-json/internal/logging"
	"fjacquet/bureau-json/internal/models"
	"fjacquet/bureau-json/internal/xmltree"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// markerKey is the top-level element that identifies a CIBIL document.
const markerKey = "INProfileResponse"

// Extract builds a normalized report from a CIBIL document tree. It walks
// the subtree under the marker key, or the whole document when the marker
// is absent at the expected level. Missing fields yield their defaults;
// this function never fails.
func Extract(doc *xmltree.Node) *models.NormalizedReport {
	root := doc.Get(markerKey)
	if root == nil {
		root = doc
	}

	out := models.NewNormalizedReport()

	extractApplicant(root, out)
	extractScore(root, out)
	extractSummary(root, out)
	extractAccounts(root, out)

	// Head-of-report fields can be missing from the applicant block while
	// still present on the first account's holder details.
	if len(out.CreditAccounts) > 0 {
		first := out.CreditAccounts[0]
		if out.Name == "" {
			out.Name = first.HolderName
		}
		if out.PAN == "" {
			out.PAN = first.PAN
		}
		if out.MobilePhone == "" {
			out.MobilePhone = first.Phone
		}
	}

	log.WithFields(logrus.Fields{
		logging.FieldFormat:   string(models.FormatCIBIL),
		logging.FieldAccounts: len(out.CreditAccounts),
	}).Debug("Extracted CIBIL report")

	return out
}

func extractApplicant(root *xmltree.Node, out *models.NormalizedReport) {
	applicant := root.Get("Current_Application").
		Get("Current_Application_Details").
		Get("Current_Applicant_Details")
	if applicant == nil {
		return
	}
	out.Name = joinName(applicant.Get("First_Name").Text(), applicant.Get("Last_Name").Text())
	out.MobilePhone = applicant.Get("MobilePhoneNumber").Text()
	out.PAN = applicant.Get("IncomeTaxPan").Text()
}

func extractScore(root *xmltree.Node, out *models.NormalizedReport) {
	score := root.Get("SCORE")
	if score == nil {
		return
	}
	out.CreditScore = models.ParseCount(score.Get("BureauScore").Text())
}

func extractSummary(root *xmltree.Node, out *models.NormalizedReport) {
	caisSummary := root.Get("CAIS_Account").Get("CAIS_Summary")
	if caisSummary != nil {
		creditAccount := caisSummary.Get("Credit_Account")
		outstanding := caisSummary.Get("Total_Outstanding_Balance")

		out.ReportSummary.TotalAccounts = models.ParseCount(creditAccount.Get("CreditAccountTotal").Text())
		out.ReportSummary.ActiveAccounts = models.ParseCount(creditAccount.Get("CreditAccountActive").Text())
		out.ReportSummary.ClosedAccounts = models.ParseCount(creditAccount.Get("CreditAccountClosed").Text())
		out.ReportSummary.CurrentBalanceAmount = models.ParseAmount(outstanding.Get("Outstanding_Balance_All").Text())
		out.ReportSummary.SecuredAmount = models.ParseAmount(outstanding.Get("Outstanding_Balance_Secured").Text())
		out.ReportSummary.UnsecuredAmount = models.ParseAmount(outstanding.Get("Outstanding_Balance_UnSecured").Text())
		out.ReportSummary.Raw = caisSummary
	}

	if caps := root.Get("TotalCAPS_Summary"); caps != nil {
		out.ReportSummary.Last7DaysEnquiries = models.ParseCount(caps.Get("TotalCAPSLast7Days").Text())
	}
}

func extractAccounts(root *xmltree.Node, out *models.NormalizedReport) {
	details := root.Get("CAIS_Account").Get("CAIS_Account_DETAILS")
	// A report with a single tradeline arrives as a bare map, not a
	// one-element list.
	for _, account := range details.AsList() {
		out.CreditAccounts = append(out.CreditAccounts, extractAccount(account, out.PAN))
	}
}

// addressLineKeys are the CIBIL holder address fields, in the order they
// are joined into a single address string.
var addressLineKeys = []string{
	"First_Line_Of_Address_non_normalized",
	"Second_Line_Of_Address_non_normalized",
	"Third_Line_Of_Address_non_normalized",
	"City_non_normalized",
	"ZIP_Postal_Code_non_normalized",
}

func extractAccount(account *xmltree.Node, fallbackPAN string) models.CreditAccount {
	holder := account.Get("CAIS_Holder_Details")
	address := account.Get("CAIS_Holder_Address_Details")

	pan := fallbackPAN
	if idDetails := account.Get("CAIS_Holder_ID_Details"); idDetails != nil {
		// ID details repeat per identity document; only the first is used.
		if idPAN := idDetails.First().Get("Income_TAX_PAN").Text(); idPAN != "" {
			pan = idPAN
		}
	}

	var addressParts []string
	for _, key := range addressLineKeys {
		if line := address.Get(key).Text(); line != "" {
			addressParts = append(addressParts, line)
		}
	}

	typeCode := account.Get("Account_Type").Text()
	statusCode := account.Get("Account_Status").Text()

	portfolioType := "Installment"
	if account.Get("Portfolio_Type").Text() == "R" {
		portfolioType = "Revolving"
	}

	suitFiled := "No"
	if account.Get("SuitFiled_WilfulDefault").Text() == "01" {
		suitFiled = "Yes"
	}

	out := models.NewCreditAccount()
	out.Type = codes.AccountType(typeCode)
	out.AccountTypeCode = typeCode
	out.PortfolioType = portfolioType
	out.Bank = strings.TrimSpace(account.Get("Subscriber_Name").Text())
	out.AccountNumber = account.Get("Account_Number").Text()
	out.AccountStatus = codes.AccountStatus(statusCode)
	out.AccountStatusCode = statusCode
	out.OpenDate = dateutils.FormatReportDate(account.Get("Open_Date").Text())
	out.DateReported = dateutils.FormatReportDate(account.Get("Date_Reported").Text())
	out.DateClosed = dateutils.FormatReportDate(account.Get("Date_Closed").Text())
	out.CreditLimit = models.ParseAmount(account.Get("Credit_Limit_Amount").Text())
	out.HighestCreditAmount = models.ParseAmount(account.Get("Highest_Credit_or_Original_Loan_Amount").Text())
	out.CurrentBalance = models.ParseAmount(account.Get("Current_Balance").Text())
	out.AmountOverdue = models.ParseAmount(account.Get("Amount_Past_Due").Text())
	out.PaymentRating = account.Get("Payment_Rating").Text()
	out.PaymentHistory = account.Get("Payment_History_Profile").Text()
	out.Address = strings.Join(addressParts, ", ")
	out.HolderName = joinName(holder.Get("First_Name_Non_Normalized").Text(), holder.Get("Surname_Non_Normalized").Text())
	out.PAN = pan
	out.DateOfBirth = dateutils.FormatReportDate(holder.Get("Date_of_birth").Text())
	out.Phone = account.Get("CAIS_Holder_Phone_Details").Get("Telephone_Number").Text()
	out.SuitFiled = suitFiled
	out.WrittenOffStatus = account.Get("Written_off_Settled_Status").Text()
	out.Raw = account
	return out
}

// joinName composes "first last" with empty halves dropped.
func joinName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}
