// Package genericparser extracts normalized reports from documents whose
// schema is unknown, using a bounded-depth candidate-key search instead of
// fixed paths. It serves every format except CIBIL, including documents
// that match no bureau marker at all.
package genericparser

import (
	"strings"

	"github.com/sirupsen/logrus"

	"fjacquet/bureau-json/internal/codes"
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

// accountSearchDepth bounds the search for the account list node. It sits
// between the general field bound and the per-candidate try bound because
// account containers nest deeper than head-of-report fields but a looser
// bound would start matching unrelated repeating structures.
const accountSearchDepth = 4

// Extract builds a normalized report from an arbitrary document tree by
// probing candidate key names at bounded depth. Fields that cannot be
// located yield their defaults; this function never fails.
func Extract(doc *xmltree.Node) *models.NormalizedReport {
	out := models.NewNormalizedReport()

	extractName(doc, out)
	out.MobilePhone = xmltree.TryKeys(doc, phoneKeys).Text()
	out.PAN = xmltree.TryKeys(doc, panKeys).Text()
	out.CreditScore = models.ParseCount(xmltree.TryKeys(doc, scoreKeys).Text())

	out.ReportSummary.TotalAccounts = models.ParseCount(xmltree.TryKeys(doc, totalAccountsKeys).Text())
	out.ReportSummary.ActiveAccounts = models.ParseCount(xmltree.TryKeys(doc, activeAccountsKeys).Text())
	out.ReportSummary.ClosedAccounts = models.ParseCount(xmltree.TryKeys(doc, closedAccountsKeys).Text())
	out.ReportSummary.CurrentBalanceAmount = models.ParseAmount(xmltree.TryKeys(doc, currentBalanceKeys).Text())
	out.ReportSummary.SecuredAmount = models.ParseAmount(xmltree.TryKeys(doc, securedKeys).Text())
	out.ReportSummary.UnsecuredAmount = models.ParseAmount(xmltree.TryKeys(doc, unsecuredKeys).Text())
	out.ReportSummary.Last7DaysEnquiries = models.ParseCount(xmltree.TryKeys(doc, enquiriesKeys).Text())

	for _, account := range findAccounts(doc).AsList() {
		out.CreditAccounts = append(out.CreditAccounts, extractAccount(account))
	}

	log.WithFields(logrus.Fields{
		logging.FieldParser:   "generic",
		logging.FieldAccounts: len(out.CreditAccounts),
	}).Debug("Extracted report heuristically")

	return out
}

// extractName prefers composing first+last name halves over any single
// full-name candidate: a schema carrying both is assumed to keep the
// authoritative value in the split fields.
func extractName(doc *xmltree.Node, out *models.NormalizedReport) {
	first := xmltree.TryKeys(doc, firstNameKeys).Text()
	last := xmltree.TryKeys(doc, lastNameKeys).Text()
	if first != "" || last != "" {
		out.Name = strings.TrimSpace(first + " " + last)
		return
	}
	out.Name = xmltree.TryKeys(doc, fullNameKeys).Text()
}

// findAccounts locates the account list node: the first list-like
// candidate key that yields any non-empty node wins.
func findAccounts(doc *xmltree.Node) *xmltree.Node {
	for _, key := range accountListKeys {
		if node := xmltree.DeepSearch(doc, key, accountSearchDepth); node != nil && !node.IsEmptyScalar() {
			return node
		}
	}
	return nil
}

func extractAccount(account *xmltree.Node) models.CreditAccount {
	out := models.NewCreditAccount()

	typeNode := xmltree.TryKeys(account, accountTypeKeys)
	out.Type = resolveLabel(typeNode, "Unknown", codes.AccountType)
	out.AccountTypeCode = typeNode.Text()

	statusNode := xmltree.TryKeys(account, accountStatusKeys)
	out.AccountStatus = resolveLabel(statusNode, "", codes.AccountStatus)
	out.AccountStatusCode = statusNode.Text()

	out.Bank = strings.TrimSpace(xmltree.TryKeys(account, bankKeys).Text())
	out.AccountNumber = xmltree.TryKeys(account, accountNumberKeys).Text()
	out.CurrentBalance = models.ParseAmount(xmltree.TryKeys(account, balanceKeys).Text())
	out.AmountOverdue = models.ParseAmount(xmltree.TryKeys(account, overdueKeys).Text())
	out.CreditLimit = models.ParseAmount(xmltree.TryKeys(account, creditLimitKeys).Text())
	out.Address = resolveAddress(xmltree.TryKeys(account, addressKeys))
	out.Raw = account
	return out
}

// resolveLabel turns a found type/status node into a display label. A
// string value is treated as already human-readable and passed through
// unchanged; the code lookup only runs for structured values. A bureau
// that encodes its codes as plain strings therefore bypasses the lookup —
// long-standing behavior that downstream consumers rely on.
func resolveLabel(node *xmltree.Node, missing string, lookup func(string) string) string {
	if node == nil {
		return missing
	}
	if node.Kind() == xmltree.Scalar {
		return node.Text()
	}
	return lookup(node.Text())
}

// resolveAddress flattens an address value: strings pass through, a map
// is joined from its string-valued entries in document order.
func resolveAddress(node *xmltree.Node) string {
	if node == nil {
		return ""
	}
	switch node.Kind() {
	case xmltree.Scalar:
		return node.Text()
	case xmltree.Map:
		var parts []string
		for _, key := range node.Keys() {
			if v := node.Get(key).Text(); v != "" {
				parts = append(parts, v)
			}
		}
		return strings.Join(parts, ", ")
	default:
		var parts []string
		for _, item := range node.Items() {
			if v := item.Text(); v != "" {
				parts = append(parts, v)
			}
		}
		return strings.Join(parts, ", ")
	}
}
