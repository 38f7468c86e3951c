package common

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"fjacquet/bureau-json/internal/logging"
	"fjacquet/bureau-json/internal/models"
)

func init() {
	// Monetary fields render as JSON numbers, matching the numeric fields
	// of the report contract.
	decimal.MarshalJSONWithoutQuotes = true
}

// MarshalReport renders a normalized report as JSON. When indent is true
// the output is pretty-printed; when includeRaw is false the retained
// source subtrees are stripped first to keep the output compact.
func MarshalReport(report *models.NormalizedReport, indent, includeRaw bool) ([]byte, error) {
	if !includeRaw {
		stripped := *report
		stripped.RawParsed = nil
		stripped.ReportSummary.Raw = nil
		stripped.CreditAccounts = make([]models.CreditAccount, len(report.CreditAccounts))
		for i, account := range report.CreditAccounts {
			account.Raw = nil
			stripped.CreditAccounts[i] = account
		}
		report = &stripped
	}

	if indent {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}

// WriteReportToJSON writes a normalized report to a JSON file.
func WriteReportToJSON(report *models.NormalizedReport, jsonFile string, indent, includeRaw bool) error {
	log.WithFields(map[string]interface{}{
		logging.FieldOutputFile: jsonFile,
		logging.FieldFormat:     string(report.DetectedFormat),
	}).Info("Writing normalized report to JSON")

	data, err := MarshalReport(report, indent, includeRaw)
	if err != nil {
		return fmt.Errorf("error marshalling report: %w", err)
	}
	if err := os.WriteFile(jsonFile, data, 0o644); err != nil {
		log.WithError(err).Error("Failed to write JSON file")
		return fmt.Errorf("error writing JSON file: %w", err)
	}
	return nil
}
