// Package common provides the shared export functionality used by the
// command layer: CSV via gocsv and JSON for the full report.
package common

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"

	"fjacquet/bureau-json/internal/logging"
	"fjacquet/bureau-json/internal/models"
)

var log = logrus.New()

// Delimiter is the global CSV delimiter, configurable via env or config.
var Delimiter rune = ','

func init() {
	if val := os.Getenv("CSV_DELIMITER"); val != "" {
		// Use first rune only
		SetDelimiter([]rune(val)[0])
	}
}

// SetDelimiter allows setting the delimiter for CSV output
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger == nil {
		return // Don't change the logger if nil is passed
	}
	log = logger
}

// WriteAccountsToCSV writes the report's account list to a CSV file.
func WriteAccountsToCSV(accounts []models.CreditAccount, csvFile string) error {
	log.WithFields(logrus.Fields{
		logging.FieldOutputFile: csvFile,
		logging.FieldCount:      len(accounts),
	}).Info("Writing accounts to CSV")

	return writeCSV(csvFile, &accounts)
}

// WriteSummaryToCSV writes a one-row aggregate summary to a CSV file.
func WriteSummaryToCSV(summary models.AccountsSummary, csvFile string) error {
	rows := []models.AccountsSummary{summary}
	return writeCSV(csvFile, &rows)
}

func writeCSV(csvFile string, rows interface{}) error {
	file, err := os.Create(csvFile)
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		w := csv.NewWriter(out)
		w.Comma = Delimiter
		return gocsv.NewSafeCSVWriter(w)
	})

	if err := gocsv.Marshal(rows, file); err != nil {
		log.WithError(err).Error("Failed to write CSV data")
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}
