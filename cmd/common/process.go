// Package common contains shared functionality for command handlers
package common

import (
	"github.com/sirupsen/logrus"

	"fjacquet/bureau-json/internal/common"
	"fjacquet/bureau-json/internal/fileutils"
	"fjacquet/bureau-json/internal/logging"
	"fjacquet/bureau-json/internal/models"
	"fjacquet/bureau-json/internal/parser"
	"fjacquet/bureau-json/internal/parsererror"
	"fjacquet/bureau-json/internal/xmlutils"
)

// Options controls how a report file is processed.
type Options struct {
	Validate   bool
	Indent     bool
	IncludeRaw bool
}

// ParseReportFile reads and normalizes a single report file, optionally
// running the cheap well-formedness probe first.
func ParseReportFile(inputFile string, validate bool, log *logrus.Logger) (*models.NormalizedReport, error) {
	if validate {
		log.WithField(logging.FieldInputFile, inputFile).Info("Validating XML format")
		valid, err := xmlutils.ValidateReportFile(inputFile)
		if err != nil {
			return nil, err
		}
		if !valid {
			return nil, &parsererror.ValidationError{FilePath: inputFile, Reason: "not well-formed XML"}
		}
		if known, _ := xmlutils.HasKnownMarker(inputFile); !known {
			log.WithField(logging.FieldInputFile, inputFile).
				Warn("No known bureau marker found, extraction will be heuristic")
		}
	}

	content, err := fileutils.ReadTextFile(inputFile)
	if err != nil {
		return nil, err
	}
	return parser.ParseString(content)
}

// ProcessReportFile converts one XML report file to normalized JSON.
func ProcessReportFile(inputFile, outputFile string, opts Options, log *logrus.Logger) error {
	report, err := ParseReportFile(inputFile, opts.Validate, log)
	if err != nil {
		return err
	}

	if err := common.WriteReportToJSON(report, outputFile, opts.Indent, opts.IncludeRaw); err != nil {
		return &parsererror.ExportError{FilePath: outputFile, Err: err}
	}

	log.WithFields(logrus.Fields{
		logging.FieldInputFile:  inputFile,
		logging.FieldOutputFile: outputFile,
		logging.FieldFormat:     string(report.DetectedFormat),
		logging.FieldAccounts:   len(report.CreditAccounts),
	}).Info("Report converted successfully")
	return nil
}
