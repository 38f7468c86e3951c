// Package parser is the entry point of the normalization engine: it
// decodes a bureau XML document, detects its format, dispatches to the
// matching extractor and returns the normalized report. The only failure
// mode is syntactically malformed XML; every unknown schema, missing field
// or unrecognized code degrades to documented defaults instead.
package parser

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"fjacquet/bureau-json/internal/cibilparser"
	"fjacquet/bureau-json/internal/format"
	"fjacquet/bureau-json/internal/genericparser"
	"fjacquet/bureau-json/internal/logging"
	"fjacquet/bureau-json/internal/models"
	"fjacquet/bureau-json/internal/parsererror"
	"fjacquet/bureau-json/internal/xmltree"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
		cibilparser.SetLogger(logger)
		genericparser.SetLogger(logger)
	}
}

// Parse reads an XML report document and returns its normalized form.
// It fails only with *parsererror.SyntaxError, when the input is not
// well-formed XML.
func Parse(r io.Reader) (*models.NormalizedReport, error) {
	root, err := xmltree.Decode(r)
	if err != nil {
		log.WithError(err).Error("Failed to decode XML document")
		return nil, &parsererror.SyntaxError{Err: err}
	}
	return ExtractTree(root), nil
}

// ParseString parses a report document held in a string.
func ParseString(xmlStr string) (*models.NormalizedReport, error) {
	return Parse(strings.NewReader(xmlStr))
}

// ExtractTree normalizes an already-decoded document tree. It never
// fails: unknown formats route through the heuristic extractor.
func ExtractTree(root *xmltree.Node) *models.NormalizedReport {
	detected := format.Detect(root)

	report := GetParser(detected).Extract(root)
	report.DetectedFormat = detected
	report.RawParsed = root

	log.WithFields(logrus.Fields{
		logging.FieldFormat:   string(detected),
		logging.FieldAccounts: len(report.CreditAccounts),
	}).Info("Normalized report document")

	return report
}

// DetectFormat decodes just enough of a document to classify its bureau
// format, without running extraction.
func DetectFormat(r io.Reader) (models.Format, error) {
	root, err := xmltree.Decode(r)
	if err != nil {
		return "", &parsererror.SyntaxError{Err: err}
	}
	return format.Detect(root), nil
}

// DetectFormatString classifies a document held in a string.
func DetectFormatString(xmlStr string) (models.Format, error) {
	return DetectFormat(strings.NewReader(xmlStr))
}
