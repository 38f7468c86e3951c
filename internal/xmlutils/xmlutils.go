// Package xmlutils provides cheap pre-parse checks over report files,
// used by the --validate flag before the full decoder runs.
package xmlutils

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/xmlpath.v2"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// markerPaths probe for the elements that identify a known bureau schema
// anywhere in the document.
var markerPaths = []*xmlpath.Path{
	xmlpath.MustCompile("//INProfileResponse"),
	xmlpath.MustCompile("//CreditReport"),
	xmlpath.MustCompile("//CREDITREPORT"),
	xmlpath.MustCompile("//CRIF"),
	xmlpath.MustCompile("//HighMark"),
	xmlpath.MustCompile("//Equifax"),
	xmlpath.MustCompile("//EQUIFAX"),
}

// ValidateReportFile checks that a file parses as XML at all. It returns
// (false, nil) for a well-readable file that is not valid XML; an error is
// reserved for I/O failures.
func ValidateReportFile(xmlFile string) (bool, error) {
	if _, err := os.Stat(xmlFile); err != nil {
		return false, fmt.Errorf("error checking XML file: %w", err)
	}

	f, err := os.Open(xmlFile)
	if err != nil {
		return false, fmt.Errorf("error opening XML file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	if _, err := xmlpath.Parse(f); err != nil {
		log.WithError(err).Debug("File is not valid XML")
		return false, nil
	}
	return true, nil
}

// HasKnownMarker reports whether the file carries one of the known bureau
// marker elements. Documents without a marker still normalize through the
// heuristic extractor, so this is advisory, not a gate.
func HasKnownMarker(xmlFile string) (bool, error) {
	f, err := os.Open(xmlFile)
	if err != nil {
		return false, fmt.Errorf("error opening XML file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	root, err := xmlpath.Parse(f)
	if err != nil {
		return false, nil
	}
	for _, path := range markerPaths {
		if path.Exists(root) {
			return true, nil
		}
	}
	return false, nil
}
