// Package parsererror defines the typed errors surfaced by the parsing
// core and the CLI layer around it. The core itself fails only on
// syntactically malformed XML; missing or unrecognized domain data always
// degrades to defaults instead of erroring.
package parsererror

import (
	"fmt"
	"os"
)

// SyntaxError reports that the input could not be parsed as well-formed
// XML at all. It is the only error kind the extraction core produces.
type SyntaxError struct {
	Err error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("XML parsing error: %v", e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// ValidationError reports that a file failed the pre-parse format probe.
type ValidationError struct {
	FilePath string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}

// ExportError reports a failure while writing converted output.
type ExportError struct {
	FilePath string
	Err      error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("failed to write output file '%s': %v", e.FilePath, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// FileNotFoundError builds the error returned when an input file does not
// exist.
func FileNotFoundError(filePath string) error {
	return fmt.Errorf("input file '%s' not found: %w", filePath, os.ErrNotExist)
}
