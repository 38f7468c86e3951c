package parsererror

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyntaxError(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := &SyntaxError{Err: cause}

	assert.Contains(t, err.Error(), "XML parsing error")
	assert.Contains(t, err.Error(), "unexpected EOF")
	assert.ErrorIs(t, err, cause)
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{FilePath: "report.xml", Reason: "not well-formed XML"}
	assert.Contains(t, err.Error(), "report.xml")
	assert.Contains(t, err.Error(), "not well-formed XML")
}

func TestExportError(t *testing.T) {
	cause := errors.New("disk full")
	err := &ExportError{FilePath: "out.json", Err: cause}
	assert.Contains(t, err.Error(), "out.json")
	assert.ErrorIs(t, err, cause)
}

func TestFileNotFoundError(t *testing.T) {
	err := FileNotFoundError("missing.xml")
	assert.Contains(t, err.Error(), "missing.xml")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
