package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/bureau-json/internal/codes"
)

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()

	typesFile := filepath.Join(dir, "types.yaml")
	require.NoError(t, os.WriteFile(typesFile, []byte("\"91\": Crop Loan\n"), 0o600))
	statusesFile := filepath.Join(dir, "statuses.yaml")
	require.NoError(t, os.WriteFile(statusesFile, []byte("\"22\": Restructured\n"), 0o600))

	s := NewCodeStore(typesFile, statusesFile)
	require.NoError(t, s.LoadOverrides())

	assert.Equal(t, "Crop Loan", codes.AccountType("91"))
	assert.Equal(t, "Restructured", codes.AccountStatus("22"))
}

func TestLoadOverridesMissingFilesAreFine(t *testing.T) {
	s := NewCodeStore(filepath.Join(t.TempDir(), "nope.yaml"), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.NoError(t, s.LoadOverrides())
}

func TestLoadOverridesRejectsBadYAML(t *testing.T) {
	dir := t.TempDir()
	typesFile := filepath.Join(dir, "types.yaml")
	require.NoError(t, os.WriteFile(typesFile, []byte("{not yaml"), 0o600))

	s := NewCodeStore(typesFile, filepath.Join(dir, "absent.yaml"))
	assert.Error(t, s.LoadOverrides())
}

func TestNewCodeStoreDefaults(t *testing.T) {
	s := NewCodeStore("", "")
	assert.Equal(t, DefaultTypesFile, s.TypesFile)
	assert.Equal(t, DefaultStatusesFile, s.StatusesFile)
}
