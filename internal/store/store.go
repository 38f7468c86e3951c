// Package store loads optional code-label override files. Bureaus add
// account type and status codes faster than releases ship, so deployments
// can drop YAML files next to the binary to extend or correct the built-in
// lookup tables without a rebuild.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"fjacquet/bureau-json/internal/codes"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Default override file names, looked up via FindConfigFile.
const (
	DefaultTypesFile    = "account_types.yaml"
	DefaultStatusesFile = "account_statuses.yaml"
)

// CodeStore manages loading of code-label override files.
type CodeStore struct {
	TypesFile    string
	StatusesFile string
}

// NewCodeStore creates a store over the given override file names. Empty
// names fall back to the defaults.
func NewCodeStore(typesFile, statusesFile string) *CodeStore {
	if typesFile == "" {
		typesFile = DefaultTypesFile
	}
	if statusesFile == "" {
		statusesFile = DefaultStatusesFile
	}
	return &CodeStore{
		TypesFile:    typesFile,
		StatusesFile: statusesFile,
	}
}

// FindConfigFile looks for a configuration file in standard locations.
func (s *CodeStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	// Common locations to check for config files
	locations := []string{
		filename,                          // Current directory
		filepath.Join("config", filename), // ./config/ directory
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}

// LoadOverrides merges any override files it can find into the lookup
// tables. Missing files are not an error; deployments without overrides
// are the common case.
func (s *CodeStore) LoadOverrides() error {
	if overrides, err := s.loadFile(s.TypesFile); err != nil {
		return err
	} else if overrides != nil {
		codes.MergeTypeOverrides(overrides)
		log.WithField("count", len(overrides)).Debug("Merged account type overrides")
	}

	if overrides, err := s.loadFile(s.StatusesFile); err != nil {
		return err
	} else if overrides != nil {
		codes.MergeStatusOverrides(overrides)
		log.WithField("count", len(overrides)).Debug("Merged account status overrides")
	}

	return nil
}

// loadFile reads one override file into a code→label map. A file that
// cannot be found yields (nil, nil).
func (s *CodeStore) loadFile(filename string) (map[string]string, error) {
	path, err := s.FindConfigFile(filename)
	if err != nil {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading override file %s: %w", path, err)
	}

	var overrides map[string]string
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("error parsing override file %s: %w", path, err)
	}

	log.WithField("file", path).Info("Loaded code label overrides")
	return overrides, nil
}
