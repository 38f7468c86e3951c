// Package fileutils provides small file helpers for the command layer.
package fileutils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/bureau-json/internal/parsererror"
)

// ReadTextFile reads a whole input file, returning the typed not-found
// error when the path does not exist.
func ReadTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", parsererror.FileNotFoundError(path)
		}
		return "", fmt.Errorf("error reading file %s: %w", path, err)
	}
	return string(data), nil
}

// ListXMLFiles returns the *.xml files in a directory.
func ListXMLFiles(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.xml"))
	if err != nil {
		return nil, fmt.Errorf("error reading input directory: %w", err)
	}
	return files, nil
}

// ReplaceExtension swaps a file name's extension, e.g. report.xml →
// report.json.
func ReplaceExtension(path, newExt string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return base + newExt
}

// EnsureDir creates a directory (and parents) if it does not exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("error creating directory %s: %w", dir, err)
	}
	return nil
}
