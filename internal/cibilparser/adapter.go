// Package cibilparser provides the fixed-path extractor for CIBIL reports.
package cibilparser

import (
	"github.com/sirupsen/logrus"

	"fjacquet/bureau-json/internal/models"
	"fjacquet/bureau-json/internal/xmltree"
)

// Adapter implements the models.Extractor interface for CIBIL documents.
type Adapter struct{}

// NewAdapter creates a new adapter for the cibilparser.
func NewAdapter() models.Extractor {
	return &Adapter{}
}

// Extract implements models.Extractor.
func (a *Adapter) Extract(root *xmltree.Node) *models.NormalizedReport {
	return Extract(root)
}

// SetLogger sets the logger for the package-level extraction functions.
func (a *Adapter) SetLogger(logger *logrus.Logger) {
	SetLogger(logger)
}
