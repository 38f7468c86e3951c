// Package format classifies decoded report documents into one of the
// supported bureau formats.
package format

import (
	"fjacquet/bureau-json/internal/models"
	"fjacquet/bureau-json/internal/xmltree"
)

// Detect probes the top-level keys of the decoded tree and returns the
// first matching bureau format. Every input maps to exactly one tag;
// documents with none of the marker keys fall back to GENERIC, which
// routes them to the heuristic extractor.
func Detect(root *xmltree.Node) models.Format {
	switch {
	case root.Has("INProfileResponse"):
		return models.FormatCIBIL
	case root.Has("CreditReport") || root.Has("CREDITREPORT"):
		return models.FormatExperian
	case root.Has("CRIF") || root.Has("HighMark"):
		return models.FormatCRIFHighMark
	case root.Has("Equifax") || root.Has("EQUIFAX"):
		return models.FormatEquifax
	default:
		return models.FormatGeneric
	}
}
