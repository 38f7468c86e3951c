package parser

import (
	"fjacquet/bureau-json/internal/cibilparser"
	"fjacquet/bureau-json/internal/genericparser"
	"fjacquet/bureau-json/internal/models"
)

// GetParser returns the extractor for the given format. It acts as a
// factory for models.Extractor implementations and is total: only CIBIL
// has a schema-aware extractor, every other format uses the heuristic one.
func GetParser(detected models.Format) models.Extractor {
	switch detected {
	case models.FormatCIBIL:
		return cibilparser.NewAdapter()
	default:
		return genericparser.NewAdapter()
	}
}
