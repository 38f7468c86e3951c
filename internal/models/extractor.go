package models

import (
	"fjacquet/bureau-json/internal/xmltree"
)

// Extractor turns a decoded document tree into a normalized report. It is
// responsible for understanding one schema family (fixed-path for a known
// bureau, heuristic for everything else) and must degrade gracefully:
// missing domain data yields defaults, never an error.
type Extractor interface {
	Extract(root *xmltree.Node) *NormalizedReport
}
