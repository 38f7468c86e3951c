// Package dateutils provides the date normalization used throughout the
// application. Bureau schemas disagree on date encoding (compact CIBIL
// dates, ISO timestamps, day-first strings), so everything is reformatted
// to DD/MM/YYYY where the source form is recognized.
package dateutils

import (
	"regexp"
	"strings"
)

// Recognized source date shapes, probed in order.
var (
	compactPattern  = regexp.MustCompile(`^\d{8}$`)
	isoPattern      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	dayFirstPattern = regexp.MustCompile(`^\d{2}[/-]\d{2}[/-]\d{4}`)
)

// FormatReportDate reformats a bureau date string to DD/MM/YYYY.
// It recognizes, in order: the 8-digit compact form YYYYMMDD, an ISO-like
// YYYY-MM-DD prefix (trailing time-of-day ignored), and an already
// day-first DD/MM/YYYY or DD-MM-YYYY form (dashes normalized to slashes).
// Anything else, including empty input, passes through unchanged. This
// function never fails.
func FormatReportDate(dateStr string) string {
	switch {
	case compactPattern.MatchString(dateStr):
		return dateStr[6:8] + "/" + dateStr[4:6] + "/" + dateStr[0:4]
	case isoPattern.MatchString(dateStr):
		return dateStr[8:10] + "/" + dateStr[5:7] + "/" + dateStr[0:4]
	case dayFirstPattern.MatchString(dateStr):
		return strings.ReplaceAll(dateStr, "-", "/")
	default:
		return dateStr
	}
}
