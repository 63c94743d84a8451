package parser

import (
	"strings"
	"unicode/utf8"
)

// AcceptName reports whether a candidate full name belongs to a data row.
// Institutional headers, statistical footers, percentages and hyphenated
// codes are rejected.
func AcceptName(name string) bool {
	if utf8.RuneCountInString(name) < 2 {
		return false
	}
	upper := strings.ToUpper(name)
	if containsAny(upper, InstitutionalMarkers) || containsAny(upper, FooterMarkers) {
		return false
	}
	if strings.Contains(name, "%") {
		return false
	}
	if strings.Contains(name, "-") && utf8.RuneCountInString(name) > 5 && !strings.Contains(name, " ") {
		return false
	}
	return true
}
