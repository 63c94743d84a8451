package parser

import (
	"strings"

	"github.com/ukaji3/rollbook-go/pkg/rollbook/models"
)

// HeaderRowCount is the number of leading rows searched for the subject.
const HeaderRowCount = 5

// DetectSubject infers the canonical subject label from the header rows of
// a grid. It returns "" when no keyword group matches.
func DetectSubject(rows []models.Row) string {
	if len(rows) > HeaderRowCount {
		rows = rows[:HeaderRowCount]
	}
	var parts []string
	for _, row := range rows {
		for _, cell := range row {
			if s := cellText(cell); s != "" {
				parts = append(parts, s)
			}
		}
	}
	return HeaderSubjectRules.Match(strings.Join(parts, " "))
}

// NormalizeSubject maps a free-form subject name onto a canonical label.
func NormalizeSubject(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	return NameSubjectRules.Match(raw)
}
