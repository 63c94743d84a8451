package parser

import (
	"regexp"
	"strings"

	"github.com/ukaji3/rollbook-go/pkg/rollbook/models"
	"golang.org/x/text/unicode/norm"
)

var (
	lineSplitPattern     = regexp.MustCompile(`[\r\n]+`)
	trailingTokenPattern = regexp.MustCompile(`^(.*?)(\d+[.,]?\d*|[a-zA-ZĐđC]+)$`)
	ordinalPrefixPattern = regexp.MustCompile(`^\d+[.)\s]+`)
)

// ParseText extracts student records from pasted lines, one student per
// line. The last tab-separated field (or a trailing score/rating token) is
// read as the role's value.
func ParseText(text string, role models.Role, ids IDGenerator) []models.Record {
	if ids == nil {
		ids = NewCounterIDs("txt")
	}
	records := []models.Record{}
	for _, line := range lineSplitPattern.Split(text, -1) {
		rec, ok := parseLine(line, role)
		if !ok {
			continue
		}
		rec.ID = ids.Next()
		records = append(records, rec)
	}
	return records
}

func parseLine(line string, role models.Role) (models.Record, bool) {
	trimmed := strings.TrimSpace(norm.NFC.String(line))
	if trimmed == "" || isHeaderLine(trimmed) {
		return models.Record{}, false
	}

	parts := splitLine(trimmed)
	name := strings.TrimSpace(parts[0])
	if name == "" || integerPattern.MatchString(name) {
		return models.Record{}, false
	}
	name = strings.TrimSpace(ordinalPrefixPattern.ReplaceAllString(name, ""))
	if !AcceptName(name) {
		return models.Record{}, false
	}

	rec := models.Record{Name: name}
	if len(parts) < 2 {
		return rec, true
	}
	last := strings.Replace(strings.TrimSpace(parts[len(parts)-1]), ",", ".", 1)
	if last == "" {
		return rec, true
	}

	if role == models.RoleHomeroom {
		if shortRatingPattern.MatchString(last) {
			rec.AcademicResult = strings.ToUpper(last)
		}
		return rec, true
	}
	if v, ok := parseDecimal(last); ok {
		if v >= 0 && v <= maxScore {
			rec.Score = &v
		}
		return rec, true
	}
	if upper := strings.ToUpper(last); SubjectRatings.Has(upper) {
		rec.Rating = upper
	}
	return rec, true
}

func isHeaderLine(line string) bool {
	lower := strings.ToLower(line)
	if strings.HasPrefix(lower, "stt") || containsAny(lower, textLineMarkers) {
		return true
	}
	upper := strings.ToUpper(line)
	return containsAny(upper, InstitutionalMarkers) || containsAny(upper, FooterMarkers)
}

// splitLine splits on tabs, dropping leading index fields copied from a
// sequence-number column. Without tabs, a trailing score or rating token
// separated by whitespace is peeled off the end.
func splitLine(line string) []string {
	parts := strings.Split(line, "\t")
	if len(parts) >= 2 {
		for len(parts) > 2 && integerPattern.MatchString(strings.TrimSpace(parts[0])) {
			parts = parts[1:]
		}
		return parts
	}

	m := trailingTokenPattern.FindStringSubmatch(line)
	if m == nil {
		return []string{line}
	}
	head, token := m[1], m[2]
	if !strings.HasSuffix(head, " ") || strings.TrimSpace(head) == "" || !isValueToken(token) {
		return []string{line}
	}
	return []string{head, token}
}

func isValueToken(token string) bool {
	if _, ok := parseDecimal(token); ok {
		return true
	}
	return ExtendedRatings.Has(strings.ToUpper(token))
}
