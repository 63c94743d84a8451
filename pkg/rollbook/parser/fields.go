package parser

import (
	"strconv"
	"strings"

	"github.com/ukaji3/rollbook-go/pkg/rollbook/models"
)

const (
	maxScore    = 10
	maxAbsences = 60
)

// Fields are the optional values read from the cells after a name.
type Fields struct {
	Score          *float64
	Rating         string
	AcademicResult string
	ConductRating  string
	Absences       *int
}

// HasData reports whether any field is populated.
func (f Fields) HasData() bool {
	return f.Score != nil || f.Rating != "" || f.AcademicResult != "" ||
		f.ConductRating != "" || f.Absences != nil
}

// ExtractFields reads the role-dependent fields from the cells after the name span.
func ExtractFields(p PartitionedRow, role models.Role) Fields {
	if role == models.RoleHomeroom {
		return extractHomeroom(p.Rest)
	}
	return extractSubject(p.Rest)
}

// extractSubject scans right to left for the first score in [0,10] or
// subject rating. Anything else is skipped.
func extractSubject(cells models.Row) Fields {
	var f Fields
	for j := len(cells) - 1; j >= 0; j-- {
		cell := cells[j]
		if cell.IsEmpty() {
			continue
		}
		if v, ok := cellNumber(cell); ok {
			if v >= 0 && v <= maxScore {
				f.Score = &v
				return f
			}
			continue
		}
		upper := strings.ToUpper(cellText(cell))
		if SubjectRatings.Has(upper) {
			f.Rating = upper
			return f
		}
	}
	return f
}

// extractHomeroom scans left to right collecting ratings in column order.
// The last small integer wins as the absence count since that column
// usually trails the rating columns.
func extractHomeroom(cells models.Row) Fields {
	var (
		f       Fields
		ratings []string
	)
	for _, cell := range cells {
		if cell.IsEmpty() {
			continue
		}
		s := cellText(cell)
		upper := strings.ToUpper(s)
		if ExtendedRatings.Has(upper) {
			ratings = append(ratings, upper)
			continue
		}
		if !integerPattern.MatchString(s) {
			continue
		}
		if n, err := strconv.Atoi(s); err == nil && n >= 0 && n < maxAbsences {
			f.Absences = &n
		}
	}

	switch {
	case len(ratings) >= 2:
		f.AcademicResult = ratings[0]
		f.ConductRating = ratings[1]
	case len(ratings) == 1:
		f.AcademicResult = ratings[0]
	}
	return f
}

// cellNumber returns the numeric value of a cell. Text cells are parsed
// strictly, accepting a decimal comma.
func cellNumber(cell models.Cell) (float64, bool) {
	if cell.Kind == models.CellNumber {
		return cell.Number, true
	}
	return parseDecimal(cellText(cell))
}

// parseDecimal parses "8.5", "8,5" or "7". NaN, Inf and exponents are rejected.
func parseDecimal(s string) (float64, bool) {
	s = strings.Replace(strings.TrimSpace(s), ",", ".", 1)
	if !decimalPattern.MatchString(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
