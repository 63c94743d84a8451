package parser

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ukaji3/rollbook-go/pkg/rollbook/models"
	"golang.org/x/text/unicode/norm"
)

// maxSequenceNumber bounds the leading number accepted as a row index.
const maxSequenceNumber = 1000

// PartitionedRow is a row split around its name span.
type PartitionedRow struct {
	// HasIndex is set when a sequence number preceded the name.
	HasIndex bool
	// NameTokens are the cells forming the name, trimmed.
	NameTokens []string
	// Rest holds the cells after the last name cell.
	Rest models.Row
}

// Name joins the name tokens with single spaces.
func (p PartitionedRow) Name() string {
	return strings.TrimSpace(strings.Join(p.NameTokens, " "))
}

// PartitionRow locates the name span of a row. It returns false when the row
// contains no name-part cell.
func PartitionRow(row models.Row) (PartitionedRow, bool) {
	var p PartitionedRow
	end := -1

	for i := 0; i < len(row); i++ {
		cell := row[i]

		if len(p.NameTokens) == 0 {
			if n, ok := sequenceNumber(cell); ok {
				if n > 0 && n < maxSequenceNumber {
					p.HasIndex = true
				}
				continue
			}
			if IsNamePart(cell) {
				p.NameTokens = append(p.NameTokens, cellText(cell))
				end = i
			}
			continue
		}

		if IsNamePart(cell) {
			p.NameTokens = append(p.NameTokens, cellText(cell))
			end = i
			continue
		}
		// An empty cell may only bridge two name parts.
		if cell.IsEmpty() && i+1 < len(row) && IsNamePart(row[i+1]) {
			continue
		}
		break
	}

	if end < 0 {
		return PartitionedRow{}, false
	}
	p.Rest = row[end+1:]
	return p, true
}

// IsNamePart reports whether a cell can be part of a person's name.
func IsNamePart(cell models.Cell) bool {
	if cell.Kind != models.CellText {
		return false
	}
	s := cellText(cell)
	if utf8.RuneCountInString(s) < 2 {
		return false
	}
	if digitPattern.MatchString(s) {
		return false
	}
	lower := strings.ToLower(s)
	if excludedKeywords.Has(lower) {
		return false
	}
	if containsAny(lower, substringExclusions) {
		return false
	}
	return !abbreviationPattern.MatchString(strings.ToUpper(s))
}

// sequenceNumber returns the value of a bare non-negative integer cell.
func sequenceNumber(cell models.Cell) (int, bool) {
	switch cell.Kind {
	case models.CellNumber:
		if cell.Number < 0 || cell.Number != float64(int64(cell.Number)) {
			return 0, false
		}
		return int(cell.Number), true
	case models.CellText:
		s := cellText(cell)
		if !integerPattern.MatchString(s) {
			return 0, false
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			// Too long to be an index, still a number.
			return maxSequenceNumber, true
		}
		return n, true
	}
	return 0, false
}

// cellText returns the trimmed, NFC-normalized text of a cell.
func cellText(cell models.Cell) string {
	return norm.NFC.String(cell.String())
}
