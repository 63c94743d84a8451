package parser

import (
	"github.com/ukaji3/rollbook-go/pkg/rollbook/models"
)

// ParseGrid extracts student records from a cell grid. It never fails:
// rows that do not look like student rows are dropped.
func ParseGrid(rows []models.Row, role models.Role, ids IDGenerator) models.ParseResult {
	result := models.ParseResult{Records: []models.Record{}}
	if len(rows) == 0 {
		return result
	}
	if ids == nil {
		ids = NewCounterIDs("row")
	}

	result.Subject = DetectSubject(rows)

	for _, row := range rows {
		rec, ok := parseRow(row, role)
		if !ok {
			continue
		}
		rec.ID = ids.Next()
		result.Records = append(result.Records, rec)
	}
	return result
}

// parseRow runs one row through name partitioning, name filtering and field
// extraction.
func parseRow(row models.Row, role models.Role) (models.Record, bool) {
	if len(row) == 0 {
		return models.Record{}, false
	}
	p, ok := PartitionRow(row)
	if !ok {
		return models.Record{}, false
	}
	name := p.Name()
	if !AcceptName(name) {
		return models.Record{}, false
	}
	f := ExtractFields(p, role)
	if !p.HasIndex && !f.HasData() {
		return models.Record{}, false
	}
	return models.Record{
		Name:           name,
		Score:          f.Score,
		Rating:         f.Rating,
		AcademicResult: f.AcademicResult,
		ConductRating:  f.ConductRating,
		Absences:       f.Absences,
	}, true
}
