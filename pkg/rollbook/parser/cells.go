package parser

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/ukaji3/rollbook-go/pkg/rollbook/models"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"
)

// ErrNoSheets indicates a workbook without worksheets.
var ErrNoSheets = errors.New("workbook has no sheets")

// FirstSheet returns the name of the first worksheet.
func FirstSheet(f *excelize.File) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", ErrNoSheets
	}
	return sheets[0], nil
}

// ReadRows reads a sheet into typed rows. Blank rows are kept so that row
// positions match the sheet.
func ReadRows(f *excelize.File, sheetName string) ([]models.Row, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	return toRows(rows), nil
}

// ReadCSV reads comma-separated rows into typed rows.
func ReadCSV(r io.Reader) ([]models.Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) > 0 && len(records[0]) > 0 {
		records[0][0] = strings.TrimPrefix(records[0][0], "\ufeff")
	}
	return toRows(records), nil
}

func toRows(raw [][]string) []models.Row {
	result := make([]models.Row, 0, len(raw))
	for _, values := range raw {
		row := make(models.Row, len(values))
		for i, v := range values {
			row[i] = ParseValue(v)
		}
		result = append(result, row)
	}
	return result
}

// ParseValue converts a raw cell string into a typed cell.
// Plain decimal strings (with a dot or a decimal comma) become numbers;
// everything else stays text.
func ParseValue(s string) models.Cell {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return models.Empty()
	}
	if v, ok := parseDecimal(trimmed); ok {
		return models.Number(v)
	}
	return models.Text(norm.NFC.String(s))
}
