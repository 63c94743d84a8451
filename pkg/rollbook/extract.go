package rollbook

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/rollbook-go/pkg/rollbook/models"
	"github.com/ukaji3/rollbook-go/pkg/rollbook/parser"
	"github.com/xuri/excelize/v2"
)

// Format is the kind of input container.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
	FormatText Format = "text"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return FormatXLSX, nil
	case ".csv":
		return FormatCSV, nil
	case ".txt", ".tsv":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Extract reads student records from a workbook, CSV or text file.
// A corrupt or empty file yields an empty result, not an error.
func Extract(path string, opts Options) (*models.ParseResult, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	result, err := ExtractReader(f, format, opts)
	if err != nil {
		return nil, err
	}
	if result.Source != nil {
		result.Source.Book = filepath.Base(path)
	}
	return result, nil
}

// ExtractReader reads student records from r in the given format.
func ExtractReader(r io.Reader, format Format, opts Options) (*models.ParseResult, error) {
	log := opts.logger()

	switch format {
	case FormatXLSX:
		return extractWorkbook(r, opts), nil
	case FormatCSV:
		rows, err := parser.ReadCSV(r)
		if err != nil {
			log.Debug().Err(NewExtractionError("", "csv", err)).Msg("unreadable csv, returning empty result")
			return emptyResult(), nil
		}
		result := ParseGrid(rows, opts)
		result.Source = &models.Source{Range: parser.DetectTable(rows, parser.DefaultTableParams())}
		return result, nil
	case FormatText:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, NewExtractionError("", "text", err)
		}
		return ParseText(string(data), opts), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

func extractWorkbook(r io.Reader, opts Options) *models.ParseResult {
	log := opts.logger()

	f, err := excelize.OpenReader(r)
	if err != nil {
		log.Debug().Err(NewExtractionError("", "workbook", fmt.Errorf("%w: %v", ErrInvalidFormat, err))).
			Msg("unreadable workbook, returning empty result")
		return emptyResult()
	}
	defer f.Close()

	sheetName := opts.Sheet
	if sheetName == "" {
		sheetName, err = parser.FirstSheet(f)
		if err != nil {
			log.Debug().Err(err).Msg("workbook has no sheets")
			return emptyResult()
		}
	}

	rows, err := parser.ReadRows(f, sheetName)
	if err != nil {
		log.Debug().Err(NewExtractionError(sheetName, "sheet", err)).Msg("unreadable sheet, returning empty result")
		return emptyResult()
	}

	result := ParseGrid(rows, opts)
	area := parser.PrintArea(f, sheetName)
	if area == "" {
		area = parser.DetectTable(rows, parser.DefaultTableParams())
	}
	result.Source = &models.Source{Sheet: sheetName, Range: area}
	log.Debug().
		Str("sheet", sheetName).
		Int("rows", len(rows)).
		Int("records", len(result.Records)).
		Str("subject", result.Subject).
		Msg("parsed workbook")
	return result
}

// ParseGrid extracts student records from an in-memory grid.
func ParseGrid(rows []models.Row, opts Options) *models.ParseResult {
	result := parser.ParseGrid(rows, opts.role(), opts.ids("row"))
	return &result
}

// ParseText extracts student records from pasted text.
func ParseText(text string, opts Options) *models.ParseResult {
	return &models.ParseResult{
		Records: parser.ParseText(text, opts.role(), opts.ids("txt")),
	}
}

func emptyResult() *models.ParseResult {
	return &models.ParseResult{Records: []models.Record{}}
}
