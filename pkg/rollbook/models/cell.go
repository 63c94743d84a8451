// Package models defines data structures for grade sheet extraction.
package models

import (
	"strconv"
	"strings"
)

// CellKind is the semantic type of a grid cell.
type CellKind int

const (
	// CellEmpty is a blank or whitespace-only cell.
	CellEmpty CellKind = iota
	// CellNumber is a numeric cell.
	CellNumber
	// CellText is a text cell.
	CellText
)

// Cell is a single scalar value of a grid row.
type Cell struct {
	// Kind is the semantic type of the cell.
	Kind CellKind `json:"kind"`
	// Text is the raw text value (set for text cells).
	Text string `json:"text,omitempty"`
	// Number is the numeric value (set for number cells).
	Number float64 `json:"number,omitempty"`
}

// Row is an ordered sequence of cells.
type Row []Cell

// Empty returns an empty cell.
func Empty() Cell { return Cell{Kind: CellEmpty} }

// Text returns a text cell. Whitespace-only text becomes an empty cell.
func Text(s string) Cell {
	if strings.TrimSpace(s) == "" {
		return Empty()
	}
	return Cell{Kind: CellText, Text: s}
}

// Number returns a numeric cell.
func Number(v float64) Cell { return Cell{Kind: CellNumber, Number: v} }

// IsEmpty reports whether the cell carries no value.
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty || (c.Kind == CellText && strings.TrimSpace(c.Text) == "")
}

// String returns the trimmed textual form of the cell.
// Numbers are formatted without exponent and without trailing zeros.
func (c Cell) String() string {
	switch c.Kind {
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case CellText:
		return strings.TrimSpace(c.Text)
	default:
		return ""
	}
}

// TextRow builds a row from raw strings, treating "" as empty.
func TextRow(values ...string) Row {
	row := make(Row, len(values))
	for i, v := range values {
		row[i] = Text(v)
	}
	return row
}
