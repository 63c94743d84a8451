package rollbook

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates an input type the extractor cannot read.
var ErrUnsupportedFormat = errors.New("unsupported input format")

// ErrInvalidFormat indicates a container that could not be decoded.
var ErrInvalidFormat = errors.New("invalid workbook format")

// ExtractionError represents an error during extraction.
type ExtractionError struct {
	SheetName string
	Component string // "workbook", "sheet", "csv", "text"
	Err       error
}

func (e *ExtractionError) Error() string {
	if e.SheetName == "" {
		return fmt.Sprintf("extraction error (%s): %v", e.Component, e.Err)
	}
	return fmt.Sprintf("extraction error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, component string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
