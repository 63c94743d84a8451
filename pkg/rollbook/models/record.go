package models

// Record is one student extracted from a grade sheet.
type Record struct {
	// ID is unique within one parse invocation, in order of creation.
	ID string `json:"id"`
	// Name is the student's full name.
	Name string `json:"name"`
	// Score is the subject average in [0,10] (subject role).
	Score *float64 `json:"score,omitempty"`
	// Rating is the subject rating token such as Đ or CĐ (subject role).
	Rating string `json:"rating,omitempty"`
	// AcademicResult is the KQHT rating (homeroom role).
	AcademicResult string `json:"kqht,omitempty"`
	// ConductRating is the KQRL rating (homeroom role).
	ConductRating string `json:"kqrl,omitempty"`
	// Absences is the number of absent sessions in [0,60) (homeroom role).
	Absences *int `json:"absences,omitempty"`
	// Comment is the generated report-card comment.
	Comment string `json:"comment"`
	// Processing is set while a comment is being generated.
	Processing bool `json:"processing"`
}

// HasData reports whether any optional data field is populated.
func (r Record) HasData() bool {
	return r.Score != nil || r.Rating != "" || r.AcademicResult != "" ||
		r.ConductRating != "" || r.Absences != nil
}

// ParseResult is the output of one parse call.
type ParseResult struct {
	// Records are in row order.
	Records []Record `json:"records"`
	// Subject is the canonical subject label detected from header rows, or "".
	Subject string `json:"subject,omitempty"`
	// Source describes where the records came from (nil for text input).
	Source *Source `json:"source,omitempty"`
}

// Source identifies the workbook region a result was read from.
type Source struct {
	// Book is the file name (no path).
	Book string `json:"book,omitempty"`
	// Sheet is the sheet name.
	Sheet string `json:"sheet,omitempty"`
	// Range is the populated cell range, e.g. "A1:F42".
	Range string `json:"range,omitempty"`
}

// Len returns the number of records.
func (p *ParseResult) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Records)
}
