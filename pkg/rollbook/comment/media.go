package comment

import (
	"context"
	"encoding/base64"
	"fmt"
	"math"
	"strings"

	"github.com/ukaji3/rollbook-go/pkg/rollbook/models"
	"github.com/ukaji3/rollbook-go/pkg/rollbook/parser"
)

// ExtractMedia reads a grade table from an image or PDF with the vision
// model. The result has the same shape as the heuristic parser's output.
func (c *GeminiClient) ExtractMedia(ctx context.Context, data []byte, mimeType string, role models.Role, ids parser.IDGenerator) (*models.ParseResult, error) {
	if ids == nil {
		ids = parser.NewCounterIDs("img")
	}

	req := generateContentRequest{
		Contents: []content{{
			Role: "user",
			Parts: []part{
				{InlineData: &inlineData{MimeType: mimeType, Data: base64.StdEncoding.EncodeToString(data)}},
				{Text: MediaPrompt(role)},
			},
		}},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   mediaSchema,
		},
	}

	resp, err := c.generateContent(ctx, req)
	if err != nil {
		return nil, err
	}
	text := resp.text()
	if text == "" {
		return &models.ParseResult{Records: []models.Record{}}, nil
	}

	var parsed mediaResponse
	if err := decodeJSON(text, &parsed); err != nil {
		// Some models answer with a bare array of students.
		var students []mediaRecord
		if arrErr := decodeJSON(text, &students); arrErr != nil {
			return nil, fmt.Errorf("failed to decode extraction response: %w", err)
		}
		parsed.Students = students
	}

	return mediaResult(parsed, ids), nil
}

func mediaResult(parsed mediaResponse, ids parser.IDGenerator) *models.ParseResult {
	result := &models.ParseResult{
		Records: make([]models.Record, 0, len(parsed.Students)),
		Subject: parser.NormalizeSubject(parsed.SubjectName),
	}
	for i, s := range parsed.Students {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			name = fmt.Sprintf("Học sinh %d", i+1)
		}
		rec := models.Record{
			ID:             ids.Next(),
			Name:           name,
			Score:          s.Score,
			Rating:         deref(s.Rating),
			AcademicResult: deref(s.KQHT),
			ConductRating:  deref(s.KQRL),
		}
		if s.Absences != nil {
			n := int(math.Round(*s.Absences))
			rec.Absences = &n
		}
		result.Records = append(result.Records, rec)
	}
	return result
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
