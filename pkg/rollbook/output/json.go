// Package output serializes extraction results.
package output

import (
	"encoding/json"

	"github.com/ukaji3/rollbook-go/pkg/rollbook/models"
)

// ToJSON serializes a parse result. A nil result serializes as an empty one.
func ToJSON(result *models.ParseResult, pretty bool) ([]byte, error) {
	if result == nil {
		result = &models.ParseResult{}
	}
	if result.Records == nil {
		r := *result
		r.Records = []models.Record{}
		result = &r
	}
	if pretty {
		return json.MarshalIndent(result, "", "  ")
	}
	return json.Marshal(result)
}
