// Package output serializes grading results.
package output

import (
	"encoding/json"

	"github.com/ChandlerFarnsworth/xlsx-autograder/pkg/autograde/models"
)

// ResultToJSON renders the rich grading result for local diagnostics.
func ResultToJSON(r models.Result, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(r, "", "  ")
	}
	return json.Marshal(r)
}

// FeedbackToJSON renders the redacted platform payload.
func FeedbackToJSON(f models.Feedback) ([]byte, error) {
	return json.Marshal(f)
}
