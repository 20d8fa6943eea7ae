package models

// ErrorKind classifies why a grading call produced a zero score.
type ErrorKind string

const (
	// ErrorNone means grading completed normally.
	ErrorNone ErrorKind = ""
	// ErrorConfig means the submission targeted the wrong assignment
	// part.
	ErrorConfig ErrorKind = "config"
	// ErrorMissingInput means no gradable submission file was found.
	ErrorMissingInput ErrorKind = "missing_input"
	// ErrorStructural means a required sheet is absent from a workbook.
	ErrorStructural ErrorKind = "structural"
	// ErrorLoad means a workbook could not be opened or parsed.
	ErrorLoad ErrorKind = "load"
)

// Result is the outcome of grading one submission. The counter fields
// are diagnostic detail for local tooling; learner-facing output is
// limited to the Feedback payload.
type Result struct {
	// Score is the fractional score in [0.0, 1.0].
	Score float64 `json:"score"`
	// Feedback is the learner-facing message. It reports only the
	// indicator-row counts, never hidden-test detail.
	Feedback string `json:"feedback"`
	// Matches is the number of indicator cells matched exactly.
	Matches int `json:"matches"`
	// TotalCells is the number of indicator cells scored.
	TotalCells int `json:"total_cells"`
	// HiddenPassed is the number of hidden test cells that matched.
	HiddenPassed int `json:"hidden_passed"`
	// HiddenTotal is the number of hidden test cells checked.
	HiddenTotal int `json:"hidden_total"`
	// ErrorKind is set when grading failed; the score is then 0.0.
	ErrorKind ErrorKind `json:"error_kind,omitempty"`
}

// Feedback is the payload the coursework platform consumes. Hidden
// test counts are deliberately absent from this shape.
type Feedback struct {
	FractionalScore float64 `json:"fractionalScore"`
	Feedback        string  `json:"feedback"`
}

// Platform reduces the result to the redacted platform payload.
func (r Result) Platform() Feedback {
	return Feedback{FractionalScore: r.Score, Feedback: r.Feedback}
}

// ZeroResult builds the zero-score result for a failed grading call.
func ZeroResult(kind ErrorKind, feedback string) Result {
	return Result{Feedback: feedback, ErrorKind: kind}
}
