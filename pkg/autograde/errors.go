package autograde

// Learner-facing failure messages. The wording is part of the platform
// contract and is kept stable across releases.
const (
	msgStudentSheetMissing  = "Error: Worksheet '%s' not found in your submission."
	msgSolutionSheetMissing = "Error: Internal error - Solution worksheet not found."
	msgLoadFailure          = "Error grading your submission: %v"
)
