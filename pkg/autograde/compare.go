package autograde

import (
	"math"
	"strings"

	"github.com/ChandlerFarnsworth/xlsx-autograder/pkg/autograde/models"
)

// numericTolerance bounds the allowed difference between two numeric
// cell values in hidden-test comparisons.
const numericTolerance = 0.0001

// StrictEqual reports whether two cell values are identical in kind
// and value. The indicator row uses this: public flags must match
// exactly, with no tolerance.
func StrictEqual(a, b models.Value) bool {
	return a == b
}

// EqualValues applies the tolerant comparison used for hidden test
// cells: blank matches blank (absent and empty text are one
// category), numbers match within numericTolerance, text matches
// after trimming and case folding, and everything else must match in
// kind and value. Symmetric in its arguments.
func EqualValues(a, b models.Value) bool {
	if blank(a) && blank(b) {
		return true
	}
	if a.Kind == models.KindNumber && b.Kind == models.KindNumber {
		return math.Abs(a.Number-b.Number) < numericTolerance
	}
	if a.Kind == models.KindText && b.Kind == models.KindText {
		return strings.EqualFold(strings.TrimSpace(a.Text), strings.TrimSpace(b.Text))
	}
	return a == b
}

// blank treats an absent cell and an empty text cell as one category.
func blank(v models.Value) bool {
	return v.Kind == models.KindBlank || (v.Kind == models.KindText && v.Text == "")
}
