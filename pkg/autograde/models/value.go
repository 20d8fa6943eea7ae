// Package models defines data structures for worksheet grading.
package models

// Kind classifies an evaluated cell value.
type Kind int

const (
	// KindBlank means the cell is absent or holds an empty string.
	// Both forms count as the same blank category during comparison.
	KindBlank Kind = iota
	// KindNumber covers integer and floating-point cells; both share
	// one numeric domain.
	KindNumber
	// KindText is any non-empty string cell.
	KindText
	// KindBool is a boolean cell.
	KindBool
)

// Value is one evaluated cell value read from a worksheet. Formulas
// are already resolved upstream; a Value never carries formula text.
// The zero Value is blank.
type Value struct {
	Kind   Kind
	Number float64
	Text   string
	Bool   bool
}

// BlankValue returns the blank cell value.
func BlankValue() Value {
	return Value{Kind: KindBlank}
}

// NumberValue returns a numeric cell value.
func NumberValue(n float64) Value {
	return Value{Kind: KindNumber, Number: n}
}

// TextValue returns a text cell value.
func TextValue(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// BoolValue returns a boolean cell value.
func BoolValue(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

// IsBlank reports whether the value is blank.
func (v Value) IsBlank() bool {
	return v.Kind == KindBlank
}
