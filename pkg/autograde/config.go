package autograde

// HiddenCell identifies one undisclosed cell checked with the tolerant
// comparison.
type HiddenCell struct {
	// Cell is the A1-style address, e.g. "AD21".
	Cell string `json:"cell" mapstructure:"cell"`
	// Description says what the cell verifies. Never shown to learners.
	Description string `json:"description" mapstructure:"description"`
}

// Config describes one assignment's grading scheme. Passing it
// explicitly (rather than reading package constants) lets one process
// grade several assignments and keeps the scorer testable.
type Config struct {
	// StudentSheet is the sheet name expected in the submission.
	StudentSheet string
	// SolutionSheet is the sheet name expected in the answer key.
	SolutionSheet string
	// HiddenCells lists the hidden test cells in check order.
	HiddenCells []HiddenCell
	// IndicatorRow is the row holding the public Y/N flags.
	IndicatorRow int
	// IndicatorStartColumn is the first scored column; earlier columns
	// are reserved for labels.
	IndicatorStartColumn int
	// IndicatorWeight scales the indicator-row score.
	IndicatorWeight float64
	// HiddenWeight scales the hidden-test score.
	HiddenWeight float64
}

// DefaultConfig returns the stock assignment scheme: sheets "blank"
// and "solution", three hidden cells, indicator row 1 starting at
// column E, weighted 80/20.
func DefaultConfig() Config {
	return Config{
		StudentSheet:  "blank",
		SolutionSheet: "solution",
		HiddenCells: []HiddenCell{
			{Cell: "AD21", Description: "Financial calculation test"},
			{Cell: "M62", Description: "Data processing test"},
			{Cell: "AE187", Description: "Formula application test"},
		},
		IndicatorRow:         1,
		IndicatorStartColumn: 5,
		IndicatorWeight:      0.8,
		HiddenWeight:         0.2,
	}
}

// normalized fills zero fields with defaults so a partially built
// Config still grades sensibly.
func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.StudentSheet == "" {
		c.StudentSheet = d.StudentSheet
	}
	if c.SolutionSheet == "" {
		c.SolutionSheet = d.SolutionSheet
	}
	if c.IndicatorRow == 0 {
		c.IndicatorRow = d.IndicatorRow
	}
	if c.IndicatorStartColumn == 0 {
		c.IndicatorStartColumn = d.IndicatorStartColumn
	}
	if c.IndicatorWeight == 0 && c.HiddenWeight == 0 {
		c.IndicatorWeight = d.IndicatorWeight
		c.HiddenWeight = d.HiddenWeight
	}
	return c
}
