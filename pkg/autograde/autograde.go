// Package autograde scores spreadsheet submissions against a reference
// answer key.
//
// A grading call compares a public indicator row with strict equality
// and a fixed set of hidden cells with a tolerant comparison, then
// combines both passes into one weighted fractional score. Grading
// never returns an error: every failure folds into a zero-score
// result whose feedback describes what went wrong.
package autograde

import (
	"fmt"
	"io"

	"github.com/ChandlerFarnsworth/xlsx-autograder/pkg/autograde/models"
	"github.com/ChandlerFarnsworth/xlsx-autograder/pkg/autograde/workbook"
)

// Grade scores the student workbook at studentPath against the answer
// key at solutionPath.
func Grade(studentPath, solutionPath string, cfg Config) models.Result {
	student, err := workbook.Open(studentPath)
	if err != nil {
		return models.ZeroResult(models.ErrorLoad, fmt.Sprintf(msgLoadFailure, err))
	}
	defer student.Close()

	solution, err := workbook.Open(solutionPath)
	if err != nil {
		return models.ZeroResult(models.ErrorLoad, fmt.Sprintf(msgLoadFailure, err))
	}
	defer solution.Close()

	return GradeWorkbooks(student, solution, cfg)
}

// GradeReader scores a submission supplied as a byte stream against
// the answer key on disk. The HTTP service grades uploads this way.
func GradeReader(student io.Reader, solutionPath string, cfg Config) models.Result {
	sw, err := workbook.OpenReader(student)
	if err != nil {
		return models.ZeroResult(models.ErrorLoad, fmt.Sprintf(msgLoadFailure, err))
	}
	defer sw.Close()

	solution, err := workbook.Open(solutionPath)
	if err != nil {
		return models.ZeroResult(models.ErrorLoad, fmt.Sprintf(msgLoadFailure, err))
	}
	defer solution.Close()

	return GradeWorkbooks(sw, solution, cfg)
}

// GradeWorkbooks scores two already-open workbooks. Both are read-only
// for the duration of the call.
func GradeWorkbooks(student, solution *workbook.Workbook, cfg Config) models.Result {
	cfg = cfg.normalized()

	// No partial credit without both required sheets present.
	if !student.HasSheet(cfg.StudentSheet) {
		return models.ZeroResult(models.ErrorStructural,
			fmt.Sprintf(msgStudentSheetMissing, cfg.StudentSheet))
	}
	if !solution.HasSheet(cfg.SolutionSheet) {
		return models.ZeroResult(models.ErrorStructural, msgSolutionSheetMissing)
	}

	studentSheet, err := student.Sheet(cfg.StudentSheet)
	if err != nil {
		return models.ZeroResult(models.ErrorStructural,
			fmt.Sprintf(msgStudentSheetMissing, cfg.StudentSheet))
	}
	solutionSheet, err := solution.Sheet(cfg.SolutionSheet)
	if err != nil {
		return models.ZeroResult(models.ErrorStructural, msgSolutionSheetMissing)
	}

	matches, totalCells := indicatorPass(studentSheet, solutionSheet, cfg)
	hiddenPassed := hiddenPass(studentSheet, solutionSheet, cfg.HiddenCells)

	ynScore := 0.0
	if totalCells > 0 {
		ynScore = float64(matches) / float64(totalCells)
	}
	hiddenScore := 0.0
	if len(cfg.HiddenCells) > 0 {
		hiddenScore = float64(hiddenPassed) / float64(len(cfg.HiddenCells))
	}

	score := ynScore*cfg.IndicatorWeight + hiddenScore*cfg.HiddenWeight

	// Feedback reports indicator counts only; hidden-test results stay
	// undisclosed so repeated attempts cannot map the hidden cells.
	feedback := fmt.Sprintf("Your score: %.2f%%\nYou correctly matched %d out of %d cells.",
		score*100, matches, totalCells)

	return models.Result{
		Score:        score,
		Feedback:     feedback,
		Matches:      matches,
		TotalCells:   totalCells,
		HiddenPassed: hiddenPassed,
		HiddenTotal:  len(cfg.HiddenCells),
	}
}

// indicatorPass compares the indicator row column by column. Columns
// before the start column are label space. A column is scored only
// when both sheets have a value there; a blank solution column is
// excluded entirely.
func indicatorPass(student, solution *workbook.Sheet, cfg Config) (matches, totalCells int) {
	maxCol := student.MaxColumn()
	if solution.MaxColumn() > maxCol {
		maxCol = solution.MaxColumn()
	}
	for col := cfg.IndicatorStartColumn; col <= maxCol; col++ {
		sv := student.Cell(cfg.IndicatorRow, col)
		rv := solution.Cell(cfg.IndicatorRow, col)
		if sv.IsBlank() || rv.IsBlank() {
			continue
		}
		totalCells++
		if StrictEqual(sv, rv) {
			matches++
		}
	}
	return matches, totalCells
}

// hiddenPass checks each hidden cell with the tolerant comparison. An
// address that resolves on neither side reads as blank on both and
// therefore passes.
func hiddenPass(student, solution *workbook.Sheet, cells []HiddenCell) int {
	passed := 0
	for _, hc := range cells {
		if EqualValues(student.CellAt(hc.Cell), solution.CellAt(hc.Cell)) {
			passed++
		}
	}
	return passed
}
