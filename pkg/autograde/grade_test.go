package autograde

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/ChandlerFarnsworth/xlsx-autograder/pkg/autograde/models"
)

// writeWorkbook builds an xlsx fixture with one named sheet and the
// given cell values.
func writeWorkbook(t *testing.T, dir, file, sheet string, cells map[string]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			t.Fatalf("SetSheetName failed: %v", err)
		}
	}
	for ref, val := range cells {
		if err := f.SetCellValue(sheet, ref, val); err != nil {
			t.Fatalf("SetCellValue(%s) failed: %v", ref, err)
		}
	}

	path := filepath.Join(dir, file)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}
	return path
}

func TestGradeAllMatch(t *testing.T) {
	dir := t.TempDir()
	cells := map[string]interface{}{
		"E1": "Y", "F1": "N", "G1": "Y",
		"AD21": 100.5, "M62": "ok", "AE187": 3.14,
	}
	student := writeWorkbook(t, dir, "student.xlsx", "blank", cells)
	solution := writeWorkbook(t, dir, "solution.xlsx", "solution", cells)

	result := Grade(student, solution, DefaultConfig())

	if result.Score != 1.0 {
		t.Errorf("Expected score 1.0, got %v (result: %+v)", result.Score, result)
	}
	if result.Matches != 3 || result.TotalCells != 3 {
		t.Errorf("Expected 3/3 indicator matches, got %d/%d", result.Matches, result.TotalCells)
	}
	if result.HiddenPassed != 3 {
		t.Errorf("Expected 3 hidden passes, got %d", result.HiddenPassed)
	}
	if result.ErrorKind != models.ErrorNone {
		t.Errorf("Expected no error kind, got %q", result.ErrorKind)
	}
}

func TestGradeIndicatorOnly(t *testing.T) {
	// Scenario: all indicator flags match but the student never filled
	// the hidden cells the solution has values for.
	dir := t.TempDir()
	student := writeWorkbook(t, dir, "student.xlsx", "blank", map[string]interface{}{
		"E1": "Y", "F1": "Y", "G1": "N",
	})
	solution := writeWorkbook(t, dir, "solution.xlsx", "solution", map[string]interface{}{
		"E1": "Y", "F1": "Y", "G1": "N",
		"AD21": 1, "M62": 2, "AE187": 3,
	})

	result := Grade(student, solution, DefaultConfig())

	if result.Score != 0.8 {
		t.Errorf("Expected score 0.8, got %v", result.Score)
	}
	if result.HiddenPassed != 0 {
		t.Errorf("Expected 0 hidden passes, got %d", result.HiddenPassed)
	}
}

func TestGradePartialHidden(t *testing.T) {
	// 2 of 3 hidden cells match, all indicator cells match.
	dir := t.TempDir()
	student := writeWorkbook(t, dir, "student.xlsx", "blank", map[string]interface{}{
		"E1": "Y", "F1": "N",
		"AD21": 10, "M62": "done", "AE187": 5,
	})
	solution := writeWorkbook(t, dir, "solution.xlsx", "solution", map[string]interface{}{
		"E1": "Y", "F1": "N",
		"AD21": 10, "M62": "done", "AE187": 7,
	})

	result := Grade(student, solution, DefaultConfig())

	expected := 0.8 + 0.2*2.0/3.0
	if math.Abs(result.Score-expected) > 1e-9 {
		t.Errorf("Expected score %v, got %v", expected, result.Score)
	}
	if result.HiddenPassed != 2 || result.HiddenTotal != 3 {
		t.Errorf("Expected 2/3 hidden passes, got %d/%d", result.HiddenPassed, result.HiddenTotal)
	}
}

func TestGradeMissingStudentSheet(t *testing.T) {
	dir := t.TempDir()
	student := writeWorkbook(t, dir, "student.xlsx", "Sheet1", map[string]interface{}{"E1": "Y"})
	solution := writeWorkbook(t, dir, "solution.xlsx", "solution", map[string]interface{}{"E1": "Y"})

	result := Grade(student, solution, DefaultConfig())

	if result.Score != 0.0 {
		t.Errorf("Expected score 0.0, got %v", result.Score)
	}
	if !strings.Contains(result.Feedback, "'blank'") {
		t.Errorf("Feedback should name the missing sheet, got %q", result.Feedback)
	}
	if result.ErrorKind != models.ErrorStructural {
		t.Errorf("Expected structural error kind, got %q", result.ErrorKind)
	}
	// short-circuits before any comparison
	if result.Matches != 0 || result.TotalCells != 0 {
		t.Errorf("Expected no cells counted, got %d/%d", result.Matches, result.TotalCells)
	}
}

func TestGradeMissingSolutionSheet(t *testing.T) {
	dir := t.TempDir()
	student := writeWorkbook(t, dir, "student.xlsx", "blank", map[string]interface{}{"E1": "Y"})
	solution := writeWorkbook(t, dir, "solution.xlsx", "Sheet1", map[string]interface{}{"E1": "Y"})

	result := Grade(student, solution, DefaultConfig())

	if result.Score != 0.0 {
		t.Errorf("Expected score 0.0, got %v", result.Score)
	}
	if !strings.Contains(result.Feedback, "Solution worksheet not found") {
		t.Errorf("Unexpected feedback: %q", result.Feedback)
	}
	if result.ErrorKind != models.ErrorStructural {
		t.Errorf("Expected structural error kind, got %q", result.ErrorKind)
	}
}

func TestGradeBlankSolutionIndicatorRow(t *testing.T) {
	// With no scorable indicator columns the indicator component is
	// 0.0, not a division error; the hidden cells are blank on both
	// sides and therefore all pass.
	dir := t.TempDir()
	student := writeWorkbook(t, dir, "student.xlsx", "blank", map[string]interface{}{
		"E1": "Y", "F1": "N",
	})
	solution := writeWorkbook(t, dir, "solution.xlsx", "solution", map[string]interface{}{
		"A5": "labels only",
	})

	result := Grade(student, solution, DefaultConfig())

	if result.TotalCells != 0 {
		t.Errorf("Expected 0 scored indicator cells, got %d", result.TotalCells)
	}
	if math.Abs(result.Score-0.2) > 1e-9 {
		t.Errorf("Expected score 0.2, got %v", result.Score)
	}
}

func TestGradeReservedColumnsIgnored(t *testing.T) {
	// Columns A-D are label space: mismatches there must not count.
	dir := t.TempDir()
	student := writeWorkbook(t, dir, "student.xlsx", "blank", map[string]interface{}{
		"A1": "Student Name", "D1": "X", "E1": "Y",
	})
	solution := writeWorkbook(t, dir, "solution.xlsx", "solution", map[string]interface{}{
		"A1": "Reference", "D1": "Z", "E1": "Y",
	})

	result := Grade(student, solution, DefaultConfig())

	if result.Matches != 1 || result.TotalCells != 1 {
		t.Errorf("Expected 1/1 indicator cells, got %d/%d", result.Matches, result.TotalCells)
	}
}

func TestGradeLoadFailure(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "corrupt.xlsx")
	if err := os.WriteFile(bad, []byte("this is not a workbook"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	solution := writeWorkbook(t, dir, "solution.xlsx", "solution", map[string]interface{}{"E1": "Y"})

	result := Grade(bad, solution, DefaultConfig())

	if result.Score != 0.0 {
		t.Errorf("Expected score 0.0, got %v", result.Score)
	}
	if result.ErrorKind != models.ErrorLoad {
		t.Errorf("Expected load error kind, got %q", result.ErrorKind)
	}
	if !strings.Contains(result.Feedback, "Error grading your submission") {
		t.Errorf("Unexpected feedback: %q", result.Feedback)
	}
}

func TestGradeEmptyHiddenList(t *testing.T) {
	// Degenerate configuration: no hidden cells must not panic and
	// contributes 0.0.
	dir := t.TempDir()
	cells := map[string]interface{}{"E1": "Y"}
	student := writeWorkbook(t, dir, "student.xlsx", "blank", cells)
	solution := writeWorkbook(t, dir, "solution.xlsx", "solution", cells)

	cfg := DefaultConfig()
	cfg.HiddenCells = nil

	result := Grade(student, solution, cfg)

	if math.Abs(result.Score-0.8) > 1e-9 {
		t.Errorf("Expected score 0.8, got %v", result.Score)
	}
	if result.HiddenTotal != 0 {
		t.Errorf("Expected 0 hidden cells, got %d", result.HiddenTotal)
	}
}

func TestGradeFeedbackRedaction(t *testing.T) {
	dir := t.TempDir()
	student := writeWorkbook(t, dir, "student.xlsx", "blank", map[string]interface{}{
		"E1": "Y", "AD21": 1,
	})
	solution := writeWorkbook(t, dir, "solution.xlsx", "solution", map[string]interface{}{
		"E1": "Y", "AD21": 2,
	})

	result := Grade(student, solution, DefaultConfig())

	if !strings.Contains(result.Feedback, "You correctly matched 1 out of 1 cells.") {
		t.Errorf("Feedback should report indicator counts, got %q", result.Feedback)
	}
	// hidden-test detail never appears in the learner message
	for _, forbidden := range []string{"hidden", "AD21", "M62", "AE187"} {
		if strings.Contains(strings.ToLower(result.Feedback), strings.ToLower(forbidden)) {
			t.Errorf("Feedback leaks hidden-test detail %q: %q", forbidden, result.Feedback)
		}
	}
}
