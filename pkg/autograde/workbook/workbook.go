// Package workbook wraps excelize with the narrow read-only access the
// grader needs: sheet lookup by name, typed cell reads, and extents.
package workbook

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ChandlerFarnsworth/xlsx-autograder/pkg/autograde/models"
)

// ErrSheetNotFound indicates a required sheet is absent.
var ErrSheetNotFound = errors.New("sheet not found")

// Workbook is a read-only spreadsheet opened for one grading call.
type Workbook struct {
	f *excelize.File
}

// Open loads a workbook from disk. Cell reads return stored computed
// values, never formula text.
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	return &Workbook{f: f}, nil
}

// OpenReader loads a workbook from a byte stream.
func OpenReader(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	return &Workbook{f: f}, nil
}

// Close releases the underlying file handles.
func (w *Workbook) Close() error {
	return w.f.Close()
}

// SheetNames returns the workbook's sheet names in file order.
func (w *Workbook) SheetNames() []string {
	return w.f.GetSheetList()
}

// HasSheet reports whether a sheet with the given name exists. Lookup
// is by exact name.
func (w *Workbook) HasSheet(name string) bool {
	for _, n := range w.f.GetSheetList() {
		if n == name {
			return true
		}
	}
	return false
}

// Sheet returns the named sheet, or ErrSheetNotFound.
func (w *Workbook) Sheet(name string) (*Sheet, error) {
	if !w.HasSheet(name) {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, name)
	}
	maxRow, maxCol := extents(w.f, name)
	return &Sheet{f: w.f, name: name, maxRow: maxRow, maxCol: maxCol}, nil
}

// Sheet is a 2D grid of evaluated cells within an open workbook.
type Sheet struct {
	f      *excelize.File
	name   string
	maxRow int
	maxCol int
}

// Name returns the sheet name.
func (s *Sheet) Name() string {
	return s.name
}

// MaxRow returns the highest row index holding data (1-based).
func (s *Sheet) MaxRow() int {
	return s.maxRow
}

// MaxColumn returns the highest column index holding data (1-based).
func (s *Sheet) MaxColumn() int {
	return s.maxCol
}

// Cell reads the cell at a 1-based (row, column) position.
func (s *Sheet) Cell(row, col int) models.Value {
	ref, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return models.BlankValue()
	}
	return s.CellAt(ref)
}

// CellAt reads the cell at an A1-style address such as "AD21". Any
// lookup failure reads as a blank value, never an error.
func (s *Sheet) CellAt(ref string) models.Value {
	// Raw values keep number formats out of comparisons.
	raw, err := s.f.GetCellValue(s.name, ref, excelize.Options{RawCellValue: true})
	if err != nil || raw == "" {
		return models.BlankValue()
	}
	if ct, err := s.f.GetCellType(s.name, ref); err == nil {
		switch ct {
		case excelize.CellTypeBool:
			return models.BoolValue(raw == "1" || strings.EqualFold(raw, "true"))
		case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
			// Keep numeric-looking text as text: "1" in a string cell
			// is not the number 1.
			return models.TextValue(raw)
		}
	}
	return parseValue(raw)
}

// parseValue classifies a raw cell string as a number or text.
func parseValue(raw string) models.Value {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return models.NumberValue(float64(i))
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return models.NumberValue(f)
	}
	return models.TextValue(raw)
}

// extents computes the data extents of a sheet from a full row scan.
func extents(f *excelize.File, sheet string) (maxRow, maxCol int) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return 0, 0
	}
	maxRow = len(rows)
	for _, row := range rows {
		if len(row) > maxCol {
			maxCol = len(row)
		}
	}
	return maxRow, maxCol
}
