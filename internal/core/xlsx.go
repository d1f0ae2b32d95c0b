package core

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Workbook is an XLSX file with one sheet per geography tier. Rows are kept in
// memory and the file is written when the workbook is closed.
type Workbook struct {
	file   *excelize.File
	path   string
	sheets int
	closed bool
}

// NewWorkbook creates an empty workbook that will be saved to path.
func NewWorkbook(path string) *Workbook {
	return &Workbook{file: excelize.NewFile(), path: path}
}

// Path returns the file the workbook is saved to.
func (w *Workbook) Path() string { return w.path }

// Sheet adds a sheet named name, writes header to its first row and returns
// a sink appending to it.
func (w *Workbook) Sheet(name string, header []string) (Sink, error) {
	if w.sheets == 0 {
		// A new file starts with a default sheet; reuse it for the first tier.
		if err := w.file.SetSheetName(w.file.GetSheetName(0), name); err != nil {
			return nil, fmt.Errorf("xlsx sheet %s: %w", name, err)
		}
	} else if _, err := w.file.NewSheet(name); err != nil {
		return nil, fmt.Errorf("xlsx sheet %s: %w", name, err)
	}
	w.sheets++

	s := &sheetSink{file: w.file, sheet: name}
	if err := s.Write(header); err != nil {
		return nil, err
	}
	return s, nil
}

// Close saves the workbook. Calling Close again is a no-op.
func (w *Workbook) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	saveErr := w.file.SaveAs(w.path)
	closeErr := w.file.Close()
	if saveErr != nil {
		return fmt.Errorf("save %s: %w", w.path, saveErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close %s: %w", w.path, closeErr)
	}
	return nil
}

// Discard releases the workbook without saving it.
func (w *Workbook) Discard() {
	if w.closed {
		return
	}
	w.closed = true
	_ = w.file.Close()
}

// sheetSink appends rows to one worksheet.
type sheetSink struct {
	file  *excelize.File
	sheet string
	row   int
}

func (s *sheetSink) Write(values []string) error {
	s.row++
	cell, err := excelize.CoordinatesToCellName(1, s.row)
	if err != nil {
		return fmt.Errorf("xlsx %s row %d: %w", s.sheet, s.row, err)
	}

	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = cellValue(v)
	}
	if err := s.file.SetSheetRow(s.sheet, cell, &cells); err != nil {
		return fmt.Errorf("xlsx %s row %d: %w", s.sheet, s.row, err)
	}
	return nil
}

// Close is a no-op; the owning Workbook saves the file.
func (s *sheetSink) Close() error { return nil }

// cellValue stores integers and decimals as numbers so spreadsheets can sum them.
func cellValue(v string) interface{} {
	if i, err := strconv.ParseInt(v, 10, 64); err == nil {
		return i
	}
	if f, err := ParseNumber(v); err == nil {
		return f
	}
	return v
}
