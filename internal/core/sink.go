package core

// sink.go provides the output destinations of the tier router.
//
// Every tier owns one Sink. A run opens all sinks up front with OpenSinks and
// releases them exactly once through SinkSet.Close, whatever happened to the
// rows in between.

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// Sink is an append-only destination for output rows.
type Sink interface {
	Write(values []string) error
	Close() error
}

// CSVSink writes rows to a CSV file. Fields are quoted only when they contain
// a comma, quote or line break, so plain values come out exactly as a comma
// join would write them.
type CSVSink struct {
	path string
	file *os.File
	w    *csv.Writer
}

// CreateCSVSink creates (or truncates) path and writes the header line.
func CreateCSVSink(path string, header []string) (*CSVSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}

	s := &CSVSink{path: path, file: f, w: csv.NewWriter(f)}
	if err := s.Write(header); err != nil {
		f.Close()
		return nil, err
	}
	return s, nil
}

// Path returns the file path of the sink.
func (s *CSVSink) Path() string { return s.path }

// Write appends one row.
func (s *CSVSink) Write(values []string) error {
	if err := s.w.Write(values); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// Close flushes buffered rows and closes the file.
func (s *CSVSink) Close() error {
	s.w.Flush()
	flushErr := s.w.Error()
	closeErr := s.file.Close()
	if flushErr != nil {
		return fmt.Errorf("flush %s: %w", s.path, flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close %s: %w", s.path, closeErr)
	}
	return nil
}

// MultiSink fans every row out to several sinks.
type MultiSink []Sink

// Write writes values to every sink, stopping at the first error.
func (m MultiSink) Write(values []string) error {
	for _, s := range m {
		if err := s.Write(values); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every sink and joins the errors.
func (m MultiSink) Close() error {
	var errs []error
	for _, s := range m {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// SinkOptions selects the output formats of a run.
type SinkOptions struct {
	// XLSX additionally writes <stub>.xlsx with one sheet per tier.
	XLSX bool
}

// SinkSet owns the per-tier sinks of one run.
type SinkSet struct {
	sinks   []Sink
	closers []io.Closer
	paths   []string
	closed  bool
}

// OutputPath returns the CSV path for a tier: <stub>_<code>.csv.
func OutputPath(stub string, t Tier) string {
	return stub + "_" + t.Code + ".csv"
}

// OpenSinks creates one sink per tier, each starting with header.
// If a sink cannot be created the ones already opened are closed; their
// (header-only) files are left in place.
func OpenSinks(stub string, tiers TierSet, header []string, opts SinkOptions) (*SinkSet, error) {
	set := &SinkSet{}

	var wb *Workbook
	if opts.XLSX {
		wb = NewWorkbook(stub + ".xlsx")
	}

	for _, t := range tiers.Tiers() {
		path := OutputPath(stub, t)
		csvSink, err := CreateCSVSink(path, header)
		if err != nil {
			set.abort(wb)
			return nil, err
		}
		set.closers = append(set.closers, csvSink)
		set.paths = append(set.paths, path)

		if wb == nil {
			set.sinks = append(set.sinks, csvSink)
			continue
		}

		sheet, err := wb.Sheet(t.Code, header)
		if err != nil {
			set.abort(wb)
			return nil, err
		}
		set.sinks = append(set.sinks, MultiSink{csvSink, sheet})
	}

	if wb != nil {
		set.closers = append(set.closers, wb)
		set.paths = append(set.paths, wb.Path())
	}
	return set, nil
}

// Sinks returns the sinks in tier order.
func (s *SinkSet) Sinks() []Sink { return s.sinks }

// Paths returns the output file paths.
func (s *SinkSet) Paths() []string { return s.paths }

// Close releases every sink. Calling Close again is a no-op.
func (s *SinkSet) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *SinkSet) abort(wb *Workbook) {
	_ = s.Close()
	if wb != nil {
		wb.Discard()
	}
}
