package core

// loader.go turns one input file into a mapping from geography ID to field
// vector.
//
// For every data row the loader resolves the geography, reads the bound
// columns, and runs the dataset's validator. Accepted rows are stored by ID;
// a later row with the same ID replaces the earlier one. Rejected rows are
// recorded on the table and the loader moves on.

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/JonMunkholm/census2011/internal/logging"
)

// TableLoader loads input files for one source of a dataset.
type TableLoader struct {
	dataset   Dataset
	source    Source
	resolver  Resolver
	validator Validator
}

// NewTableLoader creates a loader for the i-th source of ds.
func NewTableLoader(ds Dataset, i int) (*TableLoader, error) {
	if i < 0 || i >= len(ds.Sources) {
		return nil, fmt.Errorf("dataset %q has no source %d", ds.Key, i)
	}
	validator := ds.Validator
	if validator == nil {
		validator = AcceptAll{}
	}
	return &TableLoader{
		dataset:   ds,
		source:    ds.Sources[i],
		resolver:  ds.Resolver(),
		validator: validator,
	}, nil
}

// Load reads the header and data rows of r. input names the file in
// diagnostics. A header that lacks a configured column is a ConfigError;
// every row-level problem becomes a RowRejection on the returned table.
func (l *TableLoader) Load(ctx context.Context, input string, r io.Reader, enc Encoding) (*Table, error) {
	logger := logging.WithFields(ctx, "input", input, "source", l.source.Label)
	logger.Info("reading input")

	counter := NewCountingReader(r)
	cr := csv.NewReader(Decode(counter, enc))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := l.readHeader(cr)
	if err != nil {
		return nil, &ConfigError{Op: "header", Err: fmt.Errorf("%s: %w", input, err)}
	}

	binding, err := MakeHeaderIndex(header).Bind(l.dataset.GeographyColumn, l.source.Columns)
	if err != nil {
		return nil, &ConfigError{Op: "header", Err: fmt.Errorf("%s: %w", input, err)}
	}

	table := &Table{
		Source:  l.source,
		Entries: make(map[GeographyID]Entry),
		Stats:   InputStats{Input: input, Source: l.source.Label},
	}

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if !errors.As(err, &pe) {
				return nil, fmt.Errorf("read %s: %w", input, err)
			}
			table.Stats.Rows++
			rej := newRowRejection(input, pe.StartLine, nil, err)
			rej.Kind = RejectShape
			table.reject(logger, rej)
			continue
		}

		if blankRow(row) {
			continue
		}
		table.Stats.Rows++

		line, _ := cr.FieldPos(0)
		id, entry, rej := l.parseRow(input, line, row, binding)
		if rej != nil {
			table.reject(logger, *rej)
			continue
		}

		if _, dup := table.Entries[id]; dup {
			table.Stats.Duplicates++
		}
		table.Entries[id] = entry
		table.Stats.Accepted++
	}

	table.Stats.Bytes = counter.BytesRead
	logger.Info("input loaded",
		"rows", table.Stats.Rows,
		"accepted", table.Stats.Accepted,
		"rejected", table.Stats.Rejected,
		"duplicates", table.Stats.Duplicates,
		"ids", len(table.Entries),
	)
	return table, nil
}

// readHeader returns the column names, joining a two-row header when the
// dataset requires it.
func (l *TableLoader) readHeader(cr *csv.Reader) ([]string, error) {
	first, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("input has no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if l.dataset.HeaderRows < 2 {
		return first, nil
	}

	second, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("input has one header row, want 2")
	}
	if err != nil {
		return nil, fmt.Errorf("read second header row: %w", err)
	}
	return JoinHeaderRows(first, second, l.dataset.Joiner()), nil
}

// parseRow resolves, extracts and validates one data row.
func (l *TableLoader) parseRow(input string, line int, row []string, b Binding) (GeographyID, Entry, *RowRejection) {
	if len(row) < b.Width() {
		rej := newRowRejection(input, line, nil,
			fmt.Errorf("row has %d columns, expected at least %d", len(row), b.Width()))
		rej.Kind = RejectShape
		return 0, Entry{}, &rej
	}

	fields := make(FieldVector, len(b.Fields))
	for i, pos := range b.Fields {
		fields[i] = CleanCell(row[pos])
	}

	geo, err := l.resolver.Resolve(row[b.Geography])
	if err != nil {
		rej := newRowRejection(input, line, fields, err)
		return 0, Entry{}, &rej
	}

	if err := l.validator.Validate(geo.ID, fields); err != nil {
		rej := newRowRejection(input, line, fields, err)
		return 0, Entry{}, &rej
	}

	return geo.ID, Entry{Name: geo.Name, Fields: fields, Line: line}, nil
}

// reject records a skipped row. Scope and range rejections are expected in
// volume (other provinces, national totals, footnotes) and log at debug;
// validation failures log at info with the observed difference.
func (t *Table) reject(logger *slog.Logger, rej RowRejection) {
	t.Stats.Rejected++
	t.Rejections = append(t.Rejections, rej)

	attrs := []any{"line", rej.Line, "kind", string(rej.Kind), "reason", rej.Reason}
	switch rej.Kind {
	case RejectValidation:
		if rej.Difference != 0 {
			attrs = append(attrs, "difference", rej.Difference)
		} else if len(rej.Data) > 0 {
			attrs = append(attrs, "row", strings.Join(rej.Data, ","))
		}
		logger.Info("row rejected", attrs...)
	default:
		logger.Debug("row rejected", attrs...)
	}
}

// blankRow reports whether every cell of row is empty or whitespace.
func blankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
