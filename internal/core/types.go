package core

import (
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// GeographyID is the numeric code identifying one geographic unit
// (province, city, census division, subdivision or dissemination area).
type GeographyID uint64

// String returns the decimal form of the ID as written to output files.
func (id GeographyID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// FieldVector holds the cleaned values of one row in destination column order.
type FieldVector []string

// Column maps a destination column name to the source header it is read from.
type Column struct {
	Name   string // Destination header written to output files
	Source string // Header name in the input file (after trimming)
}

// Source describes one input table of a dataset.
// Dual-input datasets (e.g. male/female subtables) have two sources that
// share the geography column but carry their own destination names.
type Source struct {
	Label   string   // Short name used in usage text and diagnostics: "male"
	Columns []Column // Data columns in output order, geography excluded
}

// Entry is one accepted row of a loaded table.
type Entry struct {
	Name   string      // Display name with the parenthesized ID removed
	Fields FieldVector // Values for Source.Columns
	Line   int         // 1-indexed line in the input file
}

// Record is the unit written to an output sink: one resolved geography with
// all of its field vectors flattened into output column order.
type Record struct {
	ID     GeographyID
	Name   string
	Fields []string
}

// Values returns the record as a row of output cells.
func (r Record) Values() []string {
	out := make([]string, 0, len(r.Fields)+2)
	out = append(out, r.ID.String(), r.Name)
	return append(out, r.Fields...)
}

// Table is the output of the table loader for one input file.
type Table struct {
	Source     Source
	Entries    map[GeographyID]Entry
	Stats      InputStats
	Rejections []RowRejection
}

// IDs returns the table's geography IDs in ascending order.
func (t *Table) IDs() []GeographyID {
	ids := make([]GeographyID, 0, len(t.Entries))
	for id := range t.Entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// InputStats counts what happened to the rows of one input file.
type InputStats struct {
	Input      string // Input path
	Source     string // Source label
	Rows       int    // Data rows read (header and blank rows excluded)
	Accepted   int    // Rows that passed resolution and validation
	Rejected   int    // Rows skipped with a RowRejection
	Duplicates int    // Accepted rows that overwrote an earlier row with the same ID
	Bytes      int64  // Bytes consumed from the input
}

// RunResult contains the final result of one pipeline run.
type RunResult struct {
	RunID      uuid.UUID
	Dataset    string
	Inputs     []InputStats
	Records    int            // Records produced by the reconciler
	Routed     map[string]int // Records written, keyed by tier code
	Unroutable int            // Records whose ID exceeded every tier bound
	Dropped    int            // Records the reconciler could not build
	Gaps       []ReconciliationGap
	Outputs    []string
	Duration   time.Duration
}

// Written returns the total number of records written across all tiers.
func (r *RunResult) Written() int {
	n := 0
	for _, c := range r.Routed {
		n += c
	}
	return n
}
