package core

import (
	"fmt"
	"strings"
)

// DefaultHeaderJoiner joins the two rows of a two-row header.
const DefaultHeaderJoiner = "."

// DefaultNullValue fills the missing side of a dual-input record.
const DefaultNullValue = "0"

// Dataset contains everything needed to process one kind of census table.
// Datasets are built once (at init time or from a dataset file) and are
// read-only afterwards.
type Dataset struct {
	Key   string // Unique identifier and CLI command: "age"
	Label string // Display name: "Age and sex"

	Tiers TierSet // Output tiers, one file per tier

	// HeaderRows is 1 or 2. With 2, column names are built by joining the
	// trimmed cells of both rows with HeaderJoiner.
	HeaderRows   int
	HeaderJoiner string

	GeographyColumn string // Source header holding the geography text
	IDColumn        string // Destination header for the ID: "UID"
	NameColumn      string // Destination header for the display name

	Sources []Source // One or two input tables

	Scope        Scope // Resolver mode
	ProvinceCode int   // Required by ScopeProvince, also used by range gates
	Validator    Validator

	// DerivedTotal, if set, is the destination header of a column holding the
	// integer sum of the first field of every source. It is written right
	// after the name column.
	DerivedTotal string

	NullValue string // Value used to fill a missing source; DefaultNullValue if empty
}

// Resolver returns the geography resolver for the dataset.
func (d Dataset) Resolver() Resolver {
	return Resolver{Scope: d.Scope, ProvinceCode: d.ProvinceCode}
}

// Joiner returns the header joiner, defaulting to DefaultHeaderJoiner.
func (d Dataset) Joiner() string {
	if d.HeaderJoiner == "" {
		return DefaultHeaderJoiner
	}
	return d.HeaderJoiner
}

// Null returns the null value, defaulting to DefaultNullValue.
func (d Dataset) Null() string {
	if d.NullValue == "" {
		return DefaultNullValue
	}
	return d.NullValue
}

// Header returns the destination header written as the first line of every
// output file.
func (d Dataset) Header() []string {
	header := []string{d.IDColumn, d.NameColumn}
	if d.DerivedTotal != "" {
		header = append(header, d.DerivedTotal)
	}
	for _, src := range d.Sources {
		for _, col := range src.Columns {
			header = append(header, col.Name)
		}
	}
	return header
}

// Usage returns the positional argument synopsis for the dataset's command.
func (d Dataset) Usage() string {
	args := make([]string, 0, len(d.Sources)+1)
	for _, src := range d.Sources {
		args = append(args, "<"+strings.ToUpper(src.Label)+".csv>")
	}
	args = append(args, "<OUTPUTSTUB>")
	return strings.Join(args, " ")
}

// Check validates the dataset definition.
func (d Dataset) Check() error {
	var errs []string

	if d.Key == "" {
		errs = append(errs, "key is required")
	}
	if d.Tiers.Len() == 0 {
		errs = append(errs, "at least one tier is required")
	}
	if d.HeaderRows != 1 && d.HeaderRows != 2 {
		errs = append(errs, fmt.Sprintf("header rows (%d) must be 1 or 2", d.HeaderRows))
	}
	if d.GeographyColumn == "" {
		errs = append(errs, "geography column is required")
	}
	if d.IDColumn == "" || d.NameColumn == "" {
		errs = append(errs, "id and name columns are required")
	}
	if len(d.Sources) < 1 || len(d.Sources) > 2 {
		errs = append(errs, fmt.Sprintf("dataset has %d sources, want 1 or 2", len(d.Sources)))
	}
	if d.Validator == nil {
		errs = append(errs, "validator is required")
	}
	if d.Scope == ScopeProvince && d.ProvinceCode <= 0 {
		errs = append(errs, "province scope requires a province code")
	}

	labels := make(map[string]bool, len(d.Sources))
	for i, src := range d.Sources {
		if src.Label == "" {
			errs = append(errs, fmt.Sprintf("source %d has no label", i))
		} else if labels[src.Label] {
			errs = append(errs, fmt.Sprintf("duplicate source label %q", src.Label))
		}
		labels[src.Label] = true

		if len(src.Columns) == 0 {
			errs = append(errs, fmt.Sprintf("source %q has no columns", src.Label))
		}
		for _, col := range src.Columns {
			if col.Name == "" || col.Source == "" {
				errs = append(errs, fmt.Sprintf("source %q has a column without name or source", src.Label))
				break
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("dataset %q invalid:\n  - %s", d.Key, strings.Join(errs, "\n  - "))
	}
	return nil
}
