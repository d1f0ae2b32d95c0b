package core

// dataset_file.go reads dataset definitions from YAML so new census tables
// can be processed without a rebuild. Tier sets are referenced by name; a file
// cannot define tiers of its own.
//
//	key: dwellings
//	tiers: city
//	header_rows: 1
//	geography_column: Geography
//	id_column: UID
//	name_column: GEOGRAPHY
//	scope: any
//	province_code: 59
//	validator:
//	  type: range
//	  ranges: [{low: 59, high: 59}, {low: 901, high: 979}]
//	  then: {type: numeric, index: 0}
//	sources:
//	  - label: input
//	    columns:
//	      - {name: TOTAL, source: "Total - Private dwellings"}

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// datasetFile is the YAML form of a Dataset.
type datasetFile struct {
	Key             string         `yaml:"key"`
	Label           string         `yaml:"label"`
	Tiers           string         `yaml:"tiers"`
	HeaderRows      int            `yaml:"header_rows"`
	HeaderJoiner    string         `yaml:"header_joiner"`
	GeographyColumn string         `yaml:"geography_column"`
	IDColumn        string         `yaml:"id_column"`
	NameColumn      string         `yaml:"name_column"`
	Scope           string         `yaml:"scope"`
	ProvinceCode    int            `yaml:"province_code"`
	Validator       *validatorFile `yaml:"validator"`
	DerivedTotal    string         `yaml:"derived_total"`
	NullValue       string         `yaml:"null_value"`
	Sources         []sourceFile   `yaml:"sources"`
}

type sourceFile struct {
	Label   string       `yaml:"label"`
	Columns []columnFile `yaml:"columns"`
}

type columnFile struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
}

type validatorFile struct {
	Type       string         `yaml:"type"`
	Index      int            `yaml:"index"`
	Total      int            `yaml:"total"`
	Components []int          `yaml:"components"`
	Tolerance  int64          `yaml:"tolerance"`
	Ranges     []rangeFile    `yaml:"ranges"`
	Then       *validatorFile `yaml:"then"`
}

type rangeFile struct {
	Low  uint64 `yaml:"low"`
	High uint64 `yaml:"high"`
}

// LoadDatasetFile reads and parses the dataset file at path.
// Every failure is a *ConfigError.
func LoadDatasetFile(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, &ConfigError{Op: "dataset file", Err: err}
	}
	ds, err := ParseDatasetFile(bytes.NewReader(data))
	if err != nil {
		var cfgErr *ConfigError
		if errors.As(err, &cfgErr) {
			cfgErr.Err = fmt.Errorf("%s: %w", path, cfgErr.Err)
		}
		return Dataset{}, err
	}
	return ds, nil
}

// ParseDatasetFile decodes a YAML dataset definition and checks it.
// Unknown keys are rejected.
func ParseDatasetFile(r io.Reader) (Dataset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f datasetFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return Dataset{}, configErrorf("dataset file", "empty document")
		}
		return Dataset{}, &ConfigError{Op: "dataset file", Err: err}
	}

	ds, err := f.dataset()
	if err != nil {
		return Dataset{}, &ConfigError{Op: "dataset file", Err: err}
	}
	if err := ds.Check(); err != nil {
		return Dataset{}, &ConfigError{Op: "dataset file", Err: err}
	}
	return ds, nil
}

func (f datasetFile) dataset() (Dataset, error) {
	tiers, ok := TierSetByName(f.Tiers)
	if !ok {
		return Dataset{}, fmt.Errorf("unknown tier set %q (want standard or city)", f.Tiers)
	}
	scope, err := parseScope(f.Scope)
	if err != nil {
		return Dataset{}, err
	}
	if f.Validator == nil {
		return Dataset{}, errors.New("validator is required")
	}
	v, err := f.Validator.validator()
	if err != nil {
		return Dataset{}, err
	}

	ds := Dataset{
		Key:             f.Key,
		Label:           f.Label,
		Tiers:           tiers,
		HeaderRows:      f.HeaderRows,
		HeaderJoiner:    f.HeaderJoiner,
		GeographyColumn: f.GeographyColumn,
		IDColumn:        f.IDColumn,
		NameColumn:      f.NameColumn,
		Scope:           scope,
		ProvinceCode:    f.ProvinceCode,
		Validator:       v,
		DerivedTotal:    f.DerivedTotal,
		NullValue:       f.NullValue,
	}
	if ds.HeaderRows == 0 {
		ds.HeaderRows = 1
	}
	for _, src := range f.Sources {
		s := Source{Label: src.Label, Columns: make([]Column, len(src.Columns))}
		for i, c := range src.Columns {
			s.Columns[i] = Column{Name: c.Name, Source: c.Source}
		}
		ds.Sources = append(ds.Sources, s)
	}
	return ds, nil
}

func (v validatorFile) validator() (Validator, error) {
	switch strings.ToLower(v.Type) {
	case "accept-all", "accept":
		return AcceptAll{}, nil
	case "numeric":
		return NumericParseable{Index: v.Index}, nil
	case "sum":
		return SumConsistency{Total: v.Total, Components: v.Components, Tolerance: v.Tolerance}, nil
	case "range":
		if len(v.Ranges) == 0 {
			return nil, errors.New("range validator needs at least one range")
		}
		gated := RangeGated{Ranges: make([]IDRange, len(v.Ranges))}
		for i, r := range v.Ranges {
			if r.Low > r.High {
				return nil, fmt.Errorf("range %d-%d is inverted", r.Low, r.High)
			}
			gated.Ranges[i] = IDRange{Low: GeographyID(r.Low), High: GeographyID(r.High)}
		}
		if v.Then != nil {
			then, err := v.Then.validator()
			if err != nil {
				return nil, fmt.Errorf("range then: %w", err)
			}
			gated.Then = then
		}
		return gated, nil
	case "":
		return nil, errors.New("validator type is required")
	default:
		return nil, fmt.Errorf("unknown validator type %q (want numeric, sum, range or accept-all)", v.Type)
	}
}

func parseScope(s string) (Scope, error) {
	switch strings.ToLower(s) {
	case "", "province":
		return ScopeProvince, nil
	case "any":
		return ScopeAny, nil
	default:
		return 0, fmt.Errorf("unknown scope %q (want province or any)", s)
	}
}
