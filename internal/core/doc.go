// Package core turns Census 2011 extracts into one CSV file per geography tier.
//
// This package holds all domain logic independent of the command line. It can
// be used by the CLI, other tools, or tests without modification.
//
// # Architecture
//
// A run moves through four stages:
//
//   - Resolver: extracts the numeric geography ID from text like
//     "Vancouver (5915022)" and applies the province scope.
//   - TableLoader: reads one input, binds its header, validates every row and
//     keeps the accepted rows keyed by ID.
//   - Reconciler: merges one or two tables into records, filling a missing
//     side with a null vector.
//   - Router: writes each record to the sink of the first tier whose code
//     length can hold its ID.
//
// [Pipeline] wires the stages together for one [Dataset].
//
// # Dataset Registry
//
// Datasets are registered at init time using [Register]. Each [Dataset]
// contains everything needed to process one kind of census table:
//
//	core.Register(core.Dataset{
//	    Key:             "households",
//	    Tiers:           core.CityTiers,
//	    HeaderRows:      1,
//	    GeographyColumn: "Geography",
//	    IDColumn:        "UID",
//	    NameColumn:      "GEOGRAPHY",
//	    Sources: []core.Source{{Label: "input", Columns: []core.Column{
//	        {Name: "TOCDWLSTRC", Source: "Total - Occupied private dwellings by structural type of dwelling"},
//	    }}},
//	    Scope:        core.ScopeProvince,
//	    ProvinceCode: 59,
//	    Validator:    core.NumericParseable{Index: 0},
//	})
//
// Datasets can also be read from YAML with [ParseDatasetFile].
//
// # Error Handling
//
// Problems with arguments, files or headers are returned as [*ConfigError]
// before any output is created. Problems with a single row never abort a
// run: the row is skipped and recorded as a [RowRejection] on its [Table].
//
// # Determinism
//
// Records are written in ascending ID order for every dataset, so the same
// inputs always produce byte-identical outputs.
package core
