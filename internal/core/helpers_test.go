package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// singleDataset is a one-input dataset over a small header.
func singleDataset() Dataset {
	return Dataset{
		Key:             "test",
		Label:           "Test table",
		Tiers:           CityTiers,
		HeaderRows:      1,
		GeographyColumn: "Geography",
		IDColumn:        "UID",
		NameColumn:      "GEOGRAPHY",
		Sources: []Source{{
			Label: "input",
			Columns: []Column{
				{Name: "TOTAL", Source: "Total"},
				{Name: "OWNED", Source: "Owned"},
			},
		}},
		Scope:        ScopeProvince,
		ProvinceCode: 59,
		Validator:    NumericParseable{Index: 0},
	}
}

// dualDataset is a male/female dataset with a sum check and derived total.
func dualDataset() Dataset {
	cols := func(prefix string) []Column {
		return []Column{
			{Name: prefix + "TPOP", Source: "Total - Age"},
			{Name: prefix + "YOUNG", Source: "0 to 49 years"},
			{Name: prefix + "OLD", Source: "50 years and over"},
		}
	}
	return Dataset{
		Key:             "dual",
		Tiers:           StandardTiers,
		HeaderRows:      1,
		GeographyColumn: "Geography",
		IDColumn:        "UID",
		NameColumn:      "NAME",
		Sources: []Source{
			{Label: "male", Columns: cols("M")},
			{Label: "female", Columns: cols("F")},
		},
		Scope:        ScopeProvince,
		ProvinceCode: 59,
		Validator:    SumConsistency{Total: 0},
		DerivedTotal: "TOTALPOP",
	}
}

// writeFile writes lines to name inside dir and returns the path.
func writeFile(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// readLines returns the lines of a file without the trailing newline.
func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
