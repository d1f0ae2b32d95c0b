package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestCSVSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out_PR.csv")

	s, err := CreateCSVSink(path, []string{"UID", "GEOGRAPHY", "TOTAL"})
	if err != nil {
		t.Fatalf("CreateCSVSink() error = %v", err)
	}
	rows := [][]string{
		{"59", "British Columbia", "4400057"},
		{"5915", "Greater Vancouver, Metro", "2313328"},
		{"5917", `Capital "CRD"`, "344615"},
	}
	for _, row := range rows {
		if err := s.Write(row); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	want := []string{
		"UID,GEOGRAPHY,TOTAL",
		"59,British Columbia,4400057",
		`5915,"Greater Vancouver, Metro",2313328`,
		`5917,"Capital ""CRD""",344615`,
	}
	if got := readLines(t, path); !equalStrings(got, want) {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestOpenSinks(t *testing.T) {
	stub := filepath.Join(t.TempDir(), "households")
	header := []string{"UID", "GEOGRAPHY", "TOTAL"}

	set, err := OpenSinks(stub, CityTiers, header, SinkOptions{})
	if err != nil {
		t.Fatalf("OpenSinks() error = %v", err)
	}
	if len(set.Sinks()) != CityTiers.Len() {
		t.Fatalf("len(Sinks()) = %d, want %d", len(set.Sinks()), CityTiers.Len())
	}
	if err := set.Sinks()[1].Write([]string{"933", "Vancouver", "10"}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := set.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := set.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	for _, tier := range CityTiers.Tiers() {
		path := OutputPath(stub, tier)
		lines := readLines(t, path)
		if lines[0] != "UID,GEOGRAPHY,TOTAL" {
			t.Errorf("%s header = %q", path, lines[0])
		}
		wantLines := 1
		if tier.Code == "CITY" {
			wantLines = 2
		}
		if len(lines) != wantLines {
			t.Errorf("%s has %d lines, want %d", path, len(lines), wantLines)
		}
	}
	if _, err := os.Stat(stub + ".xlsx"); !os.IsNotExist(err) {
		t.Errorf("xlsx written without the option: %v", err)
	}
}

func TestOpenSinks_BadDirectory(t *testing.T) {
	stub := filepath.Join(t.TempDir(), "missing", "age")
	if _, err := OpenSinks(stub, StandardTiers, []string{"UID"}, SinkOptions{}); err == nil {
		t.Error("OpenSinks() expected error for missing directory")
	}
}

func TestOpenSinks_XLSX(t *testing.T) {
	stub := filepath.Join(t.TempDir(), "labour")
	header := []string{"UID", "GEOGRAPHY", "TLABOURF", "PARTICRATE"}

	set, err := OpenSinks(stub, CityTiers, header, SinkOptions{XLSX: true})
	if err != nil {
		t.Fatalf("OpenSinks() error = %v", err)
	}
	if err := set.Sinks()[0].Write([]string{"59", "British Columbia", "2500000", "64.6"}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := set.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	paths := set.Paths()
	if last := paths[len(paths)-1]; last != stub+".xlsx" {
		t.Errorf("last path = %q, want workbook", last)
	}

	f, err := excelize.OpenFile(stub + ".xlsx")
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	wantSheets := []string{"PR", "CITY", "CD", "CSD", "DA"}
	if !equalStrings(sheets, wantSheets) {
		t.Errorf("sheets = %v, want %v", sheets, wantSheets)
	}

	rows, err := f.GetRows("PR")
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("PR rows = %v, want header and one record", rows)
	}
	if !equalStrings(rows[0], header) {
		t.Errorf("header row = %v", rows[0])
	}
	if !equalStrings(rows[1], []string{"59", "British Columbia", "2500000", "64.6"}) {
		t.Errorf("record row = %v", rows[1])
	}

	cityRows, err := f.GetRows("CITY")
	if err != nil {
		t.Fatalf("GetRows(CITY) error = %v", err)
	}
	if len(cityRows) != 1 {
		t.Errorf("CITY rows = %v, want header only", cityRows)
	}
}

func TestCellValue(t *testing.T) {
	tests := []struct {
		in   string
		want interface{}
	}{
		{"42", int64(42)},
		{"64.6", 64.6},
		{"Vancouver", "Vancouver"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := cellValue(tt.in); got != tt.want {
			t.Errorf("cellValue(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}
