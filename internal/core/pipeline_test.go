package core

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// sumDataset is a single-input dataset validated by sum consistency.
func sumDataset() Dataset {
	ds := singleDataset()
	ds.Sources[0].Columns = []Column{
		{Name: "TOTAL", Source: "Total"},
		{Name: "PARTA", Source: "Part A"},
		{Name: "PARTB", Source: "Part B"},
	}
	ds.Validator = SumConsistency{Total: 0}
	return ds
}

func runPipeline(t *testing.T, ds Dataset, opts RunOptions) *RunResult {
	t.Helper()
	p, err := NewPipeline(ds)
	if err != nil {
		t.Fatalf("NewPipeline() error = %v", err)
	}
	result, err := p.Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return result
}

func TestPipeline_Run_SingleInput(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "input.csv",
		"Geography,Total,Part A,Part B",
		"British Columbia (59),5000,2500,2500",
		"Vancouver (5915022),1000,500,490",
		"Calgary (4806016),1000,500,500",
		"Victoria (5917034),1000,500,450",
		"Oversized (591502200001),1,1,0",
	)
	stub := filepath.Join(dir, "out")

	result := runPipeline(t, sumDataset(), RunOptions{Inputs: []string{input}, OutputStub: stub})

	csd := readLines(t, stub+"_CSD.csv")
	want := []string{"UID,GEOGRAPHY,TOTAL,PARTA,PARTB", "5915022,Vancouver,1000,500,490"}
	if !equalStrings(csd, want) {
		t.Errorf("CSD file = %q, want %q", csd, want)
	}

	pr := readLines(t, stub+"_PR.csv")
	if len(pr) != 2 || pr[1] != "59,British Columbia,5000,2500,2500" {
		t.Errorf("PR file = %q", pr)
	}

	for _, code := range []string{"CITY", "CD", "DA"} {
		if lines := readLines(t, stub+"_"+code+".csv"); len(lines) != 1 {
			t.Errorf("%s file = %q, want header only", code, lines)
		}
	}

	if result.Records != 3 || result.Written() != 2 || result.Unroutable != 1 {
		t.Errorf("result = %+v, want 3 records, 2 written, 1 unroutable", result)
	}
	if len(result.Inputs) != 1 || result.Inputs[0].Rejected != 2 {
		t.Errorf("Inputs = %+v, want 2 rejected", result.Inputs)
	}
	if len(result.Outputs) != CityTiers.Len() {
		t.Errorf("Outputs = %v", result.Outputs)
	}
	if result.Dataset != "test" {
		t.Errorf("Dataset = %q", result.Dataset)
	}
}

func TestPipeline_Run_DualInput(t *testing.T) {
	dir := t.TempDir()
	ds := dualDataset()
	header := "Geography,Total - Age,0 to 49 years,50 years and over"
	male := writeFile(t, dir, "male.csv", header,
		"British Columbia (59),100,60,40",
		"Victoria (5917034),100,60,40",
	)
	female := writeFile(t, dir, "female.csv", header,
		"British Columbia (59),110,60,50",
	)
	stub := filepath.Join(dir, "age")

	result := runPipeline(t, ds, RunOptions{Inputs: []string{male, female}, OutputStub: stub})

	pr := readLines(t, stub+"_PR.csv")
	wantPR := []string{
		"UID,NAME,TOTALPOP,MTPOP,MYOUNG,MOLD,FTPOP,FYOUNG,FOLD",
		"59,British Columbia,210,100,60,40,110,60,50",
	}
	if !equalStrings(pr, wantPR) {
		t.Errorf("PR file = %q, want %q", pr, wantPR)
	}

	csd := readLines(t, stub+"_CSD.csv")
	if len(csd) != 2 || csd[1] != "5917034,Victoria,100,100,60,40,0,0,0" {
		t.Errorf("CSD file = %q", csd)
	}

	if len(result.Gaps) != 1 || result.Gaps[0].ID != 5917034 || result.Gaps[0].Missing[0] != "female" {
		t.Errorf("Gaps = %v", result.Gaps)
	}
}

func TestPipeline_Run_MissingCounterpartWithoutTotal(t *testing.T) {
	dir := t.TempDir()
	ds := dualDataset()
	ds.DerivedTotal = ""
	ds.Validator = AcceptAll{}
	header := "Geography,Total - Age,0 to 49 years,50 years and over"
	a := writeFile(t, dir, "a.csv", header, "Victoria (5917034),100,60,40")
	b := writeFile(t, dir, "b.csv", header)
	stub := filepath.Join(dir, "out")

	runPipeline(t, ds, RunOptions{Inputs: []string{a, b}, OutputStub: stub})

	csd := readLines(t, stub+"_CSD.csv")
	if len(csd) != 2 || csd[1] != "5917034,Victoria,100,60,40,0,0,0" {
		t.Errorf("CSD file = %q", csd)
	}
}

func TestPipeline_Run_Deterministic(t *testing.T) {
	dir := t.TempDir()
	lines := []string{"Geography,Total,Owned"}
	for _, geo := range []string{"Surrey (5915004)", "British Columbia (59)", "Vancouver (5915022)", "Burnaby (5915025)", "DA (59150004)"} {
		lines = append(lines, geo+",10,5")
	}
	input := writeFile(t, dir, "input.csv", lines...)

	first := filepath.Join(dir, "first")
	second := filepath.Join(dir, "second")
	runPipeline(t, singleDataset(), RunOptions{Inputs: []string{input}, OutputStub: first})
	runPipeline(t, singleDataset(), RunOptions{Inputs: []string{input}, OutputStub: second})

	for _, tier := range CityTiers.Tiers() {
		a, err := os.ReadFile(OutputPath(first, tier))
		if err != nil {
			t.Fatal(err)
		}
		b, err := os.ReadFile(OutputPath(second, tier))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(a, b) {
			t.Errorf("%s outputs differ:\n%s\n%s", tier.Code, a, b)
		}
	}

	csd := readLines(t, OutputPath(first, TierSubdivision))
	want := []string{"UID,GEOGRAPHY,TOTAL,OWNED", "5915004,Surrey,10,5", "5915022,Vancouver,10,5", "5915025,Burnaby,10,5"}
	if !equalStrings(csd, want) {
		t.Errorf("CSD file = %q, want ascending IDs %q", csd, want)
	}
}

func TestPipeline_Run_ConfigErrors(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.csv", "Geography,Total,Owned", "Vancouver (5915022),1,1")
	badHeader := writeFile(t, dir, "bad.csv", "Geography,Total", "Vancouver (5915022),1")

	tests := []struct {
		name string
		opts RunOptions
	}{
		{"missing input", RunOptions{Inputs: []string{filepath.Join(dir, "nope.csv")}}},
		{"input is a directory", RunOptions{Inputs: []string{dir}}},
		{"too many inputs", RunOptions{Inputs: []string{good, good}}},
		{"no inputs", RunOptions{}},
		{"missing stub", RunOptions{Inputs: []string{good}, OutputStub: "-"}},
		{"missing column", RunOptions{Inputs: []string{badHeader}}},
		{"output directory missing", RunOptions{Inputs: []string{good}, OutputStub: filepath.Join(dir, "nodir", "out")}},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := tt.opts.OutputStub
			switch stub {
			case "-":
				stub = ""
			case "":
				stub = filepath.Join(dir, "case"+string(rune('a'+i)))
			}
			tt.opts.OutputStub = stub

			p, err := NewPipeline(singleDataset())
			if err != nil {
				t.Fatalf("NewPipeline() error = %v", err)
			}
			result, err := p.Run(context.Background(), tt.opts)
			if err == nil {
				t.Fatalf("Run() = %+v, want error", result)
			}
			if !IsConfigError(err) {
				t.Errorf("Run() error = %v, want ConfigError", err)
			}
			if stub != "" {
				matches, _ := filepath.Glob(stub + "_*.csv")
				if len(matches) != 0 && !strings.Contains(stub, "nodir") {
					t.Errorf("outputs created on config error: %v", matches)
				}
			}
		})
	}
}

func TestPipeline_Run_XLSX(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "input.csv", "Geography,Total,Owned", "Vancouver (5915022),10,5")
	stub := filepath.Join(dir, "out")

	result := runPipeline(t, singleDataset(), RunOptions{
		Inputs:     []string{input},
		OutputStub: stub,
		Sinks:      SinkOptions{XLSX: true},
	})

	if _, err := os.Stat(stub + ".xlsx"); err != nil {
		t.Errorf("workbook not written: %v", err)
	}
	if len(result.Outputs) != CityTiers.Len()+1 {
		t.Errorf("Outputs = %v, want CSVs and workbook", result.Outputs)
	}
}

func TestNewPipeline_InvalidDataset(t *testing.T) {
	ds := singleDataset()
	ds.Sources = nil
	if _, err := NewPipeline(ds); !IsConfigError(err) {
		t.Errorf("NewPipeline() error = %v, want ConfigError", err)
	}
}
