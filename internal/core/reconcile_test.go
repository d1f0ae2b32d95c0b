package core

import (
	"context"
	"testing"
)

func newTable(src Source, entries map[GeographyID]Entry) *Table {
	return &Table{Source: src, Entries: entries}
}

func TestReconciler_DualInput(t *testing.T) {
	ds := dualDataset()
	male := newTable(ds.Sources[0], map[GeographyID]Entry{
		5917034: {Name: "Victoria", Fields: FieldVector{"100", "60", "40"}},
		59:      {Name: "British Columbia", Fields: FieldVector{"2000", "1000", "1000"}},
		5915022: {Name: "Vancouver", Fields: FieldVector{"10.5", "5", "5"}},
	})
	female := newTable(ds.Sources[1], map[GeographyID]Entry{
		59:      {Name: "British Columbia", Fields: FieldVector{"2100", "1000", "1100"}},
		5915022: {Name: "Vancouver", Fields: FieldVector{"20.7", "10", "10"}},
		5915004: {Name: "Surrey", Fields: FieldVector{"7", "3", "4"}},
	})

	got, err := NewReconciler(ds).Reconcile(context.Background(), male, female)
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}

	want := []Record{
		{ID: 59, Name: "British Columbia", Fields: []string{"4100", "2000", "1000", "1000", "2100", "1000", "1100"}},
		{ID: 5915004, Name: "Surrey", Fields: []string{"7", "0", "0", "0", "7", "3", "4"}},
		{ID: 5915022, Name: "Vancouver", Fields: []string{"31", "10.5", "5", "5", "20.7", "10", "10"}},
		{ID: 5917034, Name: "Victoria", Fields: []string{"100", "100", "60", "40", "0", "0", "0"}},
	}
	if len(got.Records) != len(want) {
		t.Fatalf("len(Records) = %d, want %d", len(got.Records), len(want))
	}
	for i, rec := range got.Records {
		if rec.ID != want[i].ID || rec.Name != want[i].Name || !equalStrings(rec.Fields, want[i].Fields) {
			t.Errorf("Records[%d] = %+v, want %+v", i, rec, want[i])
		}
	}

	if len(got.Gaps) != 2 {
		t.Fatalf("Gaps = %v, want 2", got.Gaps)
	}
	if got.Gaps[0].ID != 5915004 || got.Gaps[0].Missing[0] != "male" {
		t.Errorf("Gaps[0] = %v, want 5915004 missing male", got.Gaps[0])
	}
	if got.Gaps[1].ID != 5917034 || got.Gaps[1].Missing[0] != "female" {
		t.Errorf("Gaps[1] = %v, want 5917034 missing female", got.Gaps[1])
	}
}

// A record present only in the male table is written with a null female
// vector and a derived total equal to the male total.
func TestReconciler_MissingCounterpart(t *testing.T) {
	ds := dualDataset()
	ds.Sources[0].Columns = ds.Sources[0].Columns[:1]
	ds.Sources[1].Columns = ds.Sources[1].Columns[:1]

	male := newTable(ds.Sources[0], map[GeographyID]Entry{
		5917034: {Name: "Victoria", Fields: FieldVector{"100"}},
	})
	female := newTable(ds.Sources[1], map[GeographyID]Entry{})

	got, err := NewReconciler(ds).Reconcile(context.Background(), male, female)
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}
	if len(got.Records) != 1 {
		t.Fatalf("Records = %v, want 1", got.Records)
	}
	if values := got.Records[0].Values(); !equalStrings(values, []string{"5917034", "Victoria", "100", "100", "0"}) {
		t.Errorf("Values() = %v", values)
	}
	if len(got.Gaps) != 1 {
		t.Errorf("Gaps = %v, want 1", got.Gaps)
	}
}

func TestReconciler_SingleInputSorted(t *testing.T) {
	ds := singleDataset()
	in := newTable(ds.Sources[0], map[GeographyID]Entry{
		5915022: {Name: "Vancouver", Fields: FieldVector{"5", "1"}},
		933:     {Name: "Vancouver CMA", Fields: FieldVector{"9", "2"}},
		59:      {Name: "British Columbia", Fields: FieldVector{"20", "3"}},
	})

	got, err := NewReconciler(ds).Reconcile(context.Background(), in)
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}

	wantIDs := []GeographyID{59, 933, 5915022}
	for i, rec := range got.Records {
		if rec.ID != wantIDs[i] {
			t.Errorf("Records[%d].ID = %d, want %d", i, rec.ID, wantIDs[i])
		}
	}
	if len(got.Gaps) != 0 {
		t.Errorf("single input should have no gaps: %v", got.Gaps)
	}
	if !equalStrings(got.Records[0].Fields, []string{"20", "3"}) {
		t.Errorf("single input should pass fields through: %v", got.Records[0].Fields)
	}
}

// The display name comes from the first source that has the ID, even when
// that name is empty.
func TestReconciler_NameFromFirstPresentSource(t *testing.T) {
	ds := dualDataset()
	male := newTable(ds.Sources[0], map[GeographyID]Entry{
		59:      {Name: "", Fields: FieldVector{"1", "1", "0"}},
		5915022: {Name: "Vancouver", Fields: FieldVector{"1", "1", "0"}},
	})
	female := newTable(ds.Sources[1], map[GeographyID]Entry{
		59:      {Name: "British Columbia", Fields: FieldVector{"1", "1", "0"}},
		5915022: {Name: "Vancouver City", Fields: FieldVector{"1", "1", "0"}},
		5915004: {Name: "Surrey", Fields: FieldVector{"1", "1", "0"}},
	})

	got, err := NewReconciler(ds).Reconcile(context.Background(), male, female)
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}

	wantNames := []string{"", "Surrey", "Vancouver"}
	if len(got.Records) != len(wantNames) {
		t.Fatalf("Records = %v, want %d", got.Records, len(wantNames))
	}
	for i, rec := range got.Records {
		if rec.Name != wantNames[i] {
			t.Errorf("Records[%d].Name = %q, want %q", i, rec.Name, wantNames[i])
		}
	}
}

// Derived totals add the decimal digits exactly before truncating.
func TestReconciler_DerivedTotalExact(t *testing.T) {
	ds := dualDataset()
	ds.Sources[0].Columns = ds.Sources[0].Columns[:1]
	ds.Sources[1].Columns = ds.Sources[1].Columns[:1]

	male := newTable(ds.Sources[0], map[GeographyID]Entry{
		59: {Name: "British Columbia", Fields: FieldVector{"9007199254740993"}},
		60: {Name: "Yukon", Fields: FieldVector{"0.6"}},
	})
	female := newTable(ds.Sources[1], map[GeographyID]Entry{
		59: {Name: "British Columbia", Fields: FieldVector{"0.9"}},
		60: {Name: "Yukon", Fields: FieldVector{"0.6"}},
	})

	got, err := NewReconciler(ds).Reconcile(context.Background(), male, female)
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}
	if len(got.Records) != 2 {
		t.Fatalf("Records = %v, want 2", got.Records)
	}
	if total := got.Records[0].Fields[0]; total != "9007199254740993" {
		t.Errorf("total = %s, want 9007199254740993", total)
	}
	if total := got.Records[1].Fields[0]; total != "1" {
		t.Errorf("total = %s, want 1", total)
	}
}

func TestReconciler_UnparseableTotalDropped(t *testing.T) {
	ds := dualDataset()
	male := newTable(ds.Sources[0], map[GeographyID]Entry{
		5917034: {Name: "Victoria", Fields: FieldVector{"x", "1", "1"}},
	})
	female := newTable(ds.Sources[1], map[GeographyID]Entry{
		5917034: {Name: "Victoria", Fields: FieldVector{"2", "1", "1"}},
	})

	got, err := NewReconciler(ds).Reconcile(context.Background(), male, female)
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}
	if len(got.Records) != 0 || got.Dropped != 1 {
		t.Errorf("Records = %v, Dropped = %d, want none and 1", got.Records, got.Dropped)
	}
}

func TestReconciler_TableCountMismatch(t *testing.T) {
	ds := dualDataset()
	if _, err := NewReconciler(ds).Reconcile(context.Background(), newTable(ds.Sources[0], nil)); err == nil {
		t.Error("Reconcile() with one table for two sources expected error")
	}
}

func TestReconciler_NullVector(t *testing.T) {
	ds := dualDataset()
	ds.NullValue = "NA"
	v := NewReconciler(ds).NullVector(1)
	if !equalStrings(v, []string{"NA", "NA", "NA"}) {
		t.Errorf("NullVector(1) = %v", v)
	}
}
