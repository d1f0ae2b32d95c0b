package core

// reconcile.go merges the loaded tables of a run into output records.
//
// With one table every entry passes straight through. With two (e.g. male and
// female subtables) the union of IDs is walked in ascending order; an ID that
// one side lacks is paired with a null vector for that side and reported as a
// ReconciliationGap.

import (
	"context"
	"fmt"
	"sort"

	"github.com/JonMunkholm/census2011/internal/logging"
)

// Reconciler combines tables according to a dataset's layout.
type Reconciler struct {
	dataset Dataset
}

// NewReconciler creates a reconciler for ds.
func NewReconciler(ds Dataset) *Reconciler {
	return &Reconciler{dataset: ds}
}

// Reconciliation is the output of Reconcile.
type Reconciliation struct {
	Records []Record            // Ascending by ID
	Gaps    []ReconciliationGap // Ascending by ID
	Dropped int                 // IDs whose derived total could not be computed
}

// Reconcile merges tables, which must be given in dataset source order.
func (r *Reconciler) Reconcile(ctx context.Context, tables ...*Table) (Reconciliation, error) {
	if len(tables) != len(r.dataset.Sources) {
		return Reconciliation{}, fmt.Errorf("reconcile: got %d tables, dataset %q has %d sources",
			len(tables), r.dataset.Key, len(r.dataset.Sources))
	}

	logger := logging.FromContext(ctx)
	var out Reconciliation

	for _, id := range unionIDs(tables) {
		rec := Record{ID: id}
		var missing []string
		named := false
		vectors := make([]FieldVector, len(tables))

		for i, t := range tables {
			entry, ok := t.Entries[id]
			if !ok {
				missing = append(missing, r.dataset.Sources[i].Label)
				vectors[i] = r.NullVector(i)
				continue
			}
			if !named {
				rec.Name, named = entry.Name, true
			}
			vectors[i] = entry.Fields
		}

		if len(missing) > 0 {
			gap := ReconciliationGap{ID: id, Missing: missing}
			out.Gaps = append(out.Gaps, gap)
			logger.Warn("missing counterpart", "id", id.String(), "missing", gap.Missing)
		}

		if r.dataset.DerivedTotal != "" {
			total, err := derivedTotal(vectors)
			if err != nil {
				out.Dropped++
				logger.Warn("record dropped", "id", id.String(), "column", r.dataset.DerivedTotal, "error", err)
				continue
			}
			rec.Fields = append(rec.Fields, FormatInt(total))
		}
		for _, v := range vectors {
			rec.Fields = append(rec.Fields, v...)
		}
		out.Records = append(out.Records, rec)
	}

	return out, nil
}

// NullVector returns the fill vector for source i: one null value per column.
func (r *Reconciler) NullVector(i int) FieldVector {
	cols := r.dataset.Sources[i].Columns
	v := make(FieldVector, len(cols))
	for j := range v {
		v[j] = r.dataset.Null()
	}
	return v
}

// derivedTotal adds the first field of every vector exactly and truncates
// the sum.
func derivedTotal(vectors []FieldVector) (int64, error) {
	firsts := make([]string, 0, len(vectors))
	for _, v := range vectors {
		if len(v) > 0 {
			firsts = append(firsts, v[0])
		}
	}
	return TruncateSum(firsts...)
}

// unionIDs returns every ID present in any table, ascending.
func unionIDs(tables []*Table) []GeographyID {
	if len(tables) == 1 {
		return tables[0].IDs()
	}
	seen := make(map[GeographyID]struct{})
	for _, t := range tables {
		for id := range t.Entries {
			seen[id] = struct{}{}
		}
	}
	ids := make([]GeographyID, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
