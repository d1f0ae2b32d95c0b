package core

// header.go builds the column binding used to read rows by position.
//
// Headers are looked up once per file; every data row is then read through
// the resulting slice of positions. A source header that appears more than
// once is bound by occurrence: the n-th reference in a column list binds to
// the n-th column carrying that header.

import (
	"fmt"
	"strings"
)

// HeaderIndex maps trimmed header names to every position they occupy.
type HeaderIndex map[string][]int

// MakeHeaderIndex creates a HeaderIndex from a header row.
func MakeHeaderIndex(header []string) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		key := cleanHeader(h)
		idx[key] = append(idx[key], i)
	}
	return idx
}

// JoinHeaderRows builds composite column names from a two-row header, where
// the first row names groups spanning the subfields in the second row:
// "15 to 24 years" + "." + "Total" -> "15 to 24 years.Total".
func JoinHeaderRows(first, second []string, joiner string) []string {
	out := make([]string, len(first))
	for i := range first {
		sub := ""
		if i < len(second) {
			sub = cleanHeader(second[i])
		}
		out[i] = cleanHeader(first[i]) + joiner + sub
	}
	return out
}

// Binding holds the positions of the geography column and a source's data
// columns within one input file.
type Binding struct {
	Geography int
	Fields    []int
	width     int
}

// Width returns the minimum number of cells a row needs.
func (b Binding) Width() int { return b.width }

// Bind resolves the geography column and cols against the index.
// All missing names are reported together.
func (h HeaderIndex) Bind(geography string, cols []Column) (Binding, error) {
	used := make(map[string]int)
	var missing []string

	pick := func(name string) int {
		positions, ok := h[name]
		if !ok || len(positions) == 0 {
			missing = append(missing, name)
			return -1
		}
		n := used[name]
		used[name] = n + 1
		if n >= len(positions) {
			n = len(positions) - 1
		}
		return positions[n]
	}

	b := Binding{Geography: pick(geography), Fields: make([]int, len(cols))}
	for i, col := range cols {
		b.Fields[i] = pick(col.Source)
	}

	if len(missing) > 0 {
		return Binding{}, fmt.Errorf("missing required columns: %s", strings.Join(quoteAll(missing), ", "))
	}

	b.width = b.Geography + 1
	for _, pos := range b.Fields {
		if pos+1 > b.width {
			b.width = pos + 1
		}
	}
	return b, nil
}

func quoteAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = fmt.Sprintf("%q", n)
	}
	return out
}
