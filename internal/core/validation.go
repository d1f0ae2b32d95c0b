package core

// validation.go provides the row-level plausibility checks applied after a
// geography ID has been resolved.
//
// Each dataset names exactly one Validator. The policies are:
//   - NumericParseable: one field must be a number
//   - SumConsistency: a total must match the sum of its components
//   - RangeGated: the ID must fall in a permitted range, then another check runs
//   - AcceptAll: every row passes
//
// A failing check returns an error; the loader turns it into a RowRejection
// and skips the row. Validators never abort a run.

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// DefaultSumTolerance is the absolute difference below which a total is
// considered consistent with the sum of its components.
const DefaultSumTolerance = 50

// Validator decides whether a resolved row is accepted.
type Validator interface {
	Validate(id GeographyID, fields FieldVector) error
}

// AcceptAll accepts every row. Datasets without a meaningful cross-check use it.
type AcceptAll struct{}

func (AcceptAll) Validate(GeographyID, FieldVector) error { return nil }

func (AcceptAll) String() string { return "accept-all" }

// NumericParseable requires the field at Index to parse as a number.
// Index 0 is the first data column after the geography.
type NumericParseable struct {
	Index int
}

func (v NumericParseable) Validate(_ GeographyID, fields FieldVector) error {
	if v.Index < 0 || v.Index >= len(fields) {
		return fmt.Errorf("numeric check: field %d not present (row has %d)", v.Index, len(fields))
	}
	if _, err := ParseNumber(fields[v.Index]); err != nil {
		return fmt.Errorf("field %d: %w", v.Index, err)
	}
	return nil
}

func (v NumericParseable) String() string { return fmt.Sprintf("numeric(field=%d)", v.Index) }

// SumConsistency requires the truncated total field to equal the sum of the
// truncated component fields within Tolerance.
type SumConsistency struct {
	Total      int   // Index of the total field
	Components []int // Indexes of the components; nil means every field after Total
	Tolerance  int64 // Exclusive bound on |total - sum|; <= 0 means DefaultSumTolerance
}

func (v SumConsistency) Validate(_ GeographyID, fields FieldVector) error {
	if v.Total < 0 || v.Total >= len(fields) {
		return fmt.Errorf("sum check: total field %d not present (row has %d)", v.Total, len(fields))
	}

	total, err := TruncateNumber(fields[v.Total])
	if err != nil {
		return fmt.Errorf("total field %d: %w", v.Total, err)
	}

	// Components are truncated one by one; their sum may exceed int64.
	sum := new(big.Int)
	for _, i := range v.components(len(fields)) {
		if i < 0 || i >= len(fields) {
			return fmt.Errorf("sum check: component field %d not present (row has %d)", i, len(fields))
		}
		c, err := TruncateNumber(fields[i])
		if err != nil {
			return fmt.Errorf("component field %d: %w", i, err)
		}
		sum.Add(sum, big.NewInt(c))
	}

	diff := new(big.Int).Sub(big.NewInt(total), sum)
	diff.Abs(diff)
	if diff.Cmp(big.NewInt(v.tolerance())) >= 0 {
		return &SumMismatchError{Total: total, Sum: saturate(sum), Difference: saturate(diff)}
	}
	return nil
}

// saturate clamps x to the int64 range.
func saturate(x *big.Int) int64 {
	switch {
	case x.IsInt64():
		return x.Int64()
	case x.Sign() > 0:
		return math.MaxInt64
	default:
		return math.MinInt64
	}
}

func (v SumConsistency) components(n int) []int {
	if v.Components != nil {
		return v.Components
	}
	out := make([]int, 0, n)
	for i := v.Total + 1; i < n; i++ {
		out = append(out, i)
	}
	return out
}

func (v SumConsistency) tolerance() int64 {
	if v.Tolerance <= 0 {
		return DefaultSumTolerance
	}
	return v.Tolerance
}

func (v SumConsistency) String() string {
	return fmt.Sprintf("sum-consistency(total=%d, tolerance=%d)", v.Total, v.tolerance())
}

// IDRange is an inclusive range of geography IDs.
type IDRange struct {
	Low  GeographyID
	High GeographyID
}

// Contains reports whether id lies in the range.
func (r IDRange) Contains(id GeographyID) bool {
	return id >= r.Low && id <= r.High
}

func (r IDRange) String() string {
	if r.Low == r.High {
		return r.Low.String()
	}
	return r.Low.String() + "-" + r.High.String()
}

// RangeGated accepts a row only if its ID lies in one of Ranges and Then
// accepts it. A nil Then behaves like AcceptAll.
type RangeGated struct {
	Ranges []IDRange
	Then   Validator
}

func (v RangeGated) Validate(id GeographyID, fields FieldVector) error {
	inRange := false
	for _, r := range v.Ranges {
		if r.Contains(id) {
			inRange = true
			break
		}
	}
	if !inRange {
		return fmt.Errorf("%w: %s", ErrOutsideRange, id)
	}
	if v.Then == nil {
		return nil
	}
	return v.Then.Validate(id, fields)
}

func (v RangeGated) String() string {
	parts := make([]string, len(v.Ranges))
	for i, r := range v.Ranges {
		parts[i] = r.String()
	}
	then := "accept-all"
	if s, ok := v.Then.(fmt.Stringer); ok {
		then = s.String()
	}
	return fmt.Sprintf("range(%s) then %s", strings.Join(parts, ","), then)
}

// DescribeValidator returns a short description of v for listings.
func DescribeValidator(v Validator) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", v)
}
