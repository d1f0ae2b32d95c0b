package core

// tiers.go defines the nested geography tiers and the digit-length
// classification shared by the resolver and the router.
//
// A tier accepts every ID below 10^CodeLength that an earlier tier did not
// already claim, so with tiers of length 2, 4, 7 and 8 the ID 59 is a
// province, 5915 a census division and 59150004 a dissemination area.

import (
	"fmt"
	"strings"
)

// MaxCodeLength is the longest code a tier may declare; 10^19 is the largest
// power of ten that fits in a GeographyID.
const MaxCodeLength = 19

// Tier is one level of the geographic hierarchy.
type Tier struct {
	Name       string // "Census Subdivision"
	Code       string // "CSD", used in output file names
	CodeLength int    // Maximum number of decimal digits of an ID in this tier
}

// Bound returns 10^CodeLength, the exclusive upper bound of the tier.
func (t Tier) Bound() uint64 {
	b := uint64(1)
	for i := 0; i < t.CodeLength; i++ {
		b *= 10
	}
	return b
}

// TierSet is an ordered list of tiers with strictly increasing code lengths.
// It is built once with NewTierSet and never mutated.
type TierSet struct {
	tiers []Tier
}

// NewTierSet validates and returns an ordered tier set.
func NewTierSet(tiers ...Tier) (TierSet, error) {
	if len(tiers) == 0 {
		return TierSet{}, fmt.Errorf("tier set is empty")
	}

	seen := make(map[string]bool, len(tiers))
	prev := 0
	for i, t := range tiers {
		if t.Code == "" {
			return TierSet{}, fmt.Errorf("tier %d (%q) has no code", i, t.Name)
		}
		if seen[t.Code] {
			return TierSet{}, fmt.Errorf("duplicate tier code %q", t.Code)
		}
		seen[t.Code] = true

		if t.CodeLength < 1 || t.CodeLength > MaxCodeLength {
			return TierSet{}, fmt.Errorf("tier %q code length %d must be 1-%d", t.Code, t.CodeLength, MaxCodeLength)
		}
		if t.CodeLength <= prev {
			return TierSet{}, fmt.Errorf("tier %q code length %d must be greater than %d", t.Code, t.CodeLength, prev)
		}
		prev = t.CodeLength
	}

	out := make([]Tier, len(tiers))
	copy(out, tiers)
	return TierSet{tiers: out}, nil
}

// MustTierSet is like NewTierSet but panics on an invalid tier list.
// Use it only for package-level tables.
func MustTierSet(tiers ...Tier) TierSet {
	ts, err := NewTierSet(tiers...)
	if err != nil {
		panic(err)
	}
	return ts
}

// Len returns the number of tiers.
func (s TierSet) Len() int { return len(s.tiers) }

// At returns the i-th tier.
func (s TierSet) At(i int) Tier { return s.tiers[i] }

// Tiers returns a copy of the tiers in ascending code length order.
func (s TierSet) Tiers() []Tier {
	out := make([]Tier, len(s.tiers))
	copy(out, s.tiers)
	return out
}

// Classify returns the index of the first tier whose bound exceeds id.
// The second result is false when id has more digits than the largest tier.
func (s TierSet) Classify(id GeographyID) (int, bool) {
	for i, t := range s.tiers {
		if uint64(id) < t.Bound() {
			return i, true
		}
	}
	return -1, false
}

// String returns the tier codes and lengths joined with "," for display.
func (s TierSet) String() string {
	codes := make([]string, len(s.tiers))
	for i, t := range s.tiers {
		codes[i] = fmt.Sprintf("%s(%d)", t.Code, t.CodeLength)
	}
	return strings.Join(codes, ",")
}

// Standard tiers of the 2011 census geography.
var (
	TierProvince      = Tier{Name: "Province", Code: "PR", CodeLength: 2}
	TierCity          = Tier{Name: "City", Code: "CITY", CodeLength: 3}
	TierDivision      = Tier{Name: "Census Division", Code: "CD", CodeLength: 4}
	TierSubdivision   = Tier{Name: "Census Subdivision", Code: "CSD", CodeLength: 7}
	TierDissemination = Tier{Name: "Dissemination area", Code: "DA", CodeLength: 8}
)

// StandardTiers is the province / division / subdivision / dissemination area hierarchy.
var StandardTiers = MustTierSet(TierProvince, TierDivision, TierSubdivision, TierDissemination)

// CityTiers adds the three-digit city (metropolitan area) tier used by tables
// that report cities alongside the province.
var CityTiers = MustTierSet(TierProvince, TierCity, TierDivision, TierSubdivision, TierDissemination)

// TierSetByName returns one of the built-in tier sets: "standard" or "city".
func TierSetByName(name string) (TierSet, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "standard", "":
		return StandardTiers, true
	case "city":
		return CityTiers, true
	default:
		return TierSet{}, false
	}
}
