package core

// geography.go extracts geography IDs from free-text geography fields.
//
// Census extracts label each row with text such as "Victoria (5917034)".
// The ID is the first parenthesized run of digits; anything else in the
// text is the display name.

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// geographyIDPattern matches the first parenthesized digit group.
var geographyIDPattern = regexp.MustCompile(`\((\d+)\)`)

// Scope selects how the resolver filters IDs.
type Scope int

const (
	// ScopeProvince accepts only IDs whose leading two digits equal the
	// configured province code. Used by tables that mix provinces.
	ScopeProvince Scope = iota

	// ScopeAny accepts every extracted ID and leaves filtering to a
	// range-gated validator.
	ScopeAny
)

func (s Scope) String() string {
	switch s {
	case ScopeProvince:
		return "province"
	case ScopeAny:
		return "any"
	default:
		return fmt.Sprintf("scope(%d)", int(s))
	}
}

// Geography is the result of resolving one geography field.
type Geography struct {
	ID     GeographyID
	Digits string // Digit group as it appeared in the text
	Name   string // Text with the digit group removed, trimmed
}

// ExtractGeography returns the ID and display name encoded in text.
func ExtractGeography(text string) (Geography, error) {
	loc := geographyIDPattern.FindStringSubmatchIndex(text)
	if loc == nil {
		return Geography{}, fmt.Errorf("%w in %q", ErrNoGeographyID, text)
	}

	digits := text[loc[2]:loc[3]]
	id, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return Geography{}, fmt.Errorf("%w: %q", ErrGeographyIDOverflow, digits)
	}

	name := strings.TrimSpace(text[:loc[0]] + text[loc[1]:])
	name = strings.Join(strings.Fields(name), " ")

	return Geography{ID: GeographyID(id), Digits: digits, Name: name}, nil
}

// Resolver extracts and scopes geography IDs. Datasets build one with
// Dataset.Resolver.
type Resolver struct {
	Scope        Scope
	ProvinceCode int
}

// Resolve extracts the geography from text and applies the scope rule.
func (r Resolver) Resolve(text string) (Geography, error) {
	geo, err := ExtractGeography(text)
	if err != nil {
		return Geography{}, err
	}

	if r.Scope == ScopeProvince && provincePrefix(geo.Digits) != r.ProvinceCode {
		return Geography{}, fmt.Errorf("%w %d: %s", ErrOutsideProvince, r.ProvinceCode, geo.Digits)
	}
	return geo, nil
}

// provincePrefix returns the value of the first two digits. IDs with a single
// digit return that digit.
func provincePrefix(digits string) int {
	if len(digits) > 2 {
		digits = digits[:2]
	}
	n, _ := strconv.Atoi(digits)
	return n
}
