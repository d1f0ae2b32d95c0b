package core

// convert.go provides cell cleaning and number conversion for census values.
//
// Census extracts carry plain decimal counts, rates and averages. Values are
// validated against a strict numeric pattern and scanned into pgtype.Numeric,
// which keeps the exact decimal digits. Truncation for sum checks and derived
// totals works on those digits with math/big, so a 17-digit count is never
// rounded through float64. ParseNumber is the only float64 conversion.

import (
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// numericRegex matches integers, decimals and scientific notation.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// maxExponent bounds the exponent of scientific notation.
const maxExponent = 1000

// ToNumeric converts a cell to pgtype.Numeric.
// Returns invalid if the cell is empty, not a decimal number, or carries an
// exponent beyond maxExponent.
func ToNumeric(s string) pgtype.Numeric {
	s = strings.TrimSpace(s)
	if s == "" || !numericRegex.MatchString(s) {
		return pgtype.Numeric{Valid: false}
	}

	// pgtype.Numeric scans plain decimals only; the exponent is applied to Exp.
	mantissa, exp := s, int64(0)
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		e, err := strconv.ParseInt(s[i+1:], 10, 32)
		if err != nil || e > maxExponent || e < -maxExponent {
			return pgtype.Numeric{Valid: false}
		}
		mantissa, exp = s[:i], e
	}

	var n pgtype.Numeric
	if err := n.Scan(mantissa); err != nil || !n.Valid || n.NaN || n.InfinityModifier != pgtype.Finite {
		return pgtype.Numeric{Valid: false}
	}
	n.Exp += int32(exp)
	return n
}

// ParseNumber converts a cell to float64.
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	n := ToNumeric(s)
	if !n.Valid {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, s)
	}

	v, err := n.Float64Value()
	if err != nil || !v.Valid || math.IsInf(v.Float64, 0) || math.IsNaN(v.Float64) {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, s)
	}
	return v.Float64, nil
}

// TruncateNumber parses a cell and truncates it toward zero, so "12.9"
// becomes 12 and "-3.5" becomes -3. Values outside int64 are an error.
func TruncateNumber(s string) (int64, error) {
	return TruncateSum(s)
}

// TruncateSum adds the cells exactly and truncates the sum toward zero:
// "0.6" and "0.6" give 1, not 0.
func TruncateSum(values ...string) (int64, error) {
	sum := pgtype.Numeric{Int: new(big.Int), Valid: true}
	for _, v := range values {
		n := ToNumeric(v)
		if !n.Valid {
			return 0, fmt.Errorf("%w: %q", ErrNotNumeric, strings.TrimSpace(v))
		}
		sum = addNumeric(sum, n)
	}

	t := truncateNumeric(sum)
	if !t.IsInt64() {
		return 0, fmt.Errorf("%w: %s overflows", ErrNotNumeric, t)
	}
	return t.Int64(), nil
}

// truncateNumeric returns the integer part of n.
func truncateNumeric(n pgtype.Numeric) *big.Int {
	out := new(big.Int)
	if n.Int == nil {
		return out
	}
	switch {
	case n.Exp > 0:
		return out.Mul(n.Int, pow10(int64(n.Exp)))
	case n.Exp < 0:
		// Quo truncates toward zero
		return out.Quo(n.Int, pow10(int64(-n.Exp)))
	default:
		return out.Set(n.Int)
	}
}

// addNumeric returns the exact sum of two finite values.
func addNumeric(a, b pgtype.Numeric) pgtype.Numeric {
	exp := min(a.Exp, b.Exp)
	sum := new(big.Int).Add(scaleNumeric(a, exp), scaleNumeric(b, exp))
	return pgtype.Numeric{Int: sum, Exp: exp, Valid: true}
}

// scaleNumeric returns the coefficient of n at exponent exp, which must not
// exceed n.Exp.
func scaleNumeric(n pgtype.Numeric, exp int32) *big.Int {
	out := new(big.Int)
	if n.Int == nil {
		return out
	}
	if n.Exp == exp {
		return out.Set(n.Int)
	}
	return out.Mul(n.Int, pow10(int64(n.Exp-exp)))
}

func pow10(e int64) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(e), nil)
}

// FormatInt renders an integer-coerced value for output.
func FormatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

// CleanCell removes common CSV artifacts from a cell value:
//   - Trims whitespace
//   - Removes the Excel formula wrapper (="...")
func CleanCell(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\"") && len(s) >= 3 {
		s = s[2 : len(s)-1]
	}
	return s
}

// cleanHeader normalizes a header cell for column lookup.
func cleanHeader(s string) string {
	return strings.TrimSpace(s)
}
