// Package decimalx provides an arbitrary-precision "extended real" numeric
// type: a decimal value that can additionally be null (absent), NaN, or
// signed infinity, built over github.com/shopspring/decimal for the exact
// decimal arithmetic the statistics engine requires.
package decimalx

import (
	"math"

	"github.com/shopspring/decimal"
)

// kind discriminates the four states an Extended value can hold.
type kind uint8

const (
	kindNull kind = iota
	kindFinite
	kindNaN
	kindInf
)

// Extended is a decimal value, NaN, +/-infinity, or null (absent/undefined).
// The zero value is Null.
type Extended struct {
	value decimal.Decimal
	kind  kind
	neg   bool // sign of infinity; meaningless otherwise
}

// Null returns the absent value. Used for values that couldn't be parsed or
// were never present (e.g. a missing run's cells).
func Null() Extended { return Extended{kind: kindNull} }

// NaN returns the not-a-number value.
func NaN() Extended { return Extended{kind: kindNaN} }

// PosInf returns positive infinity.
func PosInf() Extended { return Extended{kind: kindInf, neg: false} }

// NegInf returns negative infinity.
func NegInf() Extended { return Extended{kind: kindInf, neg: true} }

// FromDecimal wraps a finite decimal.Decimal value.
func FromDecimal(d decimal.Decimal) Extended {
	return Extended{kind: kindFinite, value: d}
}

// FromFloat64 converts a float64, mapping NaN/+Inf/-Inf to the matching
// Extended sentinel and everything else to a finite decimal.
func FromFloat64(f float64) Extended {
	switch {
	case math.IsNaN(f):
		return NaN()
	case math.IsInf(f, 1):
		return PosInf()
	case math.IsInf(f, -1):
		return NegInf()
	default:
		return FromDecimal(decimal.NewFromFloat(f))
	}
}

// ParseString parses a numeric literal, recognizing "nan", "inf"/"+inf", and
// "-inf" (case-insensitive) in addition to ordinary decimal syntax, matching
// the extended-real sentinels columns must tolerate.
// Returns (Null(), false) if s is not a recognized numeric literal at all.
func ParseString(s string) (Extended, bool) {
	switch normalizeSentinel(s) {
	case "nan":
		return NaN(), true
	case "inf", "+inf":
		return PosInf(), true
	case "-inf":
		return NegInf(), true
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Null(), false
	}

	return FromDecimal(d), true
}

func normalizeSentinel(s string) string {
	lower := make([]byte, 0, len(s))
	for i := range len(s) {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}

		lower = append(lower, c)
	}

	return string(lower)
}

// IsNull reports whether the value is absent.
func (e Extended) IsNull() bool { return e.kind == kindNull }

// IsNaN reports whether the value is not-a-number.
func (e Extended) IsNaN() bool { return e.kind == kindNaN }

// IsInf reports whether the value is +/-infinity.
func (e Extended) IsInf() bool { return e.kind == kindInf }

// IsFinite reports whether the value is an ordinary decimal number.
func (e Extended) IsFinite() bool { return e.kind == kindFinite }

// Sign returns -1 for negative infinity, +1 for positive infinity, and the
// decimal's own sign for finite values. Meaningless for Null/NaN.
func (e Extended) Sign() int {
	if e.kind == kindInf {
		if e.neg {
			return -1
		}

		return 1
	}

	return e.value.Sign()
}

// Decimal returns the underlying decimal.Decimal and true if the value is
// finite; otherwise (decimal.Decimal{}, false).
func (e Extended) Decimal() (decimal.Decimal, bool) {
	if e.kind != kindFinite {
		return decimal.Decimal{}, false
	}

	return e.value, true
}

// Float64 converts to a float64 for display purposes only; arithmetic must
// stay on the decimal/Extended representation.
func (e Extended) Float64() float64 {
	switch e.kind {
	case kindNull:
		return 0
	case kindNaN:
		return math.NaN()
	case kindInf:
		if e.neg {
			return math.Inf(-1)
		}

		return math.Inf(1)
	case kindFinite:
		f, _ := e.value.Float64()

		return f
	default:
		return 0
	}
}

// String renders the value the way table cells expect: empty for null,
// "NaN"/"Inf"/"-Inf" for the sentinels, and the decimal's own string
// representation otherwise.
func (e Extended) String() string {
	switch e.kind {
	case kindNull:
		return ""
	case kindNaN:
		return "NaN"
	case kindInf:
		if e.neg {
			return "-Inf"
		}

		return "Inf"
	case kindFinite:
		return e.value.String()
	default:
		return ""
	}
}

// FormatFixed renders a finite value with at most digits significant digits
// after the decimal point, matching a column's declared numberOfDigits. Non
// finite values render the same as String.
func (e Extended) FormatFixed(digits int32) string {
	if e.kind != kindFinite {
		return e.String()
	}

	return e.value.Truncate(digits).String()
}

// MulDecimal multiplies a finite value by a scale factor; non-finite values
// pass through unchanged (scaling NaN/Inf/Null is a no-op).
func (e Extended) MulDecimal(factor decimal.Decimal) Extended {
	if e.kind != kindFinite {
		return e
	}

	return FromDecimal(e.value.Mul(factor))
}
