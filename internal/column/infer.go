package column

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/benchtable/tablegen/pkg/decimalx"
	"github.com/benchtable/tablegen/pkg/units"
)

// Finalize infers the column's semantic type, unit, and effective scale
// factor from a sample of its non-null extracted values, implementing
// ordered rules. samples should be the raw extracted strings
// (pre-conversion); nulls must already be excluded by the caller.
func (c *Column) Finalize(samples []string) {
	switch {
	case c.titleIsStatus() && c.IsMainStatus:
		c.Type = TypeMainStatus
	case c.titleIsStatus():
		c.Type = TypeStatus
	case allParseAsInteger(samples):
		c.Type = numericType(c, true)
	case allParseAsDecimal(samples):
		c.Type = numericType(c, false)
	default:
		c.Type = TypeText
	}

	c.EffectiveScale = c.computeEffectiveScale()
}

// numericType returns TypeMeasurement when a unit or scale factor is
// declared, else TypeInteger/TypeDecimal per the isInteger flag.
func numericType(c *Column, isInteger bool) Type {
	if c.SourceUnit != "" || c.DisplayUnit != "" || c.ScaleFactor != nil {
		c.Unit = c.DisplayUnit
		if c.Unit == "" {
			c.Unit = c.SourceUnit
		}

		return TypeMeasurement
	}

	if isInteger {
		return TypeInteger
	}

	return TypeDecimal
}

// computeEffectiveScale composes the unit-conversion factor (when
// SourceUnit and DisplayUnit differ) with any declared ScaleFactor, per
// : "A declared scale-factor always composes multiplicatively
// after unit conversion."
func (c *Column) computeEffectiveScale() decimal.Decimal {
	factor := decimal.NewFromInt(1)

	if c.SourceUnit != "" && c.DisplayUnit != "" && c.SourceUnit != c.DisplayUnit {
		converted, err := units.ConversionFactor(c.SourceUnit, c.DisplayUnit)
		if err == nil {
			factor = converted
		}
	}

	if c.ScaleFactor != nil {
		factor = factor.Mul(*c.ScaleFactor)
	}

	return factor
}

// allParseAsInteger reports whether every sample parses as a base-10 integer
// literal. An empty sample set does not satisfy this: the function returns
// false for it.
func allParseAsInteger(samples []string) bool {
	if len(samples) == 0 {
		return false
	}

	for _, s := range samples {
		if _, err := strconv.ParseInt(s, 10, 64); err != nil {
			return false
		}
	}

	return true
}

// allParseAsDecimal reports whether every sample parses as a finite decimal
// or one of the extended-real sentinels (+/-inf, nan)
// rule 3.
func allParseAsDecimal(samples []string) bool {
	if len(samples) == 0 {
		return false
	}

	for _, s := range samples {
		if _, ok := decimalx.ParseString(s); !ok {
			return false
		}
	}

	return true
}

// ConvertValue applies the column's effective scale factor to a parsed
// value, implementing display-unit conversion. Only finite values are
// affected; nulls/NaN/Inf pass through unchanged.
func (c *Column) ConvertValue(v decimalx.Extended) decimalx.Extended {
	if c.EffectiveScale.Equal(decimal.NewFromInt(1)) {
		return v
	}

	return v.MulDecimal(c.EffectiveScale)
}
