package units

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Dimension identifies a family of convertible measurement units.
type Dimension string

// Supported measurement dimensions.
const (
	Time   Dimension = "time"
	Bytes  Dimension = "bytes"
	Energy Dimension = "energy"
)

// baseFactors maps each dimension's known units to their multiplier relative
// to that dimension's base unit (seconds, bytes, joules). A value expressed
// in the base unit converts to unit u by multiplying with baseFactors[d][u].
var baseFactors = map[Dimension]map[string]decimal.Decimal{
	Time: {
		"s":   decimal.NewFromInt(1),
		"ms":  decimal.NewFromInt(1000),
		"min": decimal.NewFromInt(1).Div(decimal.NewFromInt(60)),
		"h":   decimal.NewFromInt(1).Div(decimal.NewFromInt(3600)),
	},
	Bytes: {
		"B":  decimal.NewFromInt(1),
		"kB": decimal.NewFromFloat(1e-3),
		"MB": decimal.NewFromFloat(1e-6),
		"GB": decimal.NewFromFloat(1e-9),
	},
	Energy: {
		"J":   decimal.NewFromInt(1),
		"kJ":  decimal.NewFromFloat(1e-3),
		"Ws":  decimal.NewFromInt(1),
		"kWs": decimal.NewFromFloat(1e-3),
		"Wh":  decimal.NewFromInt(1).Div(decimal.NewFromInt(3600)),
		"kWh": decimal.NewFromInt(1).Div(decimal.NewFromInt(3600000)),
		"mWh": decimal.NewFromInt(1).Div(decimal.NewFromInt(3600000000)),
	},
}

// unitDimension indexes every known unit string back to its dimension, built
// once from baseFactors so the two tables can never drift apart.
var unitDimension = buildUnitDimensionIndex()

func buildUnitDimensionIndex() map[string]Dimension {
	index := make(map[string]Dimension)

	for dim, factors := range baseFactors {
		for unit := range factors {
			index[unit] = dim
		}
	}

	return index
}

// DimensionOf returns the dimension a unit string belongs to, and whether it
// is known at all. Columns with an unrecognized unit are left unconverted.
func DimensionOf(unit string) (Dimension, bool) {
	dim, ok := unitDimension[unit]

	return dim, ok
}

// ConversionFactor returns the multiplicative factor that converts a value
// expressed in sourceUnit to one expressed in displayUnit. Both units must
// belong to the same dimension.
func ConversionFactor(sourceUnit, displayUnit string) (decimal.Decimal, error) {
	sourceDim, ok := unitDimension[sourceUnit]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownUnit, sourceUnit)
	}

	displayDim, ok := unitDimension[displayUnit]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownUnit, displayUnit)
	}

	if sourceDim != displayDim {
		return decimal.Zero, fmt.Errorf("%w: %q (%s) vs %q (%s)",
			ErrIncompatibleUnits, sourceUnit, sourceDim, displayUnit, displayDim)
	}

	sourceFactor := baseFactors[sourceDim][sourceUnit]
	displayFactor := baseFactors[displayDim][displayUnit]

	// value_base = value_source / sourceFactor; value_display = value_base * displayFactor.
	return displayFactor.Div(sourceFactor), nil
}

// ErrUnknownUnit is returned when a unit string isn't in any dimension table.
var ErrUnknownUnit = fmt.Errorf("units: unknown unit")

// ErrIncompatibleUnits is returned when source and display units belong to
// different dimensions and therefore cannot be converted.
var ErrIncompatibleUnits = fmt.Errorf("units: incompatible units")
