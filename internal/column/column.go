// Package column implements the column model: a column's declared
// attributes plus the semantic type, unit, and scale factor inferred
// from a sample of its values once extraction has run.
//
// Grounded on pkg/units/units.go, extended here with pkg/units/convert.go's
// dimension tables; type inference itself samples a column's extracted
// values and runs decimalx.Extended through the ordered rule set in
// infer.go.
package column

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/benchtable/tablegen/pkg/units"
)

// Type is a column's inferred semantic type.
type Type int

// Column semantic types, in the order rules evaluate them.
const (
	TypeText Type = iota
	TypeStatus
	TypeMainStatus
	TypeInteger
	TypeDecimal
	TypeMeasurement
)

// String renders the type for diagnostics and HTML class attributes.
func (t Type) String() string {
	switch t {
	case TypeText:
		return "text"
	case TypeStatus:
		return "status"
	case TypeMainStatus:
		return "main-status"
	case TypeInteger:
		return "integer"
	case TypeDecimal:
		return "decimal"
	case TypeMeasurement:
		return "measurement"
	default:
		return "unknown"
	}
}

// Column is a declared or discovered column. The declared fields come from
// either the table-definition XML (C11) or are synthesized from the union of
// titles seen across a run set's runs (C5); the derived fields are set by
// Finalize once a sample of values is available.
type Column struct {
	// Declared attributes.
	Title           string
	DisplayTitle    string // falls back to Title when empty
	Pattern         string // extraction pattern passed to a LogValueExtractor
	Href            string
	DisplayUnit     string
	SourceUnit      string
	NumberOfDigits  *int32
	ScaleFactor     *decimal.Decimal
	RelevantForDiff bool
	Hidden          bool

	// IsMainStatus replaces positional main-status detection): set true by the run-set loader exactly when a
	// column titled "status" has no extraction pattern, independent of the
	// column's index in the list.
	IsMainStatus bool

	// Derived attributes, set by Finalize.
	Type             Type
	Unit             string
	EffectiveScale   decimal.Decimal // unit-conversion factor composed with ScaleFactor
}

// DisplayTitleOrDefault returns DisplayTitle if set, else Title.
func (c *Column) DisplayTitleOrDefault() string {
	if c.DisplayTitle != "" {
		return c.DisplayTitle
	}

	return c.Title
}

// HasExtraction reports whether this column must be extracted from a log
// (it has a pattern or an href) rather than read straight from the run's XML
// <column> value.
func (c *Column) HasExtraction() bool {
	return c.Pattern != "" || c.Href != ""
}

// titleIsStatus reports whether the column's title case-insensitively equals
// "status".
func (c *Column) titleIsStatus() bool {
	return strings.EqualFold(c.Title, "status")
}
