// Package table implements the table assembler: building header/body/
// footer rows from reconciled task.Row values and
// fanning out to HTML/CSV renderers.
//
// Grounded on internal/analyzers/common/formatter.go's use of
// github.com/jedib0t/go-pretty/v6/table (NewWriter/AppendHeader/AppendRow/
// Render) for tabular rendering, and
// internal/analyzers/common/plotpage/plotpage.go's html/template-based page
// assembly for the HTML output.
package table

import (
	"strconv"
	"strings"
)

// PrettyMemory renders a byte count as "{N} MB" via integer division by
// 10^6.
func PrettyMemory(bytes int64) string {
	return strconv.FormatInt(bytes/1_000_000, 10) + " MB"
}

// PrettyFrequency renders a hertz count as "{N} MHz" via integer division
// by 10^6.
func PrettyFrequency(hz int64) string {
	return strconv.FormatInt(hz/1_000_000, 10) + " MHz"
}

// PrettyTimeLimit inserts a space before a trailing "s" unit, e.g. "900s"
// -> "900 s".
func PrettyTimeLimit(raw string) string {
	if strings.HasSuffix(raw, "s") && !strings.HasSuffix(raw, " s") {
		return raw[:len(raw)-1] + " s"
	}

	return raw
}

// TurboState is the merged {enabled, disabled, mixed, ''} shape
// turbo-boost values across a run set collapse to.
type TurboState int

const (
	TurboAbsent TurboState = iota
	TurboEnabled
	TurboDisabled
	TurboMixed
)

// String implements fmt.Stringer.
func (s TurboState) String() string {
	switch s {
	case TurboEnabled:
		return "enabled"
	case TurboDisabled:
		return "disabled"
	case TurboMixed:
		return "mixed"
	default:
		return ""
	}
}

// MergeTurboStates collapses a run set's per-host turbo-boost flags
// ({true, false, mixed, absent}) into one TurboState.
func MergeTurboStates(values []string) TurboState {
	sawTrue, sawFalse, sawOther := false, false, false

	for _, v := range values {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true":
			sawTrue = true
		case "false":
			sawFalse = true
		case "":
		default:
			sawOther = true
		}
	}

	switch {
	case sawOther || (sawTrue && sawFalse):
		return TurboMixed
	case sawTrue:
		return TurboEnabled
	case sawFalse:
		return TurboDisabled
	default:
		return TurboAbsent
	}
}
