// Package diff implements the diff filter: selecting rows whose
// relevant-for-diff columns disagree across run sets, and highlighting
// the character-level disagreement for display.
//
// Grounded on pkg/plumbing/types.go's CachedBlob.Diffs field (a
// []diffmatchpatch.Diff carried alongside blob data) for the convention of
// attaching a diffmatchpatch.Diff slice to a data value rather than
// re-diffing on render; the character-level highlighter itself uses
// github.com/sergi/go-diff/diffmatchpatch the same way git blob diffing
// does.
package diff

import "github.com/sergi/go-diff/diffmatchpatch"

// Row pairs a task.Row with the column titles that made it diff-relevant.
type Row struct {
	TaskIndex int
	Columns   []string
}

// Highlight computes a character-level diff between two cell strings for
// display using a diffmatchpatch-based approach.
func Highlight(a, b string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)

	return dmp.DiffCleanupSemantic(diffs)
}
