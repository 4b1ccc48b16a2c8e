package table

import (
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/benchtable/tablegen/internal/column"
	"github.com/benchtable/tablegen/internal/statengine"
	"github.com/benchtable/tablegen/internal/task"
)

// Assembled is the fully built table: header bundle, shortened filenames,
// per-run-set run results aligned to each row, and the optional footer
// statistics, ready to hand to a renderer.
type Assembled struct {
	Header    Header
	Filenames []string
	Rows      []task.Row
	RunSets   []*task.RunSetResult
	Footer    []FooterRow
}

// FooterRow is one statistics row: a row kind label
// followed by one statengine.Cell per (run set, column) pair, in the same
// column order the body rows use.
type FooterRow struct {
	Label string
	Cells []statengine.Cell
}

// Assemble builds an Assembled table from reconciled rows: computes the header bundle, shortens every row's
// filename by the shared commonprefix, and computes the footer statistics
// for every run set's column unless correctOnly narrows the row set.
func Assemble(runSets []*task.RunSetResult, rows []task.Row, collapseHeader, correctOnly bool) Assembled {
	names := make([]string, len(rows))
	for i, row := range rows {
		names[i] = row.Filename()
	}

	return Assembled{
		Header:    BuildHeader(runSets, collapseHeader),
		Filenames: ShortenFilenames(names),
		Rows:      rows,
		RunSets:   runSets,
		Footer:    buildFooter(runSets, rows, correctOnly),
	}
}

func buildFooter(runSets []*task.RunSetResult, rows []task.Row, correctOnly bool) []FooterRow {
	kinds := []statengine.RowKind{
		statengine.RowTotal,
		statengine.RowCorrect,
		statengine.RowCorrectTrue,
		statengine.RowCorrectFalse,
		statengine.RowCorrectUnconfirmed,
		statengine.RowCorrectUnconfirmedTrue,
		statengine.RowCorrectUnconfirmedFalse,
		statengine.RowIncorrect,
		statengine.RowWrongTrue,
		statengine.RowWrongFalse,
		statengine.RowScore,
	}

	if correctOnly {
		kinds = []statengine.RowKind{
			statengine.RowTotal,
			statengine.RowCorrect,
			statengine.RowCorrectTrue,
			statengine.RowCorrectFalse,
			statengine.RowCorrectUnconfirmed,
			statengine.RowCorrectUnconfirmedTrue,
			statengine.RowCorrectUnconfirmedFalse,
			statengine.RowScore,
		}
	}

	// One statengine.Table per (run set, column), computed once up front so
	// every footer row just looks up its cell instead of recomputing.
	type key struct {
		runSet int
		column string
	}

	tables := map[key]statengine.Table{}

	for ri, rs := range runSets {
		runs := make([]*task.RunResult, 0, len(rows))

		for _, row := range rows {
			if ri < len(row.Results) && row.Results[ri] != nil {
				runs = append(runs, row.Results[ri])
			}
		}

		for _, col := range rs.Columns {
			tables[key{ri, col.Title}] = statengine.Compute(col, runs, correctOnly)
		}
	}

	footer := make([]FooterRow, 0, len(kinds))

	for _, kind := range kinds {
		fr := FooterRow{Label: kind.String()}

		for ri, rs := range runSets {
			for _, col := range rs.Columns {
				t := tables[key{ri, col.Title}]
				cell := t.Rows[kind]

				if col.Type == column.TypeMeasurement {
					cell.Stat.Sum = col.ConvertValue(cell.Stat.Sum)
					cell.Stat.Mean = col.ConvertValue(cell.Stat.Mean)
					cell.Stat.Median = col.ConvertValue(cell.Stat.Median)
					cell.Stat.StdDev = col.ConvertValue(cell.Stat.StdDev)
				}

				fr.Cells = append(fr.Cells, cell)
			}
		}

		footer = append(footer, fr)
	}

	return footer
}

// RenderCSV renders a as a CSV table using github.com/jedib0t/go-pretty/v6/table,
// the same writer internal/analyzers/common/formatter.go uses for plain
// tabular output, configured for CSV rendering instead of a box-drawing
// style.
func RenderCSV(a Assembled) string {
	tw := table.NewWriter()

	tw.AppendHeader(headerRow(a))

	for i, row := range a.Rows {
		tw.AppendRow(bodyRow(a.Filenames[i], a.RunSets, row))
	}

	for _, fr := range a.Footer {
		tw.AppendFooter(footerRow(fr))
	}

	return tw.RenderCSV()
}

// RenderHTML renders a as an HTML table.
func RenderHTML(a Assembled) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)

	tw.AppendHeader(headerRow(a))

	for i, row := range a.Rows {
		tw.AppendRow(bodyRow(a.Filenames[i], a.RunSets, row))
	}

	for _, fr := range a.Footer {
		tw.AppendFooter(footerRow(fr))
	}

	return tw.RenderHTML()
}

func headerRow(a Assembled) table.Row {
	row := table.Row{"filename"}

	for _, rs := range a.RunSets {
		for _, c := range rs.Columns {
			row = append(row, c.DisplayTitleOrDefault())
		}
	}

	return row
}

func bodyRow(filename string, runSets []*task.RunSetResult, row task.Row) table.Row {
	out := table.Row{filename}

	for ri, rs := range runSets {
		var result *task.RunResult
		if ri < len(row.Results) {
			result = row.Results[ri]
		}

		for _, col := range rs.Columns {
			if result == nil {
				out = append(out, "")

				continue
			}

			out = append(out, cellText(col, result.Value(col.Title)))
		}
	}

	return out
}

func footerRow(fr FooterRow) table.Row {
	out := table.Row{fr.Label}

	for _, cell := range fr.Cells {
		out = append(out, footerCellText(cell))
	}

	return out
}

func footerCellText(cell statengine.Cell) string {
	if cell.Blank {
		return ""
	}

	if cell.Count == 0 {
		return ""
	}

	return cell.Stat.Sum.String()
}

// cellText renders one body cell: measurement columns show the
// unit/scale-converted numeric value, every
// other column shows its raw extracted text verbatim.
func cellText(col *column.Column, cell task.Cell) string {
	if col.Type != column.TypeMeasurement {
		return cell.Raw
	}

	converted := col.ConvertValue(cell.Num)
	if col.NumberOfDigits != nil {
		return converted.FormatFixed(*col.NumberOfDigits)
	}

	return converted.String()
}
