package aggregate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/benchtable/tablegen/internal/table"
)

// EmitOptions configures how Emit names and writes rendered tables
//.
type EmitOptions struct {
	// OutputPath is a directory, or "-" to write every file to Writer
	// instead of disk.
	OutputPath string
	// Name is the output base name (-n/--name).
	Name string
	// Formats is the requested render formats, e.g. {"html", "csv"}.
	Formats []string
	// SingleInputFile is true when the run was given exactly one result
	// file, collapsing "{name}.table.{ext}" to "{name}.{ext}".
	SingleInputFile bool
	// Writer receives output when OutputPath is "-".
	Writer io.Writer
}

var extensions = map[string]string{"html": "html", "csv": "csv"}

// Emit writes result.Table (and result.Diff, unless NoDiff left it empty)
// in every requested format: one file per (kind, format)
// named "{name}.{kind}.{ext}", or "{name}.{ext}" when only one result file
// was given and kind is "table".
func Emit(result *Result, opts EmitOptions) error {
	kinds := []struct {
		name string
		t    table.Assembled
	}{
		{"table", result.Table},
	}

	if len(result.DiffRaw.Rows) > 0 {
		kinds = append(kinds, struct {
			name string
			t    table.Assembled
		}{"diff", result.Diff})
	}

	for _, k := range kinds {
		for _, format := range opts.Formats {
			ext, ok := extensions[format]
			if !ok {
				return fmt.Errorf("aggregate: unknown format %q", format)
			}

			body := render(k.t, format)

			if err := write(opts, k.name, ext, body); err != nil {
				return err
			}
		}
	}

	return nil
}

func render(a table.Assembled, format string) string {
	if format == "html" {
		return table.RenderHTML(a)
	}

	return table.RenderCSV(a)
}

func write(opts EmitOptions, kind, ext, body string) error {
	if opts.OutputPath == "-" {
		_, err := io.WriteString(opts.Writer, body)

		return err
	}

	name := opts.Name + "." + kind + "." + ext
	if opts.SingleInputFile && kind == "table" {
		name = opts.Name + "." + ext
	}

	path := filepath.Join(opts.OutputPath, name)

	return os.WriteFile(path, []byte(body), 0o644) //nolint:gosec // table output is not sensitive
}
