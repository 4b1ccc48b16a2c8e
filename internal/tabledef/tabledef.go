// Package tabledef implements the table-definition loader of 
// (C11): parsing the optional <table> XML document that names result files,
// unions, and column overrides, and resolving result filename-globs to
// actual files.
//
// Grounded on pkg/config/config.go's mapstructure-driven loader style
// (parse once into a typed tree, validate, then hand components to their
// owning package) and using github.com/bmatcuk/doublestar/v4 for glob
// resolution, the way standardbeagle-lci's manifest loader does.
package tabledef

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/shopspring/decimal"

	"github.com/benchtable/tablegen/internal/column"
)

// ErrInvalidRoot is returned when the definition document's root tag isn't
// "table".
var ErrInvalidRoot = fmt.Errorf("tabledef: root element must be <table>")

// XMLColumnDef is a <column> element, valid at the table root or nested
// inside <result>/<union>.
type XMLColumnDef struct {
	Title           string `xml:"title,attr"`
	Pattern         string `xml:",chardata"`
	NumberOfDigits  *int32 `xml:"numberOfDigits,attr"`
	Href            string `xml:"href,attr"`
	DisplayUnit     string `xml:"displayUnit,attr"`
	SourceUnit      string `xml:"sourceUnit,attr"`
	ScaleFactor     string `xml:"scaleFactor,attr"`
	RelevantForDiff string `xml:"relevantForDiff,attr"`
	DisplayTitle    string `xml:"displayTitle,attr"`
}

// XMLResultDef is a <result> element: a filename glob plus column
// overrides.
type XMLResultDef struct {
	Filename string         `xml:"filename,attr"`
	Title    string         `xml:"title,attr"`
	Columns  []XMLColumnDef `xml:"column"`
}

// XMLUnionDef is a <union> element: several <result> children aggregated
// into one synthetic run set.
type XMLUnionDef struct {
	Title   string         `xml:"title,attr"`
	Name    string         `xml:"name,attr"`
	Results []XMLResultDef `xml:"result"`
	Columns []XMLColumnDef `xml:"column"`
}

// XMLTable is the parsed root of a table-definition document.
type XMLTable struct {
	XMLName xml.Name       `xml:"table"`
	Columns []XMLColumnDef `xml:"column"`
	Results []XMLResultDef `xml:"result"`
	Unions  []XMLUnionDef  `xml:"union"`
}

// Parse decodes and validates a table-definition document.
func Parse(raw []byte) (*XMLTable, error) {
	var t XMLTable

	if err := xml.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("tabledef: %w", err)
	}

	if t.XMLName.Local != "table" {
		return nil, ErrInvalidRoot
	}

	return &t, nil
}

// Load reads and parses the table-definition file at path.
func Load(path string) (*XMLTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tabledef: open %s: %w", path, err)
	}

	return Parse(raw)
}

// ToColumnDef converts a parsed XMLColumnDef into a column.Column, leaving
// type inference (column.Finalize) to the caller once sample values are
// available.
func ToColumnDef(d XMLColumnDef) (*column.Column, error) {
	c := &column.Column{
		Title:           d.Title,
		DisplayTitle:    d.DisplayTitle,
		Pattern:         d.Pattern,
		Href:            d.Href,
		DisplayUnit:     d.DisplayUnit,
		SourceUnit:      d.SourceUnit,
		NumberOfDigits:  d.NumberOfDigits,
		RelevantForDiff: d.RelevantForDiff == "true",
	}

	if d.ScaleFactor != "" {
		f, err := parseScaleFactor(d.ScaleFactor)
		if err != nil {
			return nil, fmt.Errorf("tabledef: column %q: %w", d.Title, err)
		}

		c.ScaleFactor = &f
	}

	return c, nil
}

// ResolveGlob expands filename (possibly a doublestar glob) relative to
// baseDir, the directory containing the table-definition file.
func ResolveGlob(baseDir, filename string) ([]string, error) {
	pattern := filename
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(baseDir, pattern)
	}

	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("tabledef: glob %q: %w", filename, err)
	}

	return matches, nil
}

// ResolveHref resolves an href attribute relative to the definition file's
// directory, unless it is already an absolute URL.
func ResolveHref(baseDir, href string) string {
	if href == "" {
		return ""
	}

	if isAbsoluteURL(href) {
		return href
	}

	if filepath.IsAbs(href) {
		return href
	}

	return filepath.Join(baseDir, href)
}

func isAbsoluteURL(s string) bool {
	return strings.Contains(s, "://")
}

func parseScaleFactor(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid scaleFactor %q: %w", raw, err)
	}

	return d, nil
}
