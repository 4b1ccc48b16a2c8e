// Package resultxml implements the result-file reader: decoding a local
// or remote result archive (plain, gzip, or bzip2 XML),
// validating its root element, and computing each run's log-file locator.
//
// Grounded on pkg/persist/codec.go's codec/IO-separation style (a Decode
// step that is a pure function of an io.Reader) and
// internal/analyzers/analyze/report_store_file.go's file-path resolution
// conventions; the compression/format stack (encoding/xml, compress/gzip,
// compress/bzip2) is stdlib because no third-party library for any of the
// three appears anywhere in the retrieval pack (see DESIGN.md).
package resultxml

import "encoding/xml"

// XMLColumn is a <column title="..." value="..."/> child of a run or of the
// result root.
type XMLColumn struct {
	Title string `xml:"title,attr"`
	Value string `xml:"value,attr"`
}

// XMLRun is a <run>/<sourcefile> element: one benchmarked
// input within a result file.
type XMLRun struct {
	Name       string      `xml:"name,attr"`
	Files      string      `xml:"files,attr"`
	Properties string      `xml:"properties,attr"`
	Logfile    string      `xml:"logfile,attr"`
	Runset     string      `xml:"runset,attr"`
	Status     string      `xml:"status,attr"`
	Columns    []XMLColumn `xml:"column"`
}

// XMLSystemInfo is the <systeminfo> child describing the host that produced
// a run set.
type XMLSystemInfo struct {
	OS struct {
		Name string `xml:"name,attr"`
	} `xml:"os"`
	CPU struct {
		Model     string `xml:"model,attr"`
		Cores     string `xml:"cores,attr"`
		Frequency string `xml:"frequency,attr"`
	} `xml:"cpu"`
	RAM struct {
		Size string `xml:"size,attr"`
	} `xml:"ram"`
	Hostname string `xml:"hostname,attr"`
}

// XMLResult is the parsed root element of a result file: either <result> or
// <test>. Both tags share this shape in every real-world
// document this reader has to accept.
type XMLResult struct {
	XMLName       xml.Name
	Tool          string         `xml:"tool,attr"`
	Version       string         `xml:"version,attr"`
	Date          string         `xml:"date,attr"`
	Benchmarkname string         `xml:"benchmarkname,attr"`
	Name          string         `xml:"name,attr"`
	Options       string         `xml:"options,attr"`
	Timelimit     string         `xml:"timelimit,attr"`
	Memlimit      string         `xml:"memlimit,attr"`
	CPUCores      string         `xml:"cpuCores,attr"`
	Block         string         `xml:"block,attr"`
	Error         string         `xml:"error,attr"`
	ToolModule    string         `xml:"toolmodule,attr"`
	SystemInfo    *XMLSystemInfo `xml:"systeminfo"`
	Columns       []XMLColumn    `xml:"column"`
	Runs          []XMLRun       `xml:"run"`
	SourceFiles   []XMLRun       `xml:"sourcefile"`
}

// AllRuns returns the result's run children followed by its sourcefile
// children.
func (r *XMLResult) AllRuns() []XMLRun {
	if len(r.SourceFiles) == 0 {
		return r.Runs
	}

	if len(r.Runs) == 0 {
		return r.SourceFiles
	}

	combined := make([]XMLRun, 0, len(r.Runs)+len(r.SourceFiles))
	combined = append(combined, r.Runs...)
	combined = append(combined, r.SourceFiles...)

	return combined
}

// validRootNames are the only root tag names this reader accepts.
var validRootNames = map[string]bool{"result": true, "test": true}

// IsValidRoot reports whether the parsed document's root tag is one
// this reader accepts.
func (r *XMLResult) IsValidRoot() bool {
	return validRootNames[r.XMLName.Local]
}
