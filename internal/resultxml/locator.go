package resultxml

import (
	"path"
	"strings"
)

// LogLocator identifies where a single run's console log text lives inside
// (or alongside) a result archive: either the explicit
// logfile attribute resolved relative to the result file, or the derived
// path "<result-stem>.logfiles/[<runset>.]<task-basename>.log".
type LogLocator struct {
	// Path is relative to the result file's directory (for local results) or
	// the result file's URL (for remote ones); resolution is the caller's
	// job since it differs between a plain file and a zip-backed archive.
	Path string
}

// ResultStem strips a trailing .xml, .xml.gz, or .xml.bz2 extension from a
// result file name, giving the prefix that log-archive paths are derived
// from.
func ResultStem(resultFileName string) string {
	base := resultFileName

	for _, suffix := range []string{".xml.bz2", ".xml.gz", ".xml"} {
		if strings.HasSuffix(base, suffix) {
			return strings.TrimSuffix(base, suffix)
		}
	}

	return base
}

// Locate computes the LogLocator for one run. resultFileName is the result
// file's base name (not a full path); runsetID is the run-set id assigned to
// the whole result (may be empty.
func Locate(resultFileName string, run XMLRun, runsetID string) LogLocator {
	if run.Logfile != "" {
		return LogLocator{Path: run.Logfile}
	}

	stem := ResultStem(resultFileName)
	taskBase := path.Base(run.Name)

	var logName string
	if runsetID != "" {
		logName = runsetID + "." + taskBase + ".log"
	} else {
		logName = taskBase + ".log"
	}

	return LogLocator{Path: stem + ".logfiles/" + logName}
}

// AssignRunsetID stamps every run and sourcefile child with the run-set id
// the caller assigned to this whole result file. A run's own pre-existing
// Runset attribute, if present in the document, is left untouched: some tools
// emit it per-run for their own provenance, and nothing here overwrites
// data the document itself supplied.
func (r *XMLResult) AssignRunsetID(runsetID string) {
	for i := range r.Runs {
		if r.Runs[i].Runset == "" {
			r.Runs[i].Runset = runsetID
		}
	}

	for i := range r.SourceFiles {
		if r.SourceFiles[i].Runset == "" {
			r.SourceFiles[i].Runset = runsetID
		}
	}
}
