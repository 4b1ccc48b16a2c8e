package resultxml

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// ErrSkipped is returned by Load when the document declares a top-level
// error and the caller passed IgnoreErrors: "a result with
// an error attribute is skipped rather than failing the whole run, when the
// caller opts in."
var ErrSkipped = errors.New("resultxml: result skipped (ignore-errors)")

// LoadOptions configures Load.
type LoadOptions struct {
	// RunsetID is stamped onto every run that doesn't already carry one.
	RunsetID string
	// IgnoreErrors turns a document-level error attribute into ErrSkipped
	// instead of a hard failure.
	IgnoreErrors bool
}

// Open returns the raw bytes of a result file, whether it names a local path
// or an http(s) URL. The full byte slice is read upfront because Decode must
// try multiple decompressors against the same bytes.
func Open(location string) ([]byte, error) {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return openURL(location)
	}

	return openFile(location)
}

func openFile(pathName string) ([]byte, error) {
	raw, err := os.ReadFile(pathName)
	if err != nil {
		return nil, fmt.Errorf("resultxml: open %s: %w", pathName, err)
	}

	return raw, nil
}

func openURL(url string) ([]byte, error) {
	resp, err := http.Get(url) //nolint:gosec,noctx // caller-supplied result location, fetched at most once per file
	if err != nil {
		return nil, fmt.Errorf("resultxml: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("resultxml: fetch %s: status %s", url, resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("resultxml: read %s: %w", url, err)
	}

	return raw, nil
}

// Load opens, decodes, validates, and post-processes a result file in one
// step: the usual path for every caller except tests exercising Decode in
// isolation.
func Load(location string, opts LoadOptions) (*XMLResult, error) {
	raw, err := Open(location)
	if err != nil {
		return nil, err
	}

	result, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("resultxml: %s: %w", location, err)
	}

	if result.Error != "" {
		if opts.IgnoreErrors {
			return nil, ErrSkipped
		}

		return nil, fmt.Errorf("resultxml: %s: result reports error %q", location, result.Error)
	}

	result.AssignRunsetID(opts.RunsetID)

	return result, nil
}
