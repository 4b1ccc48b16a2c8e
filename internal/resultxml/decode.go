package resultxml

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// ErrCorruptResultFile is returned when none of the three decoders can
// produce a validly-rooted XML document.
var ErrCorruptResultFile = errors.New("resultxml: corrupt result file")

// Decode tries, in order, gzip, bzip2, and plain XML decoding of raw,
// rewinding (conceptually — each attempt gets its own fresh reader over the
// same byte slice) on failure: "detection is by try-parse,
// not by extension." The first attempt that produces a well-formed XML
// document with a recognized root tag wins.
func Decode(raw []byte) (*XMLResult, error) {
	decoders := []func([]byte) ([]byte, error){
		decompressGzip,
		decompressBzip2,
		func(b []byte) ([]byte, error) { return b, nil },
	}

	for _, decompress := range decoders {
		plain, err := decompress(raw)
		if err != nil {
			continue
		}

		result, err := parseXML(plain)
		if err != nil {
			continue
		}

		if !result.IsValidRoot() {
			continue
		}

		return result, nil
	}

	return nil, fmt.Errorf("%w: no decoder produced a valid <result>/<test> root", ErrCorruptResultFile)
}

func decompressGzip(raw []byte) ([]byte, error) {
	gr, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("gzip: %w", err)
	}
	defer gr.Close()

	out, err := io.ReadAll(gr)
	if err != nil {
		return nil, fmt.Errorf("gzip read: %w", err)
	}

	return out, nil
}

func decompressBzip2(raw []byte) ([]byte, error) {
	out, err := io.ReadAll(bzip2.NewReader(bytes.NewReader(raw)))
	if err != nil {
		return nil, fmt.Errorf("bzip2 read: %w", err)
	}

	return out, nil
}

func parseXML(data []byte) (*XMLResult, error) {
	var result XMLResult

	err := xml.Unmarshal(data, &result)
	if err != nil {
		return nil, fmt.Errorf("xml unmarshal: %w", err)
	}

	return &result, nil
}
