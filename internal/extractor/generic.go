package extractor

import "regexp"

// GenericExtractor is the built-in LogValueExtractor used when a benchmark
// tool has no dedicated extractor: pattern is compiled as a regular
// expression and matched against each line in order. If the regexp has a
// capture group, the first group's text is returned; otherwise the whole
// match is returned. Returns (_, false) for an empty/invalid pattern, an
// empty line set, or no match in any line.
type GenericExtractor struct{}

// Extract implements LogValueExtractor.
func (GenericExtractor) Extract(lines []string, pattern string) (string, bool) {
	if pattern == "" {
		return "", false
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", false
	}

	for _, line := range lines {
		match := re.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		if len(match) > 1 {
			return match[1], true
		}

		return match[0], true
	}

	return "", false
}
