package eflog

import (
	"regexp"
	"strings"
)

// Matches "thread 'ef_testing::stExample::test_add' panicked at crates/..."
var panicRe = regexp.MustCompile(`thread '(.*)' panicked at`)

// ExtractFailures returns one Failure per panic-trace line, in log order.
// Category and test name are unescaped.
func ExtractFailures(text string) ([]Failure, error) {
	matches := panicRe.FindAllStringSubmatch(text, -1)
	failures := make([]Failure, 0, len(matches))
	for _, m := range matches {
		f, err := splitQualified(m[1])
		if err != nil {
			return nil, err
		}
		failures = append(failures, f)
	}
	return failures, nil
}

// splitQualified takes the last two segments of a "::"-separated path.
func splitQualified(path string) (Failure, error) {
	parts := strings.Split(path, PathSeparator)
	if len(parts) < 2 {
		return Failure{}, &PathError{Path: path}
	}
	return Failure{
		Category: Unescape(parts[len(parts)-2]),
		Test:     Unescape(parts[len(parts)-1]),
	}, nil
}
