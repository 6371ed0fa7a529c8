package eflog

import (
	"regexp"
	"strconv"
)

// Matches "test result: FAILED. 12 passed; 3 failed; 1 ignored"
var summaryRe = regexp.MustCompile(`test result: (\w+)\. (\d+) passed; (\d+) failed; (\d+) ignored`)

// ParseSummary parses the first "test result:" line in text.
// Later summary lines are ignored.
func ParseSummary(text string) (Summary, error) {
	m := summaryRe.FindStringSubmatch(text)
	if m == nil {
		return Summary{}, ErrMissingSummary
	}
	// The pattern only admits digit runs; Atoi fails on overflow alone.
	passed, err := strconv.Atoi(m[2])
	if err != nil {
		return Summary{}, err
	}
	failed, err := strconv.Atoi(m[3])
	if err != nil {
		return Summary{}, err
	}
	ignored, err := strconv.Atoi(m[4])
	if err != nil {
		return Summary{}, err
	}
	return Summary{Result: m[1], Passed: passed, Failed: failed, Ignored: ignored}, nil
}
