// Package eflog extracts failures, run summaries and resource metrics from
// the console output of the Ethereum Foundation test harness (cargo test).
package eflog

import (
	"encoding/json"

	mapset "github.com/deckarep/golang-set/v2"
)

// PathSeparator separates segments of a qualified test path, e.g.
// "ef_testing::stRandom::test_randomStatetest1".
const PathSeparator = "::"

// Failure is one failing test taken from a panic-trace line.
type Failure struct {
	Category string // containing module (folder) of the test
	Test     string // test function name, unescaped
}

// Summary is the harness tally from the "test result:" line.
type Summary struct {
	Result  string // "ok" or "FAILED"
	Passed  int
	Failed  int
	Ignored int
}

// Total returns the number of tests the harness accounted for.
func (s Summary) Total() int {
	return s.Passed + s.Failed + s.Ignored
}

// Analysis is everything the skip file needs from one log.
type Analysis struct {
	Summary  Summary
	Failures []Failure
	// Exhausted holds prefix-stripped names of tests that ran out of
	// execution steps.
	Exhausted mapset.Set[string]
}

// ResourceUsage is the resource mapping reported for one passing test.
type ResourceUsage struct {
	Test    string
	Metrics map[string]json.Number
}
