package eflog

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

const (
	// ExhaustionMarker is logged when a transaction runs out of Cairo steps.
	ExhaustionMarker = "RunResources has no remaining steps."
	// RevertMarker follows the test name on the line announcing a revert.
	RevertMarker = "reverted:"

	// RevertOffset is how many lines before ExhaustionMarker the harness
	// prints the revert notice of the same test. It is fixed by the layout of
	// the harness's per-test log block.
	RevertOffset = 7
	// LookbackWindow is the number of lines kept while scanning, the current
	// line included.
	LookbackWindow = RevertOffset + 1
)

// lineRing keeps the most recent lines of a scan.
type lineRing struct {
	lines []string
	next  int
	count int
}

func newLineRing(size int) *lineRing {
	return &lineRing{lines: make([]string, size)}
}

func (r *lineRing) push(line string) {
	r.lines[r.next] = line
	r.next = (r.next + 1) % len(r.lines)
	if r.count < len(r.lines) {
		r.count++
	}
}

func (r *lineRing) full() bool {
	return r.count == len(r.lines)
}

// oldest returns the line len(lines)-1 positions before the newest one.
// Only meaningful when the ring is full.
func (r *lineRing) oldest() string {
	return r.lines[r.next]
}

// ClassifyExhaustion scans text for tests that failed because they exhausted
// their step budget. A test qualifies when its revert notice sits exactly
// RevertOffset lines above an ExhaustionMarker line. Markers closer than that
// to the start of the log are skipped.
//
// Returned names are normalized with NormalizeRevertName.
func ClassifyExhaustion(text string) mapset.Set[string] {
	found := mapset.NewSet[string]()
	ring := newLineRing(LookbackWindow)

	for line := range strings.Lines(text) {
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		ring.push(line)
		if !strings.Contains(line, ExhaustionMarker) || !ring.full() {
			continue
		}
		if name, ok := revertedTest(ring.oldest()); ok {
			found.Add(name)
		}
	}
	return found
}

// revertedTest extracts the test name from a line like
// "ERROR ef_testing::models::result: stExample::randomTest_d0g0v0_Cancun reverted:".
func revertedTest(line string) (string, bool) {
	idx := strings.Index(line, RevertMarker)
	if idx < 0 {
		return "", false
	}
	head := line[:idx]
	if i := strings.LastIndex(head, PathSeparator); i >= 0 {
		head = head[i+len(PathSeparator):]
	}
	name := strings.TrimSpace(head)
	if name == "" {
		return "", false
	}
	return NormalizeRevertName(name, strings.Contains(line, ".py")), true
}
