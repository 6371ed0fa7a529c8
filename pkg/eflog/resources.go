package eflog

import (
	"encoding/json"
	"fmt"
	"regexp"

	jsoniter "github.com/json-iterator/go"
)

var (
	// Matches CSI escape sequences such as "\x1b[2m" or "\x1b[0;32m".
	ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)
	// Matches "ef_testing::models::result: stX::test_a passed: ResourcesMapping({"n_steps": 10})"
	resourcesRe = regexp.MustCompile(`ef_testing::models::result: (.*) passed: .?ResourcesMapping\((.*)\)`)
)

// numberJSON decodes resource values without losing integer precision.
var numberJSON = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// StripANSI removes terminal color sequences from text.
func StripANSI(text string) string {
	return ansiRe.ReplaceAllString(text, "")
}

// ParseResources returns the resource mapping of every passing test that
// reported one, in log order. Color sequences are stripped first.
func ParseResources(text string) ([]ResourceUsage, error) {
	matches := resourcesRe.FindAllStringSubmatch(StripANSI(text), -1)
	usages := make([]ResourceUsage, 0, len(matches))
	for _, m := range matches {
		metrics := make(map[string]json.Number)
		if err := numberJSON.UnmarshalFromString(m[2], &metrics); err != nil {
			return nil, fmt.Errorf("decoding resources of %s: %w", m[1], err)
		}
		usages = append(usages, ResourceUsage{Test: m[1], Metrics: metrics})
	}
	return usages, nil
}
