package render

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/dkoosis/efskip/pkg/pattern"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// schemaVersion changes when the JSON layout does.
const schemaVersion = "1.0"

// JSON renders patterns as structured JSON for automation:
//
//	{"version": "1.0", "patterns": [{"type": "summary", "data": {...}}, ...]}
type JSON struct{}

// NewJSON creates a JSON renderer.
func NewJSON() *JSON {
	return &JSON{}
}

type typedPattern struct {
	Type pattern.PatternType `json:"type"`
	Data pattern.Pattern     `json:"data"`
}

// Render formats all patterns as one indented JSON document.
func (j *JSON) Render(patterns []pattern.Pattern) string {
	typed := make([]typedPattern, len(patterns))
	for i, p := range patterns {
		typed[i] = typedPattern{Type: p.Type(), Data: p}
	}

	data, err := json.MarshalIndent(map[string]any{
		"version":  schemaVersion,
		"patterns": typed,
	}, "", "  ")
	if err != nil {
		data, _ = json.Marshal(map[string]string{"version": schemaVersion, "error": err.Error()})
	}
	return string(data) + "\n"
}
