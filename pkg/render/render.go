// Package render provides output renderers for efskip's report patterns.
package render

import "github.com/dkoosis/efskip/pkg/pattern"

// Renderer converts patterns to formatted output.
type Renderer interface {
	Render(patterns []pattern.Pattern) string
}

const (
	statusFail = "fail"
	statusSkip = "skip"
)
