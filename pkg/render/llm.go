package render

import (
	"fmt"
	"strings"

	"github.com/dkoosis/efskip/pkg/pattern"
)

// LLM renders patterns as terse plain text for logs and AI consumption.
// Zero ANSI codes, a leading SCOPE line, one line per test.
type LLM struct{}

// NewLLM creates an LLM renderer.
func NewLLM() *LLM {
	return &LLM{}
}

// Render formats all patterns as plain text.
func (l *LLM) Render(patterns []pattern.Pattern) string {
	var sb strings.Builder
	for _, p := range patterns {
		switch v := p.(type) {
		case *pattern.Summary:
			l.renderSummary(&sb, v)
		case *pattern.TestTable:
			l.renderTestTable(&sb, v)
		case *pattern.Leaderboard:
			l.renderLeaderboard(&sb, v)
		}
	}
	return sb.String()
}

func (l *LLM) renderSummary(sb *strings.Builder, s *pattern.Summary) {
	sb.WriteString("SCOPE: " + s.Label + "\n")
	if len(s.Metrics) == 0 {
		return
	}
	parts := make([]string, 0, len(s.Metrics))
	for _, m := range s.Metrics {
		parts = append(parts, m.Label+"="+m.Value)
	}
	sb.WriteString(strings.Join(parts, " ") + "\n")
}

func (l *LLM) renderTestTable(sb *strings.Builder, t *pattern.TestTable) {
	if len(t.Results) == 0 {
		return
	}
	sb.WriteString("\n## " + t.Label + "\n")
	for _, item := range t.Results {
		prefix := "  PASS"
		switch item.Status {
		case statusFail:
			prefix = "  FAIL"
		case statusSkip:
			prefix = "  SKIP"
		}
		sb.WriteString(prefix + " " + item.Name)
		if item.Details != "" {
			sb.WriteString(" (" + item.Details + ")")
		}
		sb.WriteString("\n")
	}
}

func (l *LLM) renderLeaderboard(sb *strings.Builder, lb *pattern.Leaderboard) {
	if len(lb.Items) == 0 {
		return
	}
	header := lb.Label
	if lb.TotalCount > len(lb.Items) {
		header += fmt.Sprintf(" (top %d of %d)", len(lb.Items), lb.TotalCount)
	}
	sb.WriteString("\n## " + header + "\n")
	for _, item := range lb.Items {
		sb.WriteString(fmt.Sprintf("  %2d. %s %s=%s\n", item.Rank, item.Name, lb.MetricName, item.Metric))
	}
}
