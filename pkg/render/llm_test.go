package render

import (
	"strings"
	"testing"

	"github.com/dkoosis/efskip/pkg/pattern"
)

func TestLLM_RenderSkip(t *testing.T) {
	out := NewLLM().Render(skipPatterns())

	if !strings.HasPrefix(out, "SCOPE: FAILED 2/10") {
		t.Errorf("expected SCOPE line first:\n%s", out)
	}
	if !strings.Contains(out, "Passed=8 Failed=2") {
		t.Errorf("expected metrics line:\n%s", out)
	}
	if !strings.Contains(out, "## stRandom (2)") {
		t.Errorf("expected category header:\n%s", out)
	}
	if !strings.Contains(out, "  FAIL randomStatetest2 (RunResources error)") {
		t.Errorf("expected annotated failure:\n%s", out)
	}
	if strings.Contains(out, "\033[") {
		t.Error("LLM output contains ANSI escape codes")
	}
}

func TestLLM_RenderLeaderboard(t *testing.T) {
	out := NewLLM().Render([]pattern.Pattern{&pattern.Leaderboard{
		Label:      "Most steps",
		MetricName: "n_steps",
		TotalCount: 1,
		Items:      []pattern.LeaderboardItem{{Name: "st::a", Metric: "10", Rank: 1}},
	}})
	if !strings.Contains(out, " 1. st::a n_steps=10") {
		t.Errorf("expected leaderboard line:\n%s", out)
	}
	if strings.Contains(out, "top 1 of") {
		t.Errorf("top-N suffix only applies when truncated:\n%s", out)
	}
}
