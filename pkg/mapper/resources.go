package mapper

import (
	"fmt"

	"github.com/dkoosis/efskip/pkg/eflog"
	"github.com/dkoosis/efskip/pkg/pattern"
	"github.com/dkoosis/efskip/pkg/resources"
)

// StepsMetric is the resource the leaderboard ranks tests by.
const StepsMetric = "n_steps"

const leaderboardSize = 10

// FromResources converts parsed resource usages into patterns: Summary +
// a leaderboard of the most expensive tests by StepsMetric.
func FromResources(usages []eflog.ResourceUsage, output string) []pattern.Pattern {
	cols := resources.Columns(usages)
	label := fmt.Sprintf("RESOURCES %d tests, %d metrics", len(usages), len(cols)-1)
	if output != "" {
		label += " -> " + output
	}
	patterns := []pattern.Pattern{&pattern.Summary{
		Label: label,
		Kind:  pattern.SummaryKindResources,
		Metrics: []pattern.SummaryItem{
			{Label: "Tests", Value: fmt.Sprintf("%d", len(usages)), Kind: kindInfo},
			{Label: "Metrics", Value: fmt.Sprintf("%d", len(cols)-1), Kind: kindInfo},
		},
	}}

	ranked := resources.Top(usages, StepsMetric, -1)
	if len(ranked) == 0 {
		return patterns
	}
	total := len(ranked)
	if total > leaderboardSize {
		ranked = ranked[:leaderboardSize]
	}
	items := make([]pattern.LeaderboardItem, 0, len(ranked))
	for i, r := range ranked {
		items = append(items, pattern.LeaderboardItem{
			Name:   r.Test,
			Metric: fmt.Sprintf("%d", r.Value),
			Rank:   i + 1,
		})
	}
	return append(patterns, &pattern.Leaderboard{
		Label:      "Most steps",
		MetricName: StepsMetric,
		Items:      items,
		TotalCount: total,
	})
}
