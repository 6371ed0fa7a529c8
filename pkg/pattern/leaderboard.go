package pattern

// Leaderboard represents a ranked list of items by metric.
type Leaderboard struct {
	Label      string            `json:"label"`
	MetricName string            `json:"metric_name"` // e.g. "n_steps"
	Items      []LeaderboardItem `json:"items"`
	TotalCount int               `json:"total_count"` // total before filtering to top N
}

// LeaderboardItem is a single ranked entry.
type LeaderboardItem struct {
	Name   string `json:"name"`
	Metric string `json:"metric"` // formatted value
	Rank   int    `json:"rank"`
}

func (l *Leaderboard) Type() PatternType { return PatternTypeLeaderboard }
