package pattern

// SummaryKind identifies which command produced a summary.
type SummaryKind string

const (
	SummaryKindSkip      SummaryKind = "skip"
	SummaryKindResources SummaryKind = "resources"
	SummaryKindCheck     SummaryKind = "check"
)

// Summary represents high-level metrics and counts.
type Summary struct {
	Label   string        `json:"label"`
	Kind    SummaryKind   `json:"kind"`
	Metrics []SummaryItem `json:"metrics"`
}

// SummaryItem is a single metric in a summary.
type SummaryItem struct {
	Label string `json:"label"` // e.g. "Failed", "Categories"
	Value string `json:"value"` // formatted value
	Kind  string `json:"kind"`  // "success", "error", "warning", "info"; affects coloring
}

func (s *Summary) Type() PatternType { return PatternTypeSummary }
