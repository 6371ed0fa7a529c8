package eflog

// Analyze runs the full extraction over a harness log: summary, panicked
// tests, the count cross-check, and exhaustion classification. It fails
// without partial results when the summary is missing or the counts differ.
func Analyze(text string) (*Analysis, error) {
	summary, err := ParseSummary(text)
	if err != nil {
		return nil, err
	}
	failures, err := ExtractFailures(text)
	if err != nil {
		return nil, err
	}
	if len(failures) != summary.Failed {
		return nil, &ConsistencyError{Extracted: len(failures), Reported: summary.Failed}
	}
	return &Analysis{
		Summary:   summary,
		Failures:  failures,
		Exhausted: ClassifyExhaustion(text),
	}, nil
}

// Categories returns the number of distinct failure categories.
func (a *Analysis) Categories() int {
	seen := make(map[string]struct{}, len(a.Failures))
	for _, f := range a.Failures {
		seen[f.Category] = struct{}{}
	}
	return len(seen)
}

// ExhaustedFailures counts failures whose stripped name is in Exhausted.
func (a *Analysis) ExhaustedFailures() int {
	if a.Exhausted == nil {
		return 0
	}
	n := 0
	for _, f := range a.Failures {
		if a.Exhausted.Contains(StripPrefix(f.Test)) {
			n++
		}
	}
	return n
}
