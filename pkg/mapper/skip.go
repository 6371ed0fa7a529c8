// Package mapper converts analysis results into visualization patterns.
package mapper

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/efskip/pkg/eflog"
	"github.com/dkoosis/efskip/pkg/pattern"
	"github.com/dkoosis/efskip/pkg/skipfile"
)

const (
	statusFail = "fail"
	kindError  = "error"
	kindInfo   = "info"
)

var upper = cases.Upper(language.Und)

// FromSkip converts a run analysis and the skip document built from it into
// patterns: Summary + one TestTable per category.
func FromSkip(a *eflog.Analysis, doc *skipfile.Document, output string) []pattern.Pattern {
	patterns := []pattern.Pattern{skipSummary(a, doc, output)}
	return append(patterns, categoryTables(doc)...)
}

// FromCheck converts a skip document read back from disk into patterns.
func FromCheck(doc *skipfile.Document, path string) []pattern.Pattern {
	exhausted := 0
	for _, c := range doc.Categories {
		for _, e := range c.Entries {
			if e.Exhausted {
				exhausted++
			}
		}
	}
	summary := &pattern.Summary{
		Label: fmt.Sprintf("CHECK %s: %d tests in %d categories", path, doc.Len(), len(doc.Categories)),
		Kind:  pattern.SummaryKindCheck,
		Metrics: []pattern.SummaryItem{
			{Label: "Categories", Value: fmt.Sprintf("%d", len(doc.Categories)), Kind: kindInfo},
			{Label: "Skipped tests", Value: fmt.Sprintf("%d", doc.Len()), Kind: kindInfo},
		},
	}
	if exhausted > 0 {
		summary.Metrics = append(summary.Metrics, pattern.SummaryItem{
			Label: "RunResources errors", Value: fmt.Sprintf("%d", exhausted), Kind: "warning",
		})
	}
	return append([]pattern.Pattern{summary}, categoryTables(doc)...)
}

func skipSummary(a *eflog.Analysis, doc *skipfile.Document, output string) *pattern.Summary {
	s := a.Summary
	result := upper.String(s.Result)

	label := fmt.Sprintf("%s %d/%d tests passed, nothing to skip", result, s.Passed, s.Total())
	if doc.Len() > 0 {
		label = fmt.Sprintf("%s %d/%d tests failed, %d skipped in %d categories",
			result, s.Failed, s.Total(), doc.Len(), len(doc.Categories))
	}
	if output != "" {
		label += " -> " + output
	}

	metrics := []pattern.SummaryItem{
		{Label: "Passed", Value: fmt.Sprintf("%d", s.Passed), Kind: "success"},
	}
	if s.Failed > 0 {
		metrics = append(metrics, pattern.SummaryItem{
			Label: "Failed", Value: fmt.Sprintf("%d", s.Failed), Kind: kindError,
		})
	}
	if s.Ignored > 0 {
		metrics = append(metrics, pattern.SummaryItem{
			Label: "Ignored", Value: fmt.Sprintf("%d", s.Ignored), Kind: "warning",
		})
	}
	if n := a.ExhaustedFailures(); n > 0 {
		metrics = append(metrics, pattern.SummaryItem{
			Label: "RunResources errors", Value: fmt.Sprintf("%d", n), Kind: "warning",
		})
	}
	metrics = append(metrics, pattern.SummaryItem{
		Label: "Categories", Value: fmt.Sprintf("%d", len(doc.Categories)), Kind: kindInfo,
	})

	return &pattern.Summary{
		Label:   label,
		Kind:    pattern.SummaryKindSkip,
		Metrics: metrics,
	}
}

func categoryTables(doc *skipfile.Document) []pattern.Pattern {
	tables := make([]pattern.Pattern, 0, len(doc.Categories))
	for _, c := range doc.Categories {
		items := make([]pattern.TestTableItem, 0, len(c.Entries))
		for _, e := range c.Entries {
			item := pattern.TestTableItem{Name: e.Test, Status: statusFail}
			if e.Exhausted {
				item.Details = "RunResources error"
			}
			items = append(items, item)
		}
		tables = append(tables, &pattern.TestTable{
			Label:   fmt.Sprintf("%s (%d)", c.Name, len(c.Entries)),
			Results: items,
		})
	}
	return tables
}
