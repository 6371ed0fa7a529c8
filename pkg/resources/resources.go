// Package resources writes per-test resource usage as a CSV report.
package resources

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"github.com/dkoosis/efskip/pkg/eflog"
)

// TestColumn is always the first column of the report.
const TestColumn = "test"

// Columns returns the report header: TestColumn, then every metric name seen
// in usages, sorted.
func Columns(usages []eflog.ResourceUsage) []string {
	seen := make(map[string]struct{})
	for _, u := range usages {
		for k := range u.Metrics {
			if k != TestColumn {
				seen[k] = struct{}{}
			}
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return append([]string{TestColumn}, keys...)
}

// WriteCSV writes a header and one row per usage. Metrics a test did not
// report are left empty. Rows end in CRLF like the spreadsheets consuming
// them expect.
func WriteCSV(w io.Writer, usages []eflog.ResourceUsage) error {
	cols := Columns(usages)
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(cols); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	row := make([]string, len(cols))
	for _, u := range usages {
		row[0] = u.Test
		for i, c := range cols[1:] {
			row[i+1] = u.Metrics[c].String()
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %s: %w", u.Test, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Ranked is a test and one of its metric values.
type Ranked struct {
	Test  string
	Value int64
}

// Top returns the n tests with the highest value of metric, highest first.
// Tests without the metric, or with a non-integer value, are left out.
func Top(usages []eflog.ResourceUsage, metric string, n int) []Ranked {
	ranked := make([]Ranked, 0, len(usages))
	for _, u := range usages {
		num, ok := u.Metrics[metric]
		if !ok {
			continue
		}
		v, err := num.Int64()
		if err != nil {
			continue
		}
		ranked = append(ranked, Ranked{Test: u.Test, Value: v})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value > ranked[j].Value
	})
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
