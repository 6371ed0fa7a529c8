// Package skipfile builds and reads the YAML skip list that excludes known
// failing tests from the next run of the harness.
package skipfile

import (
	"io"
	"sort"
	"strings"

	"github.com/dkoosis/efskip/pkg/eflog"
)

const (
	// TopKey is the single top-level key of a skip file.
	TopKey = "testname"
	// ExhaustedComment marks tests that failed by exhausting their step budget.
	ExhaustedComment = "#RunResources error"

	categoryIndent = "  "
	entryIndent    = "      "
)

// Document is a skip list grouped by category. Categories keep the order in
// which they first failed; entries are sorted.
type Document struct {
	Categories []Category
}

// Category is one test folder and the tests to skip in it.
type Category struct {
	Name    string
	Entries []Entry
}

// Entry is one skipped test, without its function prefix.
type Entry struct {
	Test      string
	Exhausted bool
}

// Build groups the failures of an analysis into a skip document.
func Build(a *eflog.Analysis) *Document {
	var order []string
	names := make(map[string]map[string]struct{})
	for _, f := range a.Failures {
		set, ok := names[f.Category]
		if !ok {
			set = make(map[string]struct{})
			names[f.Category] = set
			order = append(order, f.Category)
		}
		set[eflog.StripPrefix(f.Test)] = struct{}{}
	}

	doc := &Document{Categories: make([]Category, 0, len(order))}
	for _, cat := range order {
		tests := make([]string, 0, len(names[cat]))
		for name := range names[cat] {
			tests = append(tests, name)
		}
		sort.Strings(tests)

		entries := make([]Entry, 0, len(tests))
		for _, name := range tests {
			entries = append(entries, Entry{
				Test:      name,
				Exhausted: a.Exhausted != nil && a.Exhausted.Contains(name),
			})
		}
		doc.Categories = append(doc.Categories, Category{Name: cat, Entries: entries})
	}
	return doc
}

// Len returns the number of entries across all categories.
func (d *Document) Len() int {
	n := 0
	for _, c := range d.Categories {
		n += len(c.Entries)
	}
	return n
}

// Bytes returns the serialized document.
func (d *Document) Bytes() []byte {
	return []byte(d.String())
}

// String renders the document in skip file layout:
//
//	testname:
//	  stRandom:
//	      - randomStatetest1
//	      - randomStatetest2  #RunResources error
func (d *Document) String() string {
	var sb strings.Builder
	sb.WriteString(TopKey + ":\n")
	for _, c := range d.Categories {
		sb.WriteString(categoryIndent + c.Name + ":\n")
		for _, e := range c.Entries {
			sb.WriteString(entryIndent + "- " + e.Test)
			if e.Exhausted {
				sb.WriteString("  " + ExhaustedComment)
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// WriteTo writes the serialized document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.String())
	return int64(n), err
}
