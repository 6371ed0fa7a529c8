package skipfile_test

import (
	"bytes"
	"sort"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/efskip/pkg/eflog"
	"github.com/dkoosis/efskip/pkg/skipfile"
)

func analysis(exhausted []string, failures ...eflog.Failure) *eflog.Analysis {
	return &eflog.Analysis{
		Summary:   eflog.Summary{Result: "FAILED", Failed: len(failures)},
		Failures:  failures,
		Exhausted: mapset.NewSet(exhausted...),
	}
}

func TestBuild_SingleFailure(t *testing.T) {
	t.Parallel()

	doc := skipfile.Build(analysis(nil, eflog.Failure{Category: "suite_a", Test: "test-one"}))

	want := "testname:\n" +
		"  suite_a:\n" +
		"      - one\n"
	assert.Equal(t, want, doc.String())
}

func TestBuild_Empty(t *testing.T) {
	t.Parallel()

	doc := skipfile.Build(analysis(nil))
	assert.Equal(t, "testname:\n", doc.String())
	assert.Zero(t, doc.Len())

	parsed, err := skipfile.Parse(doc.Bytes())
	require.NoError(t, err)
	assert.Empty(t, parsed.Categories)
}

func TestBuild_CategoryOrderAndSortedEntries(t *testing.T) {
	t.Parallel()

	doc := skipfile.Build(analysis(nil,
		eflog.Failure{Category: "stZeta", Test: "test_zulu"},
		eflog.Failure{Category: "stAlpha", Test: "test_mike"},
		eflog.Failure{Category: "stZeta", Test: "test_alpha"},
		eflog.Failure{Category: "stZeta", Test: "test_kilo"},
		eflog.Failure{Category: "stAlpha", Test: "test_bravo"},
	))

	require.Len(t, doc.Categories, 2)
	assert.Equal(t, "stZeta", doc.Categories[0].Name)
	assert.Equal(t, "stAlpha", doc.Categories[1].Name)

	for _, c := range doc.Categories {
		names := make([]string, 0, len(c.Entries))
		for _, e := range c.Entries {
			names = append(names, e.Test)
		}
		assert.True(t, sort.StringsAreSorted(names), "entries of %s not sorted: %v", c.Name, names)
	}
	assert.Equal(t, "alpha", doc.Categories[0].Entries[0].Test)
	assert.Equal(t, 5, doc.Len())
}

func TestBuild_DuplicateFailuresCollapse(t *testing.T) {
	t.Parallel()

	doc := skipfile.Build(analysis(nil,
		eflog.Failure{Category: "st", Test: "test_same"},
		eflog.Failure{Category: "st", Test: "test_same"},
	))
	require.Len(t, doc.Categories, 1)
	assert.Len(t, doc.Categories[0].Entries, 1)
}

func TestBuild_ExhaustedComment(t *testing.T) {
	t.Parallel()

	doc := skipfile.Build(analysis([]string{"foo"},
		eflog.Failure{Category: "stRandom", Test: "test_foo"},
		eflog.Failure{Category: "stRandom", Test: "test_bar"},
	))

	want := "testname:\n" +
		"  stRandom:\n" +
		"      - bar\n" +
		"      - foo  #RunResources error\n"
	assert.Equal(t, want, doc.String())
}

func TestDocument_WriteTo(t *testing.T) {
	t.Parallel()

	doc := skipfile.Build(analysis(nil, eflog.Failure{Category: "c", Test: "test_x"}))
	var buf bytes.Buffer
	n, err := doc.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, doc.String(), buf.String())
}
