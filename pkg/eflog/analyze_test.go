package eflog_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/efskip/pkg/eflog"
)

func TestAnalyze_FailingRun(t *testing.T) {
	t.Parallel()

	a, err := eflog.Analyze(sampleFailingLog)
	require.NoError(t, err)

	assert.Equal(t, 2, a.Summary.Failed)
	assert.Len(t, a.Failures, 2)
	assert.Equal(t, 2, a.Categories())
	assert.Zero(t, a.ExhaustedFailures())
}

func TestAnalyze_CleanRun(t *testing.T) {
	t.Parallel()

	a, err := eflog.Analyze("running 2 tests\ntest result: ok. 2 passed; 0 failed; 0 ignored\n")
	require.NoError(t, err)
	assert.Empty(t, a.Failures)
	assert.Equal(t, "ok", a.Summary.Result)
	assert.Zero(t, a.Exhausted.Cardinality())
}

func TestAnalyze_CountMismatch(t *testing.T) {
	t.Parallel()

	log := "thread 'a::b::test_one' panicked at src/lib.rs:1\n" +
		"test result: FAILED. 0 passed; 2 failed; 0 ignored\n"
	a, err := eflog.Analyze(log)
	assert.Nil(t, a)
	require.ErrorIs(t, err, eflog.ErrInconsistent)

	var ce *eflog.ConsistencyError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 1, ce.Extracted)
	assert.Equal(t, 2, ce.Reported)
}

func TestAnalyze_MissingSummary(t *testing.T) {
	t.Parallel()

	_, err := eflog.Analyze("thread 'a::b::test_one' panicked at src/lib.rs:1\n")
	assert.ErrorIs(t, err, eflog.ErrMissingSummary)
}

func TestAnalyze_ExhaustedFailure(t *testing.T) {
	t.Parallel()

	lines := []string{
		"ERROR ef_testing::models::result: stRandom::foo_bar reverted:",
		"1", "2", "3", "4", "5", "6",
		"Error: RunResources has no remaining steps.",
		"thread 'ef_testing::stRandom::test_foo_bar' panicked at crates/ef-testing/src/models/case.rs:80:9:",
		"test result: FAILED. 4 passed; 1 failed; 0 ignored",
	}
	a, err := eflog.Analyze(strings.Join(lines, "\n"))
	require.NoError(t, err)
	assert.True(t, a.Exhausted.Contains("foo_bar"))
	assert.Equal(t, 1, a.ExhaustedFailures())
}

func TestAnalyze_LineLongerThanOneMebibyte(t *testing.T) {
	t.Parallel()

	lines := []string{
		"thread 'ef_testing::stRandom::test_big' panicked at crates/ef-testing/src/models/case.rs:80:9:",
		"left: " + strings.Repeat("0", 2<<20),
		"test result: FAILED. 0 passed; 1 failed; 0 ignored",
	}
	a, err := eflog.Analyze(strings.Join(lines, "\n"))
	require.NoError(t, err)
	require.Len(t, a.Failures, 1)
	assert.Equal(t, "test_big", a.Failures[0].Test)
	assert.Zero(t, a.Exhausted.Cardinality())
}
