package eflog_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/efskip/pkg/eflog"
)

const sampleFailingLog = `running 4 tests
test ef_testing::stExample::test_add ... ok
thread 'ef_testing::stRandom::test_randomStatetest1' panicked at crates/ef-testing/src/models/case.rs:80:9:
Some tests failed (see above)
thread 'ef_testing::stEIP150_minus_singleCodeGasPrices::test_gas_plus_cost_xor_2' panicked at crates/ef-testing/src/models/case.rs:80:9:
test ef_testing::stRandom::test_randomStatetest1 ... FAILED

test result: FAILED. 1 passed; 2 failed; 1 ignored; 0 measured; 0 filtered out; finished in 3.21s
`

func TestExtractFailures_SourceOrderAndUnescape(t *testing.T) {
	t.Parallel()

	failures, err := eflog.ExtractFailures(sampleFailingLog)
	require.NoError(t, err)
	require.Len(t, failures, 2)

	assert.Equal(t, eflog.Failure{Category: "stRandom", Test: "test_randomStatetest1"}, failures[0])
	assert.Equal(t, eflog.Failure{Category: "stEIP150-singleCodeGasPrices", Test: "test_gas+cost^2"}, failures[1])
}

func TestExtractFailures_NoPanics(t *testing.T) {
	t.Parallel()

	failures, err := eflog.ExtractFailures("test result: ok. 3 passed; 0 failed; 0 ignored\n")
	require.NoError(t, err)
	assert.Empty(t, failures)
}

func TestExtractFailures_RepeatedPanicCountsTwice(t *testing.T) {
	t.Parallel()

	log := "thread 'a::b::test_x' panicked at src/lib.rs:1\n" +
		"thread 'a::b::test_x' panicked at src/lib.rs:1\n"
	failures, err := eflog.ExtractFailures(log)
	require.NoError(t, err)
	assert.Len(t, failures, 2)
}

func TestExtractFailures_PathWithoutCategory(t *testing.T) {
	t.Parallel()

	_, err := eflog.ExtractFailures("thread 'main' panicked at src/main.rs:3:5\n")

	var pathErr *eflog.PathError
	require.True(t, errors.As(err, &pathErr), "expected PathError, got %v", err)
	assert.Equal(t, "main", pathErr.Path)
}

func TestParseSummary(t *testing.T) {
	t.Parallel()

	s, err := eflog.ParseSummary(sampleFailingLog)
	require.NoError(t, err)
	assert.Equal(t, eflog.Summary{Result: "FAILED", Passed: 1, Failed: 2, Ignored: 1}, s)
	assert.Equal(t, 4, s.Total())
}

func TestParseSummary_FirstMatchWins(t *testing.T) {
	t.Parallel()

	log := strings.Join([]string{
		"test result: ok. 10 passed; 0 failed; 0 ignored",
		"test result: FAILED. 3 passed; 7 failed; 2 ignored",
	}, "\n")

	s, err := eflog.ParseSummary(log)
	require.NoError(t, err)
	assert.Equal(t, "ok", s.Result)
	assert.Equal(t, 10, s.Passed)
	assert.Equal(t, 0, s.Failed)
}

func TestParseSummary_Missing(t *testing.T) {
	t.Parallel()

	_, err := eflog.ParseSummary("running 3 tests\nthread 'a::b::c' panicked at x\n")
	assert.ErrorIs(t, err, eflog.ErrMissingSummary)
}

func TestParseSummary_Overflow(t *testing.T) {
	t.Parallel()

	_, err := eflog.ParseSummary("test result: ok. 99999999999999999999999 passed; 0 failed; 0 ignored")
	require.Error(t, err)
	assert.NotErrorIs(t, err, eflog.ErrMissingSummary)
}
