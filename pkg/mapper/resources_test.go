package mapper_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/efskip/pkg/eflog"
	"github.com/dkoosis/efskip/pkg/mapper"
	"github.com/dkoosis/efskip/pkg/pattern"
)

func TestFromResources_Leaderboard(t *testing.T) {
	t.Parallel()

	var usages []eflog.ResourceUsage
	for i := 1; i <= 12; i++ {
		usages = append(usages, eflog.ResourceUsage{
			Test:    fmt.Sprintf("st::t%02d", i),
			Metrics: map[string]json.Number{"n_steps": json.Number(fmt.Sprintf("%d", i*100)), "pedersen_builtin": "1"},
		})
	}

	patterns := mapper.FromResources(usages, "resources_v0.csv")
	require.Len(t, patterns, 2)

	summary := patterns[0].(*pattern.Summary)
	assert.Equal(t, "RESOURCES 12 tests, 2 metrics -> resources_v0.csv", summary.Label)

	lb := patterns[1].(*pattern.Leaderboard)
	assert.Equal(t, 12, lb.TotalCount)
	require.Len(t, lb.Items, 10)
	assert.Equal(t, "st::t12", lb.Items[0].Name)
	assert.Equal(t, "1200", lb.Items[0].Metric)
	assert.Equal(t, 1, lb.Items[0].Rank)
}

func TestFromResources_NoSteps(t *testing.T) {
	t.Parallel()

	patterns := mapper.FromResources([]eflog.ResourceUsage{
		{Test: "st::a", Metrics: map[string]json.Number{"pedersen_builtin": "3"}},
	}, "")
	assert.Len(t, patterns, 1)
}
