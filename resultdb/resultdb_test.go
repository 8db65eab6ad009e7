package resultdb_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/plan"
	"github.com/katalvlaran/gridnav/resultdb"
	"github.com/katalvlaran/gridnav/scenario"
)

func outcome(name string, status plan.Status, cost float64) scenario.Outcome {
	return scenario.Outcome{
		Scenario: name,
		Result: plan.Result{Stats: plan.Statistics{
			Status:        status,
			Strategy:      plan.StrategySearch,
			Elapsed:       time.Millisecond,
			NodesExpanded: 9,
			PathLength:    5,
			PathCost:      cost,
		}},
	}
}

func TestStore_RecordAndRecall(t *testing.T) {
	store, err := resultdb.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer store.Close()

	id1, err := store.RecordOutcome(outcome("open", plan.StatusSuccess, 5.65))
	require.NoError(t, err)
	require.NotEmpty(t, id1)

	id2, err := store.RecordOutcome(outcome("trap", plan.StatusLocalMinimum, 0))
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2, "run IDs must be unique")

	runs, err := store.RecentRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	byName := make(map[string]resultdb.Run, len(runs))
	for _, r := range runs {
		byName[r.Scenario] = r
	}
	open := byName["open"]
	assert.Equal(t, id1, open.RunID)
	assert.Equal(t, "Success", open.Status)
	assert.Equal(t, "Search", open.Strategy)
	assert.Equal(t, time.Millisecond, open.Elapsed)
	assert.Equal(t, 9, open.Nodes)
	assert.Equal(t, 5, open.PathLen)
	assert.InDelta(t, 5.65, open.PathCost, 1e-12)
	assert.Equal(t, "LocalMinimum", byName["trap"].Status)
}

func TestStore_RecordBatchAndLimit(t *testing.T) {
	store, err := resultdb.Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	outs := []scenario.Outcome{
		outcome("a", plan.StatusSuccess, 1),
		outcome("b", plan.StatusSuccess, 2),
		outcome("c", plan.StatusExhausted, 0),
	}
	ids, err := store.RecordBatch(outs)
	require.NoError(t, err)
	assert.Len(t, ids, 3)

	runs, err := store.RecentRuns(2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestOpen_Reopens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")

	store, err := resultdb.Open(path)
	require.NoError(t, err)
	_, err = store.RecordOutcome(outcome("open", plan.StatusSuccess, 1))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Schema application is idempotent and the data survives.
	store, err = resultdb.Open(path)
	require.NoError(t, err)
	defer store.Close()

	runs, err := store.RecentRuns(0)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
