package export_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/export"
	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/plan"
)

func TestWriteCSV(t *testing.T) {
	path := []grid.Cell{
		{Row: 0, Col: 0},
		{Row: 1, Col: 1},
		{Row: 2, Col: 1},
	}

	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, path))

	want := "step,row,col\n0,0,0\n1,1,1\n2,2,1\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSV_EmptyPath(t *testing.T) {
	var buf bytes.Buffer
	err := export.WriteCSV(&buf, nil)
	assert.ErrorIs(t, err, export.ErrEmptyPath)
	assert.Zero(t, buf.Len())
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	res := plan.Result{
		Path: []grid.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 1}},
		Stats: plan.Statistics{
			Status:        plan.StatusSuccess,
			Strategy:      plan.StrategySearch,
			Elapsed:       1500 * time.Microsecond,
			NodesExpanded: 7,
			PathLength:    2,
			PathCost:      1.4142135623730951,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, export.WriteJSON(&buf, export.NewRecord("open", res)))

	var rec export.Record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "open", rec.Scenario)
	assert.Equal(t, "Success", rec.Status)
	assert.Equal(t, "Search", rec.Strategy)
	assert.Equal(t, int64(1_500_000), rec.ElapsedNanos)
	assert.Equal(t, 7, rec.NodesExpanded)
	assert.Equal(t, res.Path, rec.Path)
}
