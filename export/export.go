package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/plan"
)

// ErrEmptyPath is returned when asked to export a path with no
// waypoints.
var ErrEmptyPath = errors.New("export: empty path")

// csvHeader is the fixed waypoint-file header.
var csvHeader = []string{"step", "row", "col"}

// WriteCSV writes path as CSV: a step,row,col header followed by one
// record per waypoint in path order.
func WriteCSV(w io.Writer, path []grid.Cell) error {
	if len(path) == 0 {
		return ErrEmptyPath
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}
	for i, q := range path {
		rec := []string{
			strconv.Itoa(i),
			strconv.Itoa(q.Row),
			strconv.Itoa(q.Col),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("export: write waypoint %d: %w", i, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// Record is the JSON shape of one run outcome.
type Record struct {
	Scenario      string      `json:"scenario,omitempty"`
	Status        string      `json:"status"`
	Strategy      string      `json:"strategy"`
	ElapsedNanos  int64       `json:"elapsed_ns"`
	NodesExpanded int         `json:"nodes_expanded"`
	Steps         int         `json:"steps"`
	PathLength    int         `json:"path_length"`
	PathCost      float64     `json:"path_cost"`
	Path          []grid.Cell `json:"path,omitempty"`
}

// NewRecord flattens a plan.Result into its JSON shape. scenario may
// be empty for ad-hoc runs.
func NewRecord(scenario string, res plan.Result) Record {
	return Record{
		Scenario:      scenario,
		Status:        res.Stats.Status.String(),
		Strategy:      res.Stats.Strategy.String(),
		ElapsedNanos:  res.Stats.Elapsed.Nanoseconds(),
		NodesExpanded: res.Stats.NodesExpanded,
		Steps:         res.Stats.Steps,
		PathLength:    res.Stats.PathLength,
		PathCost:      res.Stats.PathCost,
		Path:          res.Path,
	}
}

// WriteJSON writes the outcome record as indented JSON.
func WriteJSON(w io.Writer, rec Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return fmt.Errorf("export: encode json: %w", err)
	}

	return nil
}
