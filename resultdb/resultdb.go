package resultdb

import (
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/gridnav/scenario"
)

// schema.sql holds the runs-table DDL, applied idempotently on Open.
//
//go:embed schema.sql
var schemaSQL string

// Store is the planning run history database.
type Store struct {
	*sql.DB
}

// Open opens (creating if needed) the SQLite store at path and applies
// the schema. Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("resultdb: open %s: %w", path, err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("resultdb: apply schema: %w", err)
	}

	return &Store{db}, nil
}

// Run is one persisted planning execution.
type Run struct {
	RunID     string
	Scenario  string
	Status    string
	Strategy  string
	Elapsed   time.Duration
	Nodes     int
	Steps     int
	PathLen   int
	PathCost  float64
	CreatedAt time.Time
}

// RecordOutcome inserts one outcome and returns its new run ID.
func (s *Store) RecordOutcome(out scenario.Outcome) (string, error) {
	runID := uuid.NewString()
	st := out.Result.Stats
	stmt := `INSERT INTO runs (run_id, scenario, status, strategy, elapsed_ns, nodes, steps, path_len, path_cost, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.Exec(stmt,
		runID, out.Scenario, st.Status.String(), st.Strategy.String(),
		st.Elapsed.Nanoseconds(), st.NodesExpanded, st.Steps,
		st.PathLength, st.PathCost, time.Now().UnixNano(),
	)
	if err != nil {
		return "", fmt.Errorf("resultdb: record outcome: %w", err)
	}

	return runID, nil
}

// RecordBatch inserts every outcome, returning the run IDs in order.
func (s *Store) RecordBatch(outs []scenario.Outcome) ([]string, error) {
	ids := make([]string, 0, len(outs))
	for _, out := range outs {
		id, err := s.RecordOutcome(out)
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// RecentRuns returns up to limit runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.Query(`SELECT run_id, scenario, status, strategy, elapsed_ns, nodes, steps, path_len, path_cost, created_at
		FROM runs ORDER BY created_at DESC, run_id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("resultdb: query recent runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var elapsedNS, createdNS int64
		if err := rows.Scan(&r.RunID, &r.Scenario, &r.Status, &r.Strategy,
			&elapsedNS, &r.Nodes, &r.Steps, &r.PathLen, &r.PathCost, &createdNS); err != nil {
			return nil, fmt.Errorf("resultdb: scan run: %w", err)
		}
		r.Elapsed = time.Duration(elapsedNS)
		r.CreatedAt = time.Unix(0, createdNS)
		runs = append(runs, r)
	}

	return runs, rows.Err()
}
