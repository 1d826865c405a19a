package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
)

// Filter narrows List results. Empty fields match everything.
type Filter struct {
	RunID string
	Kind  string
}

// List returns journal records matching f, ordered by run, seq and id.
//
// Returns an empty slice (not nil) if nothing matches.
func (s *Store) List(ctx context.Context, f Filter) ([]Computation, error) {
	var (
		where []string
		args  []any
	)
	if f.RunID != "" {
		where = append(where, "run_id = ?")
		args = append(args, f.RunID)
	}
	if f.Kind != "" {
		where = append(where, "kind = ?")
		args = append(args, f.Kind)
	}

	query := `SELECT id, run_id, seq, kind, input, output FROM computations`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += ` ORDER BY run_id COLLATE BINARY ASC, seq ASC, id COLLATE BINARY ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query computations: %w", err)
	}
	defer rows.Close()

	computations := []Computation{}
	for rows.Next() {
		c, err := scanComputation(rows)
		if err != nil {
			return nil, err
		}
		computations = append(computations, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate computations: %w", err)
	}

	return computations, nil
}

func scanComputation(rows *sql.Rows) (Computation, error) {
	var (
		c          Computation
		inputJSON  string
		outputJSON string
	)
	if err := rows.Scan(&c.ID, &c.RunID, &c.Seq, &c.Kind, &inputJSON, &outputJSON); err != nil {
		return Computation{}, fmt.Errorf("scan computation: %w", err)
	}

	if err := json.Unmarshal([]byte(inputJSON), &c.Input); err != nil {
		return Computation{}, fmt.Errorf("unmarshal input of %s: %w", c.ID, err)
	}
	if err := json.Unmarshal([]byte(outputJSON), &c.Output); err != nil {
		return Computation{}, fmt.Errorf("unmarshal output of %s: %w", c.ID, err)
	}
	return c, nil
}
