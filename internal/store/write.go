package store

import (
	"context"
	"fmt"
)

// Computation is one journal record.
type Computation struct {
	ID     string            `json:"id"`
	RunID  string            `json:"run_id"`
	Seq    int64             `json:"seq"`
	Kind   string            `json:"kind"`
	Input  map[string]string `json:"input"`
	Output map[string]string `json:"output"`
}

// Append records a computation under runID with the next sequence number
// of that run and returns the stored record. The ID hashes the sequence
// number too, so repeating a computation in a run yields a new record.
func (s *Store) Append(ctx context.Context, runID, kind string, input, output map[string]string) (Computation, error) {
	if input == nil {
		input = map[string]string{}
	}
	if output == nil {
		output = map[string]string{}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Computation{}, fmt.Errorf("append: begin: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	var seq int64
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(seq), 0) + 1 FROM computations WHERE run_id = ?`,
		runID,
	).Scan(&seq)
	if err != nil {
		return Computation{}, fmt.Errorf("append: next seq: %w", err)
	}

	c := Computation{
		RunID:  runID,
		Seq:    seq,
		Kind:   kind,
		Input:  input,
		Output: output,
	}
	c.ID, err = ComputationID(runID, seq, kind, input, output)
	if err != nil {
		return Computation{}, fmt.Errorf("append: %w", err)
	}

	inputJSON, err := marshalCanonical(input)
	if err != nil {
		return Computation{}, fmt.Errorf("append: marshal input: %w", err)
	}
	outputJSON, err := marshalCanonical(output)
	if err != nil {
		return Computation{}, fmt.Errorf("append: marshal output: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO computations (id, run_id, seq, kind, input, output)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		c.ID,
		c.RunID,
		c.Seq,
		c.Kind,
		string(inputJSON),
		string(outputJSON),
	)
	if err != nil {
		return Computation{}, fmt.Errorf("append: insert: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Computation{}, fmt.Errorf("append: commit: %w", err)
	}
	return c, nil
}
