package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_CreatesNewDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	for i := 0; i < 3; i++ {
		s, err := Open(path)
		if err != nil {
			t.Fatalf("Open() iteration %d failed: %v", i, err)
		}
		s.Close()
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("final Open() failed: %v", err)
	}
	defer s.Close()

	var name string
	err = s.db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='index' AND name=?",
		"idx_computations_kind",
	).Scan(&name)
	if err != nil {
		t.Errorf("kind index not found: %v", err)
	}
}

func TestOpen_Pragmas(t *testing.T) {
	s := openTestStore(t)

	if err := s.verifyPragma("journal_mode", "wal"); err != nil {
		t.Error(err)
	}
	if err := s.verifyPragma("busy_timeout", "5000"); err != nil {
		t.Error(err)
	}
	if err := s.verifyPragma("user_version", "1"); err != nil {
		t.Error(err)
	}
}

func TestOpen_InvalidPath(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing", "dir", "journal.db"))
	if err == nil {
		t.Fatal("expected error for unopenable path")
	}
}

func TestOpen_RefusesNewerSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := s.db.Exec("PRAGMA user_version = 99"); err != nil {
		t.Fatalf("set user_version: %v", err)
	}
	s.Close()

	if _, err := Open(path); err == nil {
		t.Fatal("expected error for newer schema version")
	}
}

func TestAppend_AssignsSequence(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first, err := s.Append(ctx, "run-a", "gcd", map[string]string{"numbers": "14 15"}, map[string]string{"gcd": "1"})
	if err != nil {
		t.Fatalf("Append() failed: %v", err)
	}
	second, err := s.Append(ctx, "run-a", "point", map[string]string{"pixel": "25,175"}, map[string]string{"point": "-0.5,-0.75"})
	if err != nil {
		t.Fatalf("Append() failed: %v", err)
	}
	other, err := s.Append(ctx, "run-b", "gcd", nil, nil)
	if err != nil {
		t.Fatalf("Append() failed: %v", err)
	}

	if first.Seq != 1 || second.Seq != 2 {
		t.Errorf("seqs = %d, %d; want 1, 2", first.Seq, second.Seq)
	}
	if other.Seq != 1 {
		t.Errorf("seq of new run = %d; want 1", other.Seq)
	}

	want, err := ComputationID("run-a", 1, "gcd", map[string]string{"numbers": "14 15"}, map[string]string{"gcd": "1"})
	if err != nil {
		t.Fatal(err)
	}
	if first.ID != want {
		t.Errorf("ID = %s, want %s", first.ID, want)
	}
}

func TestList_OrderAndFilter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// run-b is appended first but sorts after run-a
	mustAppend(t, s, "run-b", "escape")
	mustAppend(t, s, "run-a", "gcd")
	mustAppend(t, s, "run-a", "escape")

	all, err := s.List(ctx, Filter{})
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}
	got := []string{all[0].RunID + "/" + all[0].Kind, all[1].RunID + "/" + all[1].Kind, all[2].RunID + "/" + all[2].Kind}
	want := []string{"run-a/gcd", "run-a/escape", "run-b/escape"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d = %s, want %s", i, got[i], want[i])
		}
	}

	escapes, err := s.List(ctx, Filter{Kind: "escape"})
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(escapes) != 2 {
		t.Errorf("escape records = %d, want 2", len(escapes))
	}

	runA, err := s.List(ctx, Filter{RunID: "run-a", Kind: "gcd"})
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(runA) != 1 || runA[0].Input["k"] != "v" {
		t.Errorf("unexpected run-a gcd records: %+v", runA)
	}
}

func TestList_EmptyIsNotNil(t *testing.T) {
	s := openTestStore(t)

	got, err := s.List(context.Background(), Filter{RunID: "nothing"})
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if got == nil {
		t.Error("List() returned nil, want empty slice")
	}
}

func TestAppend_RepeatedContentIsNewRecord(t *testing.T) {
	s := openTestStore(t)

	first := mustAppend(t, s, "run-a", "gcd")
	second := mustAppend(t, s, "run-a", "gcd")

	if first.ID == second.ID {
		t.Errorf("repeated Append() reused ID %s", first.ID)
	}

	got, err := s.List(context.Background(), Filter{RunID: "run-a"})
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("List() returned %d records, want 2", len(got))
	}
}

func mustAppend(t *testing.T, s *Store, runID, kind string) Computation {
	t.Helper()
	c, err := s.Append(context.Background(), runID, kind, map[string]string{"k": "v"}, map[string]string{"r": "1"})
	if err != nil {
		t.Fatalf("Append(%s, %s) failed: %v", runID, kind, err)
	}
	return c
}
