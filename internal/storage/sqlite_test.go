package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveRun(Run{ID: "a", Seed: 1, TickRate: 60, StartLevel: 1, Ruleset: "x"}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	n, err := store.CountRuns()
	if err != nil {
		t.Fatalf("CountRuns() failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Expected 1 run after reopen, got %d", n)
	}
}

func TestSaveAndLoadRun(t *testing.T) {
	store := openTestStore(t)

	run := Run{
		ID:         "7d3f0c1e-run",
		Seed:       12345,
		TickRate:   60,
		StartLevel: 3,
		Ruleset:    "start_level: 3\n",
		Score:      420,
		Lines:      12,
		Level:      4,
		Steps:      9000,
		Frames: []Frame{
			{Step: 0, Actions: []string{"Confirm"}},
			{Step: 31, Actions: []string{"MoveLeft", "Rotate"}},
		},
	}
	if err := store.SaveRun(run); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	got, err := store.LoadRun(run.ID)
	if err != nil {
		t.Fatalf("LoadRun() failed: %v", err)
	}

	if got.Seed != run.Seed || got.TickRate != run.TickRate || got.StartLevel != run.StartLevel {
		t.Errorf("LoadRun() header = %+v", got)
	}
	if got.Score != 420 || got.Lines != 12 || got.Level != 4 || got.Steps != 9000 {
		t.Errorf("LoadRun() result = score %d lines %d level %d steps %d", got.Score, got.Lines, got.Level, got.Steps)
	}
	if got.Ruleset != run.Ruleset {
		t.Errorf("Ruleset = %q, expected %q", got.Ruleset, run.Ruleset)
	}
	if len(got.Frames) != 2 || got.Frames[1].Step != 31 || got.Frames[1].Actions[1] != "Rotate" {
		t.Errorf("Frames = %+v", got.Frames)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestLoadRunNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.LoadRun("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadRun() error = %v, expected ErrNotFound", err)
	}
}

func TestSaveRunRejectsDuplicateAndEmptyIDs(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveRun(Run{}); err == nil {
		t.Error("SaveRun() with empty id should fail")
	}
	if err := store.SaveRun(Run{ID: "dup"}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if err := store.SaveRun(Run{ID: "dup"}); err == nil {
		t.Error("SaveRun() with duplicate id should fail")
	}
}

func TestRecentRunsNewestFirst(t *testing.T) {
	store := openTestStore(t)

	for _, id := range []string{"first", "second", "third"} {
		if err := store.SaveRun(Run{ID: id}); err != nil {
			t.Fatalf("SaveRun(%s) failed: %v", id, err)
		}
	}

	runs, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != "third" || runs[1].ID != "second" {
		t.Errorf("RecentRuns() order = %s, %s", runs[0].ID, runs[1].ID)
	}
	if runs[0].Frames == nil {
		t.Error("Frames should decode to an empty slice, not nil")
	}

	all, err := store.RecentRuns(0)
	if err != nil {
		t.Fatalf("RecentRuns(0) failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("RecentRuns(0) should use the default limit, got %d runs", len(all))
	}
}

func TestDeleteRun(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveRun(Run{ID: "gone"}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if err := store.DeleteRun("gone"); err != nil {
		t.Fatalf("DeleteRun() failed: %v", err)
	}
	if err := store.DeleteRun("never-existed"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteRun() of unknown id = %v, expected ErrNotFound", err)
	}
	if _, err := store.LoadRun("gone"); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadRun() after delete = %v, expected ErrNotFound", err)
	}
}
