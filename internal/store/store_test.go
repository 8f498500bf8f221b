package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	// Save a snapshot carrying a populated ledger.
	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: LedgerSnapshot{
			Version:    1,
			TotalTests: 1,
			TotalScore: 84,
			TimeSpent:  120,
			Modules: map[string]ModuleProgress{
				"mutual-funds": {
					Completed: []string{"practice-1"},
					Scores:    []int{84},
					Progress:  14,
				},
			},
			History: []ResultRecord{
				{
					ID:        "r-1",
					ModuleID:  "mutual-funds",
					TestID:    "practice-1",
					Score:     84,
					TimeSpent: 120,
					TestType:  "practice",
					Date:      now.Format(time.RFC3339),
					Timestamp: now.UnixMilli(),
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	// Retrieve it and check the ledger round-tripped.
	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.TotalTests != 1 {
		t.Errorf("totalTests = %d, want 1", snap.Data.TotalTests)
	}
	if snap.Data.TotalScore != 84 {
		t.Errorf("totalScore = %v, want 84", snap.Data.TotalScore)
	}
	mod, ok := snap.Data.Modules["mutual-funds"]
	if !ok {
		t.Fatal("expected mutual-funds module entry")
	}
	if len(mod.Completed) != 1 || mod.Completed[0] != "practice-1" {
		t.Errorf("completed = %v, want [practice-1]", mod.Completed)
	}
	if len(snap.Data.History) != 1 || snap.Data.History[0].ID != "r-1" {
		t.Errorf("history = %+v, want one record r-1", snap.Data.History)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      LedgerSnapshot{Version: 1, TotalTests: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.TotalTests != 3 {
		t.Errorf("totalTests = %d, want 3", snap.Data.TotalTests)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      LedgerSnapshot{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune to keep 5.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest should still be sequence 7.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestResultEventsAppendAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	base := time.Now().UnixMilli()
	for i := 0; i < 3; i++ {
		seq, err := repo.AppendResult(ctx, ResultEventData{
			ResultID:      "r-" + string(rune('a'+i)),
			ModuleID:      "equity-derivatives",
			TestID:        "final-1",
			TestType:      "final",
			Score:         60 + i*10,
			TimeSpentSecs: 900,
			AutoSubmitted: i == 2,
			SubmittedAtMs: base + int64(i)*1000,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
		if seq <= 0 {
			t.Errorf("append %d: sequence = %d, want > 0", i, seq)
		}
	}

	// Newest first, limit respected.
	rows, err := repo.ListResults(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len = %d, want 2", len(rows))
	}
	if rows[0].ResultID != "r-c" {
		t.Errorf("rows[0] = %q, want r-c", rows[0].ResultID)
	}
	if !rows[0].AutoSubmitted {
		t.Error("expected newest row to be auto-submitted")
	}
	if rows[1].ResultID != "r-b" {
		t.Errorf("rows[1] = %q, want r-b", rows[1].ResultID)
	}
}

func TestProfileSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	// No profile yet.
	p, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if p != nil {
		t.Fatal("expected nil profile when none exist")
	}

	err = repo.Save(ctx, ProfileData{
		FirstName: "Asha",
		LastName:  "Rao",
		Email:     "asha@example.com",
		Plan:      "starter",
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	p, err = repo.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p == nil {
		t.Fatal("expected non-nil profile")
	}
	if p.Email != "asha@example.com" {
		t.Errorf("email = %q, want asha@example.com", p.Email)
	}

	// Saving again replaces the single row.
	err = repo.Save(ctx, ProfileData{
		FirstName: "Asha",
		LastName:  "Rao",
		Email:     "asha.rao@example.com",
		Plan:      "pro",
	})
	if err != nil {
		t.Fatalf("re-save: %v", err)
	}

	count, err := s.Client().Profile.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("profile rows = %d, want 1", count)
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	// Check that the result_events table exists.
	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='result_events'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "result_events" {
		t.Errorf("table name = %q, want 'result_events'", name)
	}
}
