package progress

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/abhisek/nismprep/internal/store"
)

type fakeSnapshotRepo struct {
	saved     []*store.Snapshot
	latest    *store.Snapshot
	latestErr error
}

func (f *fakeSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	cp := *snap
	f.saved = append(f.saved, &cp)
	return nil
}

func (f *fakeSnapshotRepo) Latest(context.Context) (*store.Snapshot, error) {
	return f.latest, f.latestErr
}

func (f *fakeSnapshotRepo) Prune(context.Context, int) error { return nil }

type fakeEventRepo struct {
	results []store.ResultEventData
	seq     int64
}

func (f *fakeEventRepo) AppendResult(_ context.Context, data store.ResultEventData) (int64, error) {
	f.seq++
	f.results = append(f.results, data)
	return f.seq, nil
}

func (f *fakeEventRepo) ListResults(context.Context, int) ([]store.ResultEventData, error) {
	return f.results, nil
}

func (f *fakeEventRepo) AppendLLMRequest(context.Context, store.LLMRequestEventData) error {
	return nil
}

func (f *fakeEventRepo) ListLLMRequests(context.Context, int) ([]store.LLMEventRecord, error) {
	return nil, nil
}

func (f *fakeEventRepo) LLMUsageByPurpose(context.Context) ([]store.LLMUsageStat, error) {
	return nil, nil
}

func (f *fakeEventRepo) LLMUsageByModel(context.Context) ([]store.LLMUsageStat, error) {
	return nil, nil
}

func newTestLedger() (*Ledger, *fakeSnapshotRepo, *fakeEventRepo) {
	snaps := &fakeSnapshotRepo{}
	events := &fakeEventRepo{}
	l := NewLedger(snaps, events)

	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	n := 0
	l.now = func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Second)
	}
	id := 0
	l.newID = func() string {
		id++
		return fmt.Sprintf("result-%d", id)
	}
	return l, snaps, events
}

func TestAddResultFreshLedger(t *testing.T) {
	l, snaps, events := newTestLedger()
	ctx := context.Background()

	rec, err := l.AddResult(ctx, "mutual-funds", "practice-1", 84, 120, "practice", false)
	if err != nil {
		t.Fatalf("add result: %v", err)
	}

	if rec.ID == "" {
		t.Error("expected generated record id")
	}
	if rec.Score != 84 || rec.TimeSpent != 120 {
		t.Errorf("record = %+v, want score 84 time 120", rec)
	}
	if rec.Date == "" || rec.Timestamp == 0 {
		t.Errorf("record missing timestamps: %+v", rec)
	}

	if l.TotalTests() != 1 {
		t.Errorf("totalTests = %d, want 1", l.TotalTests())
	}
	if l.AverageScore() != 84 {
		t.Errorf("averageScore = %d, want 84", l.AverageScore())
	}
	if l.TimeSpentSeconds() != 120 {
		t.Errorf("timeSpent = %d, want 120", l.TimeSpentSeconds())
	}

	mod := l.ModuleProgress("mutual-funds")
	if len(mod.Completed) != 1 || mod.Completed[0] != "practice-1" {
		t.Errorf("completed = %v, want [practice-1]", mod.Completed)
	}
	// 1 of 7 configured tests, rounded.
	if mod.Progress != 14 {
		t.Errorf("progress = %d, want 14", mod.Progress)
	}

	if len(events.results) != 1 {
		t.Fatalf("result events = %d, want 1", len(events.results))
	}
	if len(snaps.saved) != 1 {
		t.Fatalf("snapshots = %d, want 1", len(snaps.saved))
	}
	if snaps.saved[0].Data.TotalTests != 1 {
		t.Errorf("snapshot totalTests = %d, want 1", snaps.saved[0].Data.TotalTests)
	}
}

func TestRunningMean(t *testing.T) {
	l, _, _ := newTestLedger()
	ctx := context.Background()

	scores := []int{80, 60, 100}
	wantMeans := []int{80, 70, 80}

	for i, score := range scores {
		if _, err := l.AddResult(ctx, "mutual-funds", fmt.Sprintf("practice-%d", i+1), score, 60, "practice", false); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
		if got := l.TotalTests(); got != i+1 {
			t.Errorf("after %d: totalTests = %d, want %d", i+1, got, i+1)
		}
		if got := l.AverageScore(); got != wantMeans[i] {
			t.Errorf("after %d: averageScore = %d, want %d", i+1, got, wantMeans[i])
		}
	}
}

func TestCompletionIdempotence(t *testing.T) {
	l, _, _ := newTestLedger()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := l.AddResult(ctx, "mutual-funds", "practice-1", 50+i*10, 60, "practice", false); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}

	if l.TotalTests() != 2 {
		t.Errorf("totalTests = %d, want 2", l.TotalTests())
	}
	mod := l.ModuleProgress("mutual-funds")
	if len(mod.Completed) != 1 {
		t.Errorf("completed = %v, want one entry", mod.Completed)
	}
	if len(mod.Scores) != 2 {
		t.Errorf("scores = %v, want two entries", mod.Scores)
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	l, _, _ := newTestLedger()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		if _, err := l.AddResult(ctx, "mutual-funds", fmt.Sprintf("practice-%d", i), 70, 60, "practice", false); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}

	hist := l.History()
	if len(hist) != 3 {
		t.Fatalf("history = %d records, want 3", len(hist))
	}
	if hist[0].TestID != "practice-3" {
		t.Errorf("history[0] = %q, want practice-3", hist[0].TestID)
	}
	if hist[2].TestID != "practice-1" {
		t.Errorf("history[2] = %q, want practice-1", hist[2].TestID)
	}

	recent := l.GetRecentActivity(2)
	if len(recent) != 2 {
		t.Fatalf("recent = %d records, want 2", len(recent))
	}
	if recent[0].TestID != "practice-3" {
		t.Errorf("recent[0] = %q, want practice-3", recent[0].TestID)
	}

	if got := len(l.GetRecentActivity(10)); got != 3 {
		t.Errorf("recent(10) = %d records, want 3", got)
	}
}

func TestLoadRestoresState(t *testing.T) {
	snaps := &fakeSnapshotRepo{
		latest: &store.Snapshot{
			Sequence: 7,
			Data: store.LedgerSnapshot{
				Version:    1,
				TotalTests: 2,
				TotalScore: 75,
				TimeSpent:  300,
				Modules: map[string]store.ModuleProgress{
					"equity-derivatives": {Completed: []string{"final-1"}, Scores: []int{70, 80}, Progress: 9},
				},
				History: []store.ResultRecord{{ID: "r-2"}, {ID: "r-1"}},
			},
		},
	}
	l := NewLedger(snaps, &fakeEventRepo{})

	if err := l.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if l.TotalTests() != 2 {
		t.Errorf("totalTests = %d, want 2", l.TotalTests())
	}
	if l.AverageScore() != 75 {
		t.Errorf("averageScore = %d, want 75", l.AverageScore())
	}
	if got := l.History(); len(got) != 2 || got[0].ID != "r-2" {
		t.Errorf("history = %+v, want r-2 first", got)
	}
}

func TestLoadFallsBackToFreshOnError(t *testing.T) {
	snaps := &fakeSnapshotRepo{latestErr: errors.New("disk corrupt")}
	l := NewLedger(snaps, &fakeEventRepo{})

	err := l.Load(context.Background())
	if err == nil {
		t.Error("expected load error to be reported")
	}

	// Ledger must remain usable.
	if l.TotalTests() != 0 {
		t.Errorf("totalTests = %d, want 0", l.TotalTests())
	}
	if _, err := l.AddResult(context.Background(), "mutual-funds", "practice-1", 90, 30, "practice", false); err != nil {
		t.Fatalf("add after fallback: %v", err)
	}
	if l.TotalTests() != 1 {
		t.Errorf("totalTests = %d, want 1", l.TotalTests())
	}
}

func TestFindResult(t *testing.T) {
	l, _, _ := newTestLedger()
	ctx := context.Background()

	rec, err := l.AddResult(ctx, "currency-derivatives", "final-1", 65, 1700, "final", true)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	found := l.FindResult(rec.ID)
	if found == nil {
		t.Fatal("expected to find record")
	}
	if !found.AutoSubmitted {
		t.Error("expected auto-submitted flag to persist")
	}
	if l.FindResult("missing") != nil {
		t.Error("expected nil for unknown id")
	}
}
