package progress

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/nismprep/internal/question"
	"github.com/abhisek/nismprep/internal/store"
)

// snapshotVersion is bumped when the serialized ledger layout changes.
const snapshotVersion = 1

// snapshotsToKeep bounds the snapshot table; the newest row is the live
// ledger, older rows exist only for recovery.
const snapshotsToKeep = 10

// Ledger is the durable aggregate of all completed test results. It is
// loaded once at startup and persisted after every mutation. All methods
// are safe for concurrent use; AddResult is serialized so aggregate
// updates are never lost.
type Ledger struct {
	mu        sync.Mutex
	snapshots store.SnapshotRepo
	events    store.EventRepo
	state     store.LedgerSnapshot

	now   func() time.Time
	newID func() string
}

// NewLedger creates a ledger over the given repositories with empty state.
// Call Load to restore persisted history.
func NewLedger(snapshots store.SnapshotRepo, events store.EventRepo) *Ledger {
	return &Ledger{
		snapshots: snapshots,
		events:    events,
		state:     freshState(),
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

func freshState() store.LedgerSnapshot {
	return store.LedgerSnapshot{
		Version: snapshotVersion,
		Modules: make(map[string]store.ModuleProgress),
	}
}

// Load restores the most recent persisted ledger. A missing or corrupt
// snapshot is not fatal: the ledger starts fresh and the error is
// returned for logging only.
func (l *Ledger) Load(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	snap, err := l.snapshots.Latest(ctx)
	if err != nil {
		l.state = freshState()
		return fmt.Errorf("load ledger: %w", err)
	}
	if snap == nil {
		l.state = freshState()
		return nil
	}

	l.state = snap.Data
	if l.state.Modules == nil {
		l.state.Modules = make(map[string]store.ModuleProgress)
	}
	l.state.Version = snapshotVersion
	return nil
}

// AddResult records one completed test attempt: builds an immutable
// result record, prepends it to history, updates the per-module and
// aggregate statistics, and persists the whole ledger. The in-memory
// state is updated even when persistence fails, so the returned record
// is always valid for navigation; the error reports the write failure.
func (l *Ledger) AddResult(ctx context.Context, moduleID, testID string, score, timeSpentSecs int, testType string, autoSubmitted bool) (store.ResultRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	rec := store.ResultRecord{
		ID:            l.newID(),
		ModuleID:      moduleID,
		TestID:        testID,
		Score:         score,
		TimeSpent:     timeSpentSecs,
		TestType:      testType,
		Date:          now.UTC().Format(time.RFC3339),
		Timestamp:     now.UnixMilli(),
		AutoSubmitted: autoSubmitted,
	}

	// History is newest-first.
	l.state.History = append([]store.ResultRecord{rec}, l.state.History...)

	mod := l.state.Modules[moduleID]
	if !contains(mod.Completed, testID) {
		mod.Completed = append(mod.Completed, testID)
	}
	mod.Scores = append(mod.Scores, score)
	mod.Progress = moduleProgressPercent(moduleID, len(mod.Completed))
	l.state.Modules[moduleID] = mod

	l.state.TotalTests++
	n := float64(l.state.TotalTests)
	l.state.TotalScore = (l.state.TotalScore*(n-1) + float64(score)) / n
	l.state.TimeSpent += timeSpentSecs

	return rec, l.persist(ctx, rec)
}

// persist appends the result event and saves a fresh ledger snapshot.
// Caller holds l.mu.
func (l *Ledger) persist(ctx context.Context, rec store.ResultRecord) error {
	seq, err := l.events.AppendResult(ctx, store.ResultEventData{
		ResultID:      rec.ID,
		ModuleID:      rec.ModuleID,
		TestID:        rec.TestID,
		TestType:      rec.TestType,
		Score:         rec.Score,
		TimeSpentSecs: rec.TimeSpent,
		AutoSubmitted: rec.AutoSubmitted,
		SubmittedAtMs: rec.Timestamp,
	})
	if err != nil {
		return fmt.Errorf("append result event: %w", err)
	}

	err = l.snapshots.Save(ctx, &store.Snapshot{
		Sequence:  seq,
		Timestamp: l.now(),
		Data:      l.state,
	})
	if err != nil {
		return fmt.Errorf("save ledger snapshot: %w", err)
	}

	// Pruning is housekeeping; its failure does not invalidate the write.
	_ = l.snapshots.Prune(ctx, snapshotsToKeep)
	return nil
}

// moduleProgressPercent computes completion against the module's
// configured test counts. Unknown modules report 0.
func moduleProgressPercent(moduleID string, completed int) int {
	m, ok := question.ModuleByID(moduleID)
	if !ok || m.TestCount() == 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(m.TestCount())))
}

func contains(xs []string, want string) bool {
	for _, x := range xs {
		if x == want {
			return true
		}
	}
	return false
}

// GetRecentActivity returns up to limit results, newest first.
func (l *Ledger) GetRecentActivity(limit int) []store.ResultRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := len(l.state.History)
	if limit >= 0 && limit < n {
		n = limit
	}
	out := make([]store.ResultRecord, n)
	copy(out, l.state.History[:n])
	return out
}

// History returns the full result history, newest first.
func (l *Ledger) History() []store.ResultRecord {
	return l.GetRecentActivity(-1)
}

// TotalTests returns the number of recorded attempts.
func (l *Ledger) TotalTests() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.TotalTests
}

// AverageScore returns the running mean of all scores, rounded.
func (l *Ledger) AverageScore() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return int(math.Round(l.state.TotalScore))
}

// TimeSpentHours returns cumulative session time rounded to hours.
func (l *Ledger) TimeSpentHours() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return int(math.Round(float64(l.state.TimeSpent) / 3600))
}

// TimeSpentSeconds returns cumulative session time in seconds.
func (l *Ledger) TimeSpentSeconds() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.TimeSpent
}

// ModuleProgress returns completion state for one module. Modules with
// no recorded attempts report the zero value.
func (l *Ledger) ModuleProgress(moduleID string) store.ModuleProgress {
	l.mu.Lock()
	defer l.mu.Unlock()

	mod, ok := l.state.Modules[moduleID]
	if !ok {
		return store.ModuleProgress{}
	}
	out := store.ModuleProgress{
		Completed: append([]string(nil), mod.Completed...),
		Scores:    append([]int(nil), mod.Scores...),
		Progress:  mod.Progress,
	}
	return out
}

// FindResult returns the record with the given id, or nil.
func (l *Ledger) FindResult(id string) *store.ResultRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.state.History {
		if l.state.History[i].ID == id {
			rec := l.state.History[i]
			return &rec
		}
	}
	return nil
}
