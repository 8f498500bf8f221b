package history

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/nismprep/internal/progress"
	"github.com/abhisek/nismprep/internal/router"
	"github.com/abhisek/nismprep/internal/store"
)

type nopSnapshotRepo struct{}

func (nopSnapshotRepo) Save(context.Context, *store.Snapshot) error      { return nil }
func (nopSnapshotRepo) Latest(context.Context) (*store.Snapshot, error) { return nil, nil }
func (nopSnapshotRepo) Prune(context.Context, int) error                { return nil }

type nopEventRepo struct{ seq int64 }

func (r *nopEventRepo) AppendResult(context.Context, store.ResultEventData) (int64, error) {
	r.seq++
	return r.seq, nil
}
func (r *nopEventRepo) ListResults(context.Context, int) ([]store.ResultEventData, error) {
	return nil, nil
}
func (r *nopEventRepo) AppendLLMRequest(context.Context, store.LLMRequestEventData) error {
	return nil
}
func (r *nopEventRepo) ListLLMRequests(context.Context, int) ([]store.LLMEventRecord, error) {
	return nil, nil
}
func (r *nopEventRepo) LLMUsageByPurpose(context.Context) ([]store.LLMUsageStat, error) {
	return nil, nil
}
func (r *nopEventRepo) LLMUsageByModel(context.Context) ([]store.LLMUsageStat, error) {
	return nil, nil
}

func seededLedger(t *testing.T) *progress.Ledger {
	t.Helper()
	l := progress.NewLedger(nopSnapshotRepo{}, &nopEventRepo{})
	ctx := context.Background()

	if _, err := l.AddResult(ctx, "mutual-funds", "practice-1", 84, 300, "practice", false); err != nil {
		t.Fatalf("seed result: %v", err)
	}
	if _, err := l.AddResult(ctx, "equity-derivatives", "final-1", 40, 1800, "final", true); err != nil {
		t.Fatalf("seed result: %v", err)
	}
	return l
}

func TestEmptyHistory(t *testing.T) {
	s := New(progress.NewLedger(nopSnapshotRepo{}, &nopEventRepo{}))

	view := s.View(100, 30)
	if !strings.Contains(view, "No tests yet") {
		t.Errorf("expected empty-state message, got:\n%s", view)
	}
}

func TestListsResultsNewestFirst(t *testing.T) {
	s := New(seededLedger(t))

	if len(s.results) != 2 {
		t.Fatalf("results = %d, want 2", len(s.results))
	}
	if s.results[0].ModuleID != "equity-derivatives" {
		t.Errorf("newest first, got %q", s.results[0].ModuleID)
	}

	view := s.View(100, 30)
	if !strings.Contains(view, "Equity Derivatives") {
		t.Errorf("view missing module name:\n%s", view)
	}
	if !strings.Contains(view, "auto") {
		t.Errorf("auto-submitted marker missing:\n%s", view)
	}
}

func TestNavigationAndExpand(t *testing.T) {
	s := New(seededLedger(t))

	s.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1", s.selected)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !s.expanded[1] {
		t.Error("enter should expand the selected row")
	}
	if !strings.Contains(s.View(100, 30), "time 05:00") {
		t.Errorf("expanded row missing time detail:\n%s", s.View(100, 30))
	}
}

func TestEscPops(t *testing.T) {
	s := New(seededLedger(t))

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected command on esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}
