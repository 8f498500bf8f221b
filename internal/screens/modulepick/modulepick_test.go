package modulepick

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/nismprep/internal/progress"
	"github.com/abhisek/nismprep/internal/question"
	"github.com/abhisek/nismprep/internal/router"
	examscreen "github.com/abhisek/nismprep/internal/screens/exam"
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

func newTestPicker(t *testing.T, tt question.TestType) *PickScreen {
	t.Helper()
	bank, err := question.NewBank()
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}
	ledger := progress.NewLedger(nopSnapshotRepo{}, &nopEventRepo{})
	return New(bank, ledger, nil, tt)
}

func enter() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyEnter} }
func down() tea.KeyPressMsg  { return tea.KeyPressMsg{Code: 'j', Text: "j"} }

func TestModuleThenTestSelection(t *testing.T) {
	p := newTestPicker(t, question.TypePractice)

	if !strings.Contains(p.View(100, 30), "Choose a module") {
		t.Error("expected module stage first")
	}

	p.Update(enter())
	if p.stage != stageTest {
		t.Fatal("enter should advance to test selection")
	}
	if !strings.Contains(p.View(100, 30), "Mutual Fund Distributors") {
		t.Error("test stage should show the chosen module")
	}

	_, cmd := p.Update(enter())
	if cmd == nil {
		t.Fatal("expected push command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*examscreen.ExamScreen); !ok {
		t.Errorf("expected exam screen, got %T", msg.Screen)
	}
}

func TestTestCountFollowsType(t *testing.T) {
	p := newTestPicker(t, question.TypeFinal)

	// equity-derivatives has 3 final tests.
	p.Update(down())
	p.Update(enter())

	if got := p.testCount(); got != 3 {
		t.Errorf("testCount = %d, want 3", got)
	}
}

func TestEscStepsBackOneStage(t *testing.T) {
	p := newTestPicker(t, question.TypePractice)

	p.Update(enter())
	p.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if p.stage != stageModule {
		t.Error("esc should return to module selection")
	}

	_, cmd := p.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command at module stage")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}
