package exam

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/nismprep/internal/progress"
	"github.com/abhisek/nismprep/internal/question"
	"github.com/abhisek/nismprep/internal/router"
	"github.com/abhisek/nismprep/internal/screens/results"
	"github.com/abhisek/nismprep/internal/store"
)

// In-memory repos so the ledger works without a database.

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

func newTestScreen(t *testing.T, tt question.TestType) *ExamScreen {
	t.Helper()
	bank, err := question.NewBank()
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}
	ledger := progress.NewLedger(nopSnapshotRepo{}, &nopEventRepo{})

	s := New(bank, ledger, nil, "mutual-funds", string(tt)+"-1", tt)
	if s.errMsg != "" {
		t.Fatalf("start failed: %s", s.errMsg)
	}
	return s
}

func key(k string) tea.KeyPressMsg {
	switch k {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	default:
		return tea.KeyPressMsg{Code: rune(k[0]), Text: k}
	}
}

func TestStartShowsFirstQuestion(t *testing.T) {
	s := newTestScreen(t, question.TypeFinal)

	view := s.View(100, 30)
	if !strings.Contains(view, "Question 1 of") {
		t.Errorf("view missing question counter:\n%s", view)
	}
	if !strings.Contains(s.HeaderStatus(), "30:00") {
		t.Errorf("header status = %q, want countdown at 30:00", s.HeaderStatus())
	}
}

func TestPracticeHasNoCountdown(t *testing.T) {
	s := newTestScreen(t, question.TypePractice)

	if strings.Contains(s.HeaderStatus(), "⏱") {
		t.Errorf("practice header shows a countdown: %q", s.HeaderStatus())
	}
	if s.Init() != nil {
		t.Error("practice test should not start the timer")
	}
}

func TestNumberKeyAnswersAndAdvances(t *testing.T) {
	s := newTestScreen(t, question.TypeFinal)
	first := s.sess.Questions[0]

	s.Update(key("2"))

	if idx, ok := s.sess.Answer(first.ID); !ok || idx != 1 {
		t.Errorf("answer = (%d, %v), want (1, true)", idx, ok)
	}
	if s.sess.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1 after answering", s.sess.Cursor())
	}
}

func TestFlagToggle(t *testing.T) {
	s := newTestScreen(t, question.TypeFinal)
	q := s.sess.Questions[0]

	s.Update(key("f"))
	if !s.sess.Flagged(q.ID) {
		t.Error("expected question flagged after f")
	}
	s.Update(key("f"))
	if s.sess.Flagged(q.ID) {
		t.Error("expected flag cleared after second f")
	}
}

func TestEscOpensSubmitConfirm(t *testing.T) {
	s := newTestScreen(t, question.TypeFinal)

	if !s.HandlesEsc() {
		t.Fatal("active session should intercept esc")
	}

	s.Update(key("esc"))
	view := s.View(100, 30)
	if !strings.Contains(view, "Submit this test?") {
		t.Errorf("expected confirm dialog, got:\n%s", view)
	}

	s.Update(key("n"))
	if s.confirmOpen {
		t.Error("n should close the confirm dialog")
	}
}

func TestConfirmAbandonPops(t *testing.T) {
	s := newTestScreen(t, question.TypeFinal)

	s.Update(key("s"))
	_, cmd := s.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected a command on abandon")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
	if s.sess.Submitted() {
		t.Error("abandon must not record a result")
	}
}

func TestSubmitReplacesWithResults(t *testing.T) {
	s := newTestScreen(t, question.TypeFinal)

	s.Update(key("s"))
	_, cmd := s.Update(key("y"))
	if cmd == nil {
		t.Fatal("expected a command on submit")
	}

	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*results.ResultsScreen); !ok {
		t.Errorf("expected results screen, got %T", msg.Screen)
	}
	if !s.sess.Submitted() {
		t.Error("session should be submitted")
	}
	if s.HandlesEsc() {
		t.Error("submitted session should release esc")
	}
}

func TestTimerExpiryAutoSubmits(t *testing.T) {
	s := newTestScreen(t, question.TypeFinal)

	var cmd tea.Cmd
	for i := 0; i < 1800; i++ {
		_, cmd = s.Update(timerTickMsg{})
		if s.sess.Submitted() {
			break
		}
	}

	if !s.sess.Submitted() {
		t.Fatal("session should auto-submit when the clock runs out")
	}
	if cmd == nil {
		t.Fatal("expected transition command after auto-submit")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*results.ResultsScreen); !ok {
		t.Errorf("expected results screen, got %T", msg.Screen)
	}
}

func TestTickAfterSubmitIsNoop(t *testing.T) {
	s := newTestScreen(t, question.TypeFinal)

	s.Update(key("s"))
	s.Update(key("y"))

	_, cmd := s.Update(timerTickMsg{})
	if cmd != nil {
		t.Error("ticks after submission should do nothing")
	}
}
