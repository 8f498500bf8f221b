package results

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	engine "github.com/abhisek/nismprep/internal/exam"
	"github.com/abhisek/nismprep/internal/explain"
	"github.com/abhisek/nismprep/internal/llm"
	"github.com/abhisek/nismprep/internal/question"
	"github.com/abhisek/nismprep/internal/store"
)

type fixedSource struct{ qs []question.Question }

func (f fixedSource) Select(string, string, question.TestType) []question.Question {
	return f.qs
}

type nopSink struct{}

func (nopSink) AddResult(_ context.Context, moduleID, testID string, score, timeSpentSecs int, testType string, autoSubmitted bool) (store.ResultRecord, error) {
	return store.ResultRecord{
		ID:       "r-1",
		ModuleID: moduleID,
		TestID:   testID,
		Score:    score,
		TestType: testType,
	}, nil
}

func submittedSession(t *testing.T) (*engine.Session, store.ResultRecord) {
	t.Helper()
	qs := []question.Question{
		{ID: "q1", Prompt: "What is NAV?", Options: []string{"a", "b", "c", "d"}, Correct: 1, Explanation: "Assets minus liabilities over units."},
		{ID: "q2", Prompt: "What is an SIP?", Options: []string{"a", "b", "c", "d"}, Correct: 0},
	}
	sess, err := engine.Start(fixedSource{qs}, nopSink{}, "mutual-funds", "practice-1", question.TypePractice)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := sess.SelectAnswer("q1", 1); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if err := sess.SelectAnswer("q2", 2); err != nil {
		t.Fatalf("answer: %v", err)
	}
	rec, err := sess.Submit(context.Background(), false)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	return sess, rec
}

func keyPress(k string) tea.KeyPressMsg {
	if k == "esc" {
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	}
	return tea.KeyPressMsg{Code: rune(k[0]), Text: k}
}

func TestSummaryShowsScore(t *testing.T) {
	sess, rec := submittedSession(t)
	s := New(sess, rec, nil, nil)

	view := s.View(100, 40)
	if !strings.Contains(view, "Score: 50%") {
		t.Errorf("view missing score:\n%s", view)
	}
	if !strings.Contains(view, "Mutual Fund") {
		t.Errorf("view missing module name:\n%s", view)
	}
}

func TestReviewNavigation(t *testing.T) {
	sess, rec := submittedSession(t)
	s := New(sess, rec, nil, nil)

	if !strings.Contains(s.View(100, 40), "What is NAV?") {
		t.Error("first question should be shown initially")
	}

	s.Update(keyPress("j"))
	if !strings.Contains(s.View(100, 40), "What is an SIP?") {
		t.Error("down should move review to the second question")
	}

	// Clamped at the end.
	s.Update(keyPress("j"))
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1", s.selected)
	}
}

func TestStoredExplanationShown(t *testing.T) {
	sess, rec := submittedSession(t)
	s := New(sess, rec, nil, nil)

	if !strings.Contains(s.View(100, 40), "Assets minus liabilities") {
		t.Error("stored explanation should be rendered")
	}
}

func TestExplainWithoutProviderIsNoop(t *testing.T) {
	sess, rec := submittedSession(t)
	s := New(sess, rec, nil, nil)

	_, cmd := s.Update(keyPress("e"))
	if cmd != nil {
		t.Error("explain without a provider should do nothing")
	}
}

func TestExplainRequestAndRender(t *testing.T) {
	sess, rec := submittedSession(t)

	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"summary":"B is right.","reasoning":"Assets minus liabilities, then divide.","exam_tip":"Liabilities come off first."}`),
	})
	svc := explain.NewService(mock, explain.DefaultConfig())
	s := New(sess, rec, svc, nil)

	_, cmd := s.Update(keyPress("e"))
	if cmd == nil {
		t.Fatal("expected poll command after explain request")
	}
	if s.pendingID != "q1" {
		t.Errorf("pendingID = %q, want q1", s.pendingID)
	}

	// Poll until the async generation lands.
	deadline := time.Now().Add(2 * time.Second)
	for s.pendingID != "" && time.Now().Before(deadline) {
		s.Update(explainPollMsg{})
		time.Sleep(5 * time.Millisecond)
	}

	exp, ok := s.explanations["q1"]
	if !ok || exp == nil {
		t.Fatalf("expected explanation for q1, err = %q", s.explainErr)
	}
	if !strings.Contains(s.View(100, 40), "Liabilities come off first.") {
		t.Error("tutor tip should be rendered")
	}
}

func TestPersistFailureBannerShown(t *testing.T) {
	sess, rec := submittedSession(t)
	s := New(sess, rec, nil, context.DeadlineExceeded)

	if !strings.Contains(s.View(100, 40), "could not be saved") {
		t.Error("persist failure should be surfaced")
	}
}
