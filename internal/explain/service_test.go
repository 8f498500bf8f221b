package explain

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/nismprep/internal/llm"
	"github.com/abhisek/nismprep/internal/question"
)

func waitConsume(t *testing.T, s *Service) (*Explanation, bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if exp, ok := s.Consume(); ok {
			return exp, true
		}
		// Generation failed but completed.
		if s.Err() != nil {
			return nil, false
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("timed out waiting for explanation")
	return nil, false
}

func sampleInput() Input {
	return Input{
		Question: question.Question{
			ID:          "mf-2",
			Prompt:      "How is NAV (Net Asset Value) calculated?",
			Options:     []string{"a", "b", "c", "d"},
			Correct:     1,
			Explanation: "NAV is assets minus liabilities over units.",
		},
		ChosenIndex: 0,
		ModuleName:  "Mutual Fund Distributors",
	}
}

func TestRequestAndConsume(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"summary":"B is right.","reasoning":"Assets minus liabilities, then divide.","exam_tip":"Liabilities come off first."}`),
	})
	svc := NewService(mock, DefaultConfig())

	svc.Request(context.Background(), sampleInput())

	exp, ok := waitConsume(t, svc)
	if !ok {
		t.Fatalf("expected explanation, err = %v", svc.Err())
	}
	if exp.QuestionID != "mf-2" {
		t.Errorf("question id = %q, want mf-2", exp.QuestionID)
	}
	if exp.Summary == "" || exp.Reasoning == "" || exp.ExamTip == "" {
		t.Errorf("incomplete explanation: %+v", exp)
	}

	// Consumed slot is cleared.
	if _, ok := svc.Consume(); ok {
		t.Error("expected empty slot after consume")
	}
}

func TestProviderFailureSurfacesViaErr(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue yields provider unavailable
	svc := NewService(mock, DefaultConfig())

	svc.Request(context.Background(), sampleInput())

	exp, ok := waitConsume(t, svc)
	if ok || exp != nil {
		t.Fatalf("expected no explanation, got %+v", exp)
	}
	if svc.Err() == nil {
		t.Error("expected error after failed generation")
	}
}

func TestPromptMarksChoices(t *testing.T) {
	msg := buildUserMessage(sampleInput())

	if !strings.Contains(msg, "(correct)") {
		t.Error("prompt missing correct marker")
	}
	if !strings.Contains(msg, "(candidate's choice)") {
		t.Error("prompt missing choice marker")
	}

	unanswered := sampleInput()
	unanswered.ChosenIndex = -1
	msg = buildUserMessage(unanswered)
	if !strings.Contains(msg, "unanswered") {
		t.Error("prompt missing unanswered note")
	}
}
