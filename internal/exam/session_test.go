package exam

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/nismprep/internal/question"
	"github.com/abhisek/nismprep/internal/store"
)

// fixedSource returns the same question set for every session.
type fixedSource struct {
	set []question.Question
}

func (f fixedSource) Select(_, _ string, _ question.TestType) []question.Question {
	out := make([]question.Question, len(f.set))
	copy(out, f.set)
	return out
}

// recordingSink captures results newest-first, like the real ledger.
type recordingSink struct {
	history []store.ResultRecord
	nextID  int
}

func (r *recordingSink) AddResult(_ context.Context, moduleID, testID string, score, timeSpentSecs int, testType string, autoSubmitted bool) (store.ResultRecord, error) {
	r.nextID++
	rec := store.ResultRecord{
		ID:            string(rune('a' + r.nextID - 1)),
		ModuleID:      moduleID,
		TestID:        testID,
		Score:         score,
		TimeSpent:     timeSpentSecs,
		TestType:      testType,
		AutoSubmitted: autoSubmitted,
	}
	r.history = append([]store.ResultRecord{rec}, r.history...)
	return rec, nil
}

func fiveQuestions() []question.Question {
	qs := make([]question.Question, 5)
	for i := range qs {
		qs[i] = question.Question{
			ID:      string(rune('1' + i)),
			Prompt:  "q",
			Options: []string{"a", "b", "c", "d"},
			Correct: i % 4,
		}
	}
	return qs
}

func startTestSession(t *testing.T, tt question.TestType) (*Session, *recordingSink) {
	t.Helper()
	sink := &recordingSink{}
	s, err := Start(fixedSource{set: fiveQuestions()}, sink, "mutual-funds", "Practice Test 1", tt)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	return s, sink
}

func TestStartValidatesParams(t *testing.T) {
	sink := &recordingSink{}
	src := fixedSource{}

	tests := []struct {
		name             string
		moduleID, testID string
		tt               question.TestType
	}{
		{"empty module", "", "Practice Test 1", question.TypePractice},
		{"empty test id", "mutual-funds", "", question.TypePractice},
		{"empty type", "mutual-funds", "Practice Test 1", ""},
		{"bogus type", "mutual-funds", "Practice Test 1", "midterm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Start(src, sink, tt.moduleID, tt.testID, tt.tt)
			if !errors.Is(err, ErrMissingParam) {
				t.Errorf("err = %v, want ErrMissingParam", err)
			}
		})
	}
}

func TestStartCountdownOnlyForFinal(t *testing.T) {
	practice, _ := startTestSession(t, question.TypePractice)
	if practice.Remaining() != 0 {
		t.Errorf("practice remaining = %d, want 0", practice.Remaining())
	}

	final, _ := startTestSession(t, question.TypeFinal)
	if final.Remaining() != FinalDurationSecs {
		t.Errorf("final remaining = %d, want %d", final.Remaining(), FinalDurationSecs)
	}
	if final.Clock() != "30:00" {
		t.Errorf("clock = %q, want 30:00", final.Clock())
	}
}

func TestSelectAnswer(t *testing.T) {
	s, _ := startTestSession(t, question.TypePractice)
	qid := s.Questions[0].ID

	if err := s.SelectAnswer(qid, 2); err != nil {
		t.Fatalf("select: %v", err)
	}
	if got, ok := s.Answer(qid); !ok || got != 2 {
		t.Errorf("answer = %d,%v, want 2,true", got, ok)
	}

	// Overwrite is allowed.
	if err := s.SelectAnswer(qid, 3); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if got, _ := s.Answer(qid); got != 3 {
		t.Errorf("answer = %d, want 3", got)
	}

	// Bounds checked.
	if err := s.SelectAnswer(qid, 4); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("err = %v, want ErrInvalidOption", err)
	}
	if err := s.SelectAnswer(qid, -1); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("err = %v, want ErrInvalidOption", err)
	}

	// Unknown question rejected.
	if err := s.SelectAnswer("nope", 0); !errors.Is(err, ErrUnknownQuestion) {
		t.Errorf("err = %v, want ErrUnknownQuestion", err)
	}
}

func TestNavigateClamps(t *testing.T) {
	s, _ := startTestSession(t, question.TypePractice)

	s.Navigate(-1)
	if s.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0 after clamped back-nav", s.Cursor())
	}

	for i := 0; i < 10; i++ {
		s.Navigate(1)
	}
	if s.Cursor() != 4 {
		t.Errorf("cursor = %d, want 4 after clamped forward-nav", s.Cursor())
	}

	s.Navigate(-1)
	if s.Cursor() != 3 {
		t.Errorf("cursor = %d, want 3", s.Cursor())
	}
}

func TestToggleFlag(t *testing.T) {
	s, _ := startTestSession(t, question.TypePractice)
	qid := s.Questions[1].ID

	if err := s.ToggleFlag(qid); err != nil {
		t.Fatalf("flag: %v", err)
	}
	if !s.Flagged(qid) {
		t.Error("expected flagged")
	}
	if err := s.ToggleFlag(qid); err != nil {
		t.Fatalf("unflag: %v", err)
	}
	if s.Flagged(qid) {
		t.Error("expected unflagged")
	}
	if err := s.ToggleFlag("nope"); !errors.Is(err, ErrUnknownQuestion) {
		t.Errorf("err = %v, want ErrUnknownQuestion", err)
	}
}

func TestScoringAllCorrectAndAllWrong(t *testing.T) {
	s, _ := startTestSession(t, question.TypePractice)
	ctx := context.Background()

	for _, q := range s.Questions {
		if err := s.SelectAnswer(q.ID, q.Correct); err != nil {
			t.Fatalf("select %s: %v", q.ID, err)
		}
	}
	rec, err := s.Submit(ctx, false)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if rec.Score != 100 {
		t.Errorf("score = %d, want 100", rec.Score)
	}

	// All unanswered scores zero.
	s2, _ := startTestSession(t, question.TypePractice)
	rec2, err := s2.Submit(ctx, false)
	if err != nil {
		t.Fatalf("submit unanswered: %v", err)
	}
	if rec2.Score != 0 {
		t.Errorf("score = %d, want 0", rec2.Score)
	}
}

func TestScoringDeterministic(t *testing.T) {
	s, _ := startTestSession(t, question.TypePractice)
	for _, q := range s.Questions[:3] {
		if err := s.SelectAnswer(q.ID, q.Correct); err != nil {
			t.Fatalf("select: %v", err)
		}
	}

	first := s.Score()
	for i := 0; i < 5; i++ {
		if got := s.Score(); got != first {
			t.Fatalf("score %d = %d, want %d", i, got, first)
		}
	}
	if first != 60 {
		t.Errorf("score = %d, want 60 (3 of 5)", first)
	}
}

func TestZeroQuestionSession(t *testing.T) {
	sink := &recordingSink{}
	s, err := Start(fixedSource{}, sink, "no-such-module", "Practice Test 1", question.TypePractice)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("len = %d, want 0", s.Len())
	}
	if _, ok := s.CurrentQuestion(); ok {
		t.Error("expected no current question")
	}

	rec, err := s.Submit(context.Background(), false)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if rec.Score != 0 {
		t.Errorf("score = %d, want 0", rec.Score)
	}
	if len(sink.history) != 1 {
		t.Errorf("history = %d records, want 1", len(sink.history))
	}
}

func TestTimerPrecedence(t *testing.T) {
	s, sink := startTestSession(t, question.TypeFinal)
	ctx := context.Background()
	s.remaining = 1

	rec, err := s.Tick(ctx)
	if err != nil {
		t.Fatalf("tick: %v", err)
	}
	if rec == nil {
		t.Fatal("expected auto-submit record from final tick")
	}
	if !rec.AutoSubmitted {
		t.Error("expected auto-submitted flag")
	}
	if !s.Submitted() {
		t.Error("expected terminal state")
	}
	if len(sink.history) != 1 || sink.history[0].ID != rec.ID {
		t.Errorf("history[0] = %+v, want the auto-submit record", sink.history)
	}

	// Mutations after auto-submit are rejected.
	if err := s.SelectAnswer(s.Questions[0].ID, 0); !errors.Is(err, ErrSessionOver) {
		t.Errorf("select after submit: err = %v, want ErrSessionOver", err)
	}
	if err := s.ToggleFlag(s.Questions[0].ID); !errors.Is(err, ErrSessionOver) {
		t.Errorf("flag after submit: err = %v, want ErrSessionOver", err)
	}
	s.Navigate(1)
	if s.Cursor() != 0 {
		t.Error("navigate after submit should be a no-op")
	}

	// Stale ticks are no-ops, not double submissions.
	rec2, err := s.Tick(ctx)
	if err != nil {
		t.Fatalf("stale tick: %v", err)
	}
	if rec2 != nil {
		t.Error("stale tick must not produce a second record")
	}
	if len(sink.history) != 1 {
		t.Errorf("history = %d records, want 1", len(sink.history))
	}
}

func TestTickIgnoredForPractice(t *testing.T) {
	s, sink := startTestSession(t, question.TypePractice)

	rec, err := s.Tick(context.Background())
	if err != nil {
		t.Fatalf("tick: %v", err)
	}
	if rec != nil || len(sink.history) != 0 {
		t.Error("practice tick must be a no-op")
	}
}

func TestDoubleSubmitRejected(t *testing.T) {
	s, _ := startTestSession(t, question.TypePractice)
	ctx := context.Background()

	if _, err := s.Submit(ctx, false); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := s.Submit(ctx, false); !errors.Is(err, ErrSessionOver) {
		t.Errorf("second submit: err = %v, want ErrSessionOver", err)
	}
}

func TestTimeSpentFloorsElapsedSeconds(t *testing.T) {
	s, sink := startTestSession(t, question.TypePractice)

	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	s.startedAt = base
	s.now = func() time.Time { return base.Add(95*time.Second + 900*time.Millisecond) }

	if _, err := s.Submit(context.Background(), false); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if got := sink.history[0].TimeSpent; got != 95 {
		t.Errorf("timeSpent = %d, want 95", got)
	}
}

func TestCounts(t *testing.T) {
	s, _ := startTestSession(t, question.TypePractice)

	if err := s.SelectAnswer(s.Questions[0].ID, 0); err != nil {
		t.Fatal(err)
	}
	if err := s.SelectAnswer(s.Questions[1].ID, 1); err != nil {
		t.Fatal(err)
	}
	if err := s.ToggleFlag(s.Questions[4].ID); err != nil {
		t.Fatal(err)
	}

	answered, flagged, unanswered := s.Counts()
	if answered != 2 || flagged != 1 || unanswered != 3 {
		t.Errorf("counts = %d/%d/%d, want 2/1/3", answered, flagged, unanswered)
	}
}

func TestSelectionFromRealBank(t *testing.T) {
	bank, err := question.NewBank()
	if err != nil {
		t.Fatalf("bank: %v", err)
	}
	sink := &recordingSink{}

	s, err := Start(bank, sink, "mutual-funds", "Practice Test 1", question.TypePractice)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	// min(25, pool of 5) = 5.
	if s.Len() != 5 {
		t.Errorf("len = %d, want 5", s.Len())
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{1800, "30:00"},
		{65, "01:05"},
		{0, "00:00"},
		{-5, "00:00"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.secs); got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}
