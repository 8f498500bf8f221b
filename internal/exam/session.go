package exam

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/nismprep/internal/question"
	"github.com/abhisek/nismprep/internal/store"
)

// FinalDurationSecs is the fixed countdown for final-type tests.
const FinalDurationSecs = 1800

// QuestionSource materializes a question set for one session.
type QuestionSource interface {
	Select(moduleID, testID string, tt question.TestType) []question.Question
}

// ResultSink persists one completed attempt. Satisfied by progress.Ledger.
type ResultSink interface {
	AddResult(ctx context.Context, moduleID, testID string, score, timeSpentSecs int, testType string, autoSubmitted bool) (store.ResultRecord, error)
}

// Phase is the session lifecycle state. The reviewing gate before
// submission is presentation-only and not a distinct phase here.
type Phase int

const (
	PhaseActive Phase = iota
	PhaseSubmitted
)

// Session owns the lifecycle of one assessment attempt: navigation,
// answer and flag state, the countdown for final tests, and submission.
// Mutating methods are invoked sequentially by the event loop; once
// Submitted the session is terminal and every mutating call is rejected
// or ignored.
type Session struct {
	// SessionID identifies this attempt for event correlation.
	SessionID string

	ModuleID string
	TestID   string
	Type     question.TestType

	// Questions is the materialized set, fixed at start.
	Questions []question.Question

	sink      ResultSink
	answers   map[string]int
	flags     map[string]bool
	cursor    int
	startedAt time.Time
	remaining int
	phase     Phase

	now func() time.Time
}

// Start validates the parameters, materializes a question set, and
// begins the attempt. An unknown module degrades to a zero-question
// session, which is valid and scores 0%. Final sessions begin the
// 30-minute countdown.
func Start(src QuestionSource, sink ResultSink, moduleID, testID string, tt question.TestType) (*Session, error) {
	if moduleID == "" {
		return nil, fmt.Errorf("%w: module id", ErrMissingParam)
	}
	if testID == "" {
		return nil, fmt.Errorf("%w: test id", ErrMissingParam)
	}
	if tt != question.TypePractice && tt != question.TypeFinal {
		return nil, fmt.Errorf("%w: test type %q", ErrMissingParam, tt)
	}

	s := &Session{
		SessionID: uuid.NewString(),
		ModuleID:  moduleID,
		TestID:    testID,
		Type:      tt,
		Questions: src.Select(moduleID, testID, tt),
		sink:      sink,
		answers:   make(map[string]int),
		flags:     make(map[string]bool),
		now:       time.Now,
	}
	s.startedAt = s.now()
	if tt == question.TypeFinal {
		s.remaining = FinalDurationSecs
	}
	return s, nil
}

// Submitted reports whether the session has reached its terminal state.
func (s *Session) Submitted() bool {
	return s.phase == PhaseSubmitted
}

// Len returns the question count.
func (s *Session) Len() int {
	return len(s.Questions)
}

// Cursor returns the zero-based index of the current question.
func (s *Session) Cursor() int {
	return s.cursor
}

// CurrentQuestion returns the question under the cursor. ok is false
// for a zero-question session.
func (s *Session) CurrentQuestion() (question.Question, bool) {
	if len(s.Questions) == 0 {
		return question.Question{}, false
	}
	return s.Questions[s.cursor], true
}

// SelectAnswer records the option choice for a question, overwriting
// any prior choice. The cursor and countdown are unaffected.
func (s *Session) SelectAnswer(questionID string, optionIndex int) error {
	if s.phase == PhaseSubmitted {
		return ErrSessionOver
	}
	q, ok := s.find(questionID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownQuestion, questionID)
	}
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return fmt.Errorf("%w: %d for question %s", ErrInvalidOption, optionIndex, questionID)
	}
	s.answers[questionID] = optionIndex
	return nil
}

// Answer returns the recorded option index for a question.
func (s *Session) Answer(questionID string) (int, bool) {
	idx, ok := s.answers[questionID]
	return idx, ok
}

// Navigate moves the cursor by delta, clamped to the question set.
// Out-of-range moves and calls on a submitted session are no-ops.
func (s *Session) Navigate(delta int) {
	if s.phase == PhaseSubmitted {
		return
	}
	next := s.cursor + delta
	if next < 0 || next >= len(s.Questions) {
		return
	}
	s.cursor = next
}

// ToggleFlag marks or unmarks a question for review. Advisory only; no
// effect on scoring.
func (s *Session) ToggleFlag(questionID string) error {
	if s.phase == PhaseSubmitted {
		return ErrSessionOver
	}
	if _, ok := s.find(questionID); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownQuestion, questionID)
	}
	if s.flags[questionID] {
		delete(s.flags, questionID)
	} else {
		s.flags[questionID] = true
	}
	return nil
}

// Flagged reports whether a question is flagged.
func (s *Session) Flagged(questionID string) bool {
	return s.flags[questionID]
}

// Remaining returns the countdown seconds left. Always 0 for practice
// sessions, which are untimed.
func (s *Session) Remaining() int {
	return s.remaining
}

// Tick advances the countdown by one second. Practice sessions and
// stale ticks arriving after submission are no-ops. When the countdown
// reaches zero the session submits itself; the resulting record is
// returned so the caller can transition to the results view, alongside
// any persistence error from the write.
func (s *Session) Tick(ctx context.Context) (*store.ResultRecord, error) {
	if s.Type != question.TypeFinal || s.phase == PhaseSubmitted {
		return nil, nil
	}
	if s.remaining > 0 {
		s.remaining--
	}
	if s.remaining > 0 {
		return nil, nil
	}
	rec, err := s.Submit(ctx, true)
	return &rec, err
}

// Submit finalizes the attempt: scores the recorded answers, stops the
// countdown, writes one result record through the sink, and transitions
// to the terminal state. A second call returns ErrSessionOver.
func (s *Session) Submit(ctx context.Context, auto bool) (store.ResultRecord, error) {
	if s.phase == PhaseSubmitted {
		return store.ResultRecord{}, ErrSessionOver
	}

	score := s.Score()
	timeSpent := int(math.Floor(s.now().Sub(s.startedAt).Seconds()))

	// Terminal before the ledger write: even if persistence fails, no
	// further mutations may touch this attempt.
	s.phase = PhaseSubmitted
	s.remaining = 0

	rec, err := s.sink.AddResult(ctx, s.ModuleID, s.TestID, score, timeSpent, string(s.Type), auto)
	if err != nil {
		return rec, fmt.Errorf("record result: %w", err)
	}
	return rec, nil
}

// Score computes the rounded percentage of correct answers. Unanswered
// questions count as incorrect; a zero-question session scores 0.
func (s *Session) Score() int {
	n := len(s.Questions)
	if n == 0 {
		return 0
	}
	correct := 0
	for _, q := range s.Questions {
		if idx, ok := s.answers[q.ID]; ok && idx == q.Correct {
			correct++
		}
	}
	return int(math.Round(100 * float64(correct) / float64(n)))
}

// Counts returns the answered, flagged, and unanswered totals for the
// pre-submit confirmation view.
func (s *Session) Counts() (answered, flagged, unanswered int) {
	answered = len(s.answers)
	flagged = len(s.flags)
	unanswered = len(s.Questions) - answered
	return answered, flagged, unanswered
}

// Clock formats the remaining countdown as MM:SS.
func (s *Session) Clock() string {
	return FormatClock(s.remaining)
}

// FormatClock renders a second count as MM:SS.
func FormatClock(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func (s *Session) find(questionID string) (question.Question, bool) {
	for _, q := range s.Questions {
		if q.ID == questionID {
			return q, true
		}
	}
	return question.Question{}, false
}
