package explain

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/abhisek/nismprep/internal/llm"
	"github.com/abhisek/nismprep/internal/question"
)

// Explanation is an LLM-expanded walkthrough of one missed question.
type Explanation struct {
	QuestionID string

	// Summary restates why the correct option is right, in one or two
	// sentences.
	Summary string

	// Reasoning works through the question step by step.
	Reasoning string

	// ExamTip is a short pointer for remembering the concept.
	ExamTip string
}

// Input describes the missed question to expand on.
type Input struct {
	Question question.Question

	// ChosenIndex is the candidate's answer, or -1 if unanswered.
	ChosenIndex int

	ModuleName string
}

// Config bounds generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns generation settings suited to short explanations.
func DefaultConfig() Config {
	return Config{MaxTokens: 600, Temperature: 0.3}
}

// Service expands stored answer explanations on demand, asynchronously
// so the results screen never blocks on a network call. One request is
// in-flight at a time; a new request replaces the pending result.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending *Explanation
	err     error
	ready   bool
}

// NewService creates an explanation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Request starts async generation for one missed question.
func (s *Service) Request(ctx context.Context, input Input) {
	s.mu.Lock()
	s.err = nil
	s.mu.Unlock()
	go func() {
		exp, err := s.generate(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = exp
		s.err = err
		s.ready = true
	}()
}

// Consume returns the pending explanation if one is ready.
// Returns (nil, false) while generation is still in flight.
// After consumption, the pending slot is cleared.
func (s *Service) Consume() (*Explanation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	exp := s.pending
	s.pending = nil
	s.ready = false
	return exp, exp != nil
}

// Err returns the failure from the most recent completed generation.
// Reset by the next Request.
func (s *Service) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

type explanationOutput struct {
	Summary   string `json:"summary"`
	Reasoning string `json:"reasoning"`
	ExamTip   string `json:"exam_tip"`
}

func (s *Service) generate(ctx context.Context, input Input) (*Explanation, error) {
	ctx = llm.WithPurpose(ctx, "explanation")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      ExplanationSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("explanation generation: %w", err)
	}

	var out explanationOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse explanation response: %w", err)
	}

	return &Explanation{
		QuestionID: input.Question.ID,
		Summary:    out.Summary,
		Reasoning:  out.Reasoning,
		ExamTip:    out.ExamTip,
	}, nil
}
