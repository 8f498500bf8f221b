package results

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	engine "github.com/abhisek/nismprep/internal/exam"
	"github.com/abhisek/nismprep/internal/explain"
	"github.com/abhisek/nismprep/internal/question"
	"github.com/abhisek/nismprep/internal/router"
	"github.com/abhisek/nismprep/internal/screen"
	"github.com/abhisek/nismprep/internal/store"
	"github.com/abhisek/nismprep/internal/ui/components"
	"github.com/abhisek/nismprep/internal/ui/layout"
	"github.com/abhisek/nismprep/internal/ui/theme"
)

type explainPollMsg struct{}

const pollInterval = 150 * time.Millisecond

// ResultsScreen shows the score and a per-question review of a
// submitted test.
type ResultsScreen struct {
	sess      *engine.Session
	rec       store.ResultRecord
	explainer *explain.Service

	selected   int
	moduleName string

	// AI explanations by question ID, filled on demand.
	explanations map[string]*explain.Explanation
	pendingID    string
	explainErr   string
	persistErr   string
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the results screen for a submitted session.
func New(sess *engine.Session, rec store.ResultRecord, explainer *explain.Service, persistErr error) *ResultsScreen {
	modName := rec.ModuleID
	if mod, ok := question.ModuleByID(rec.ModuleID); ok {
		modName = mod.Name
	}

	s := &ResultsScreen{
		sess:         sess,
		rec:          rec,
		explainer:    explainer,
		moduleName:   modName,
		explanations: make(map[string]*explain.Explanation),
	}
	if persistErr != nil {
		s.persistErr = persistErr.Error()
	}
	return s
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Review"},
	}
	if s.explainer != nil {
		hints = append(hints, layout.KeyHint{Key: "E", Description: "Explain with AI"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Done"})
	return hints
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case explainPollMsg:
		return s.handlePoll()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.sess.Questions)-1 {
				s.selected++
			}
		case "e", "E":
			return s.requestExplanation()
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ResultsScreen) requestExplanation() (screen.Screen, tea.Cmd) {
	if s.explainer == nil || s.pendingID != "" || len(s.sess.Questions) == 0 {
		return s, nil
	}

	q := s.sess.Questions[s.selected]
	if _, done := s.explanations[q.ID]; done {
		return s, nil
	}

	chosen := -1
	if idx, ok := s.sess.Answer(q.ID); ok {
		chosen = idx
	}

	s.pendingID = q.ID
	s.explainErr = ""
	s.explainer.Request(context.Background(), explain.Input{
		Question:    q,
		ChosenIndex: chosen,
		ModuleName:  s.moduleName,
	})
	return s, pollCmd()
}

func (s *ResultsScreen) handlePoll() (screen.Screen, tea.Cmd) {
	if s.pendingID == "" {
		return s, nil
	}

	if exp, ok := s.explainer.Consume(); ok {
		s.explanations[s.pendingID] = exp
		s.pendingID = ""
		return s, nil
	}
	if err := s.explainer.Err(); err != nil {
		s.explainErr = err.Error()
		s.pendingID = ""
		return s, nil
	}
	return s, pollCmd()
}

func (s *ResultsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, s.renderSummary(cw))
	if s.persistErr != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Warning).
			Render("⚠ Result could not be saved: "+s.persistErr))
	}
	if len(s.sess.Questions) > 0 {
		sections = append(sections, s.renderReview(cw))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *ResultsScreen) renderSummary(cw int) string {
	scoreStyle := theme.Correct
	verdict := "Pass"
	if s.rec.Score < 60 {
		scoreStyle = theme.Incorrect
		verdict = "Keep practicing"
	}

	var lines []string
	lines = append(lines, theme.Title.Render(s.moduleName))
	lines = append(lines, "")
	lines = append(lines, scoreStyle.Render(fmt.Sprintf("Score: %d%%", s.rec.Score))+
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("  ·  "+verdict))
	lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Time: %s", engine.FormatClock(s.rec.TimeSpent))))
	if s.rec.AutoSubmitted {
		lines = append(lines, theme.Flagged.Render("Submitted automatically when time ran out"))
	}

	return components.Card(strings.Join(lines, "\n"), cw)
}

// renderReview shows the selected question with the correct answer,
// the candidate's answer, and any explanation.
func (s *ResultsScreen) renderReview(cw int) string {
	q := s.sess.Questions[s.selected]

	chosen := -1
	if idx, ok := s.sess.Answer(q.ID); ok {
		chosen = idx
	}

	opts := components.NewOptionList(q.Options)
	opts.Review = true
	opts.Correct = q.Correct
	opts.Chosen = chosen

	var lines []string
	marker := theme.Correct.Render("✓")
	if chosen != q.Correct {
		marker = theme.Incorrect.Render("✗")
	}
	lines = append(lines, fmt.Sprintf("%s Question %d of %d", marker, s.selected+1, len(s.sess.Questions)))
	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(cw-6).Render(q.Prompt))
	lines = append(lines, "")
	lines = append(lines, opts.View())

	if q.Explanation != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw-6).Render(q.Explanation))
	}

	lines = append(lines, s.renderExplanation(q, cw)...)

	return components.Card(strings.Join(lines, "\n"), cw)
}

func (s *ResultsScreen) renderExplanation(q question.Question, cw int) []string {
	var lines []string

	switch {
	case s.pendingID == q.ID:
		lines = append(lines, "")
		lines = append(lines, theme.Hint.Render("Asking the tutor..."))
	case s.explainErr != "":
		lines = append(lines, "")
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Error).Render("Explanation failed: "+s.explainErr))
	default:
		if exp, ok := s.explanations[q.ID]; ok {
			wrap := lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 6)
			lines = append(lines, "")
			lines = append(lines, theme.Subtitle.Render("— Tutor —"))
			lines = append(lines, wrap.Render(exp.Summary))
			lines = append(lines, "")
			lines = append(lines, wrap.Render(exp.Reasoning))
			lines = append(lines, "")
			lines = append(lines, theme.Flagged.Render("Tip: ")+wrap.Render(exp.ExamTip))
		}
	}

	return lines
}

func pollCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(time.Time) tea.Msg {
		return explainPollMsg{}
	})
}
