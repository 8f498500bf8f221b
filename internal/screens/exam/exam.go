package exam

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	engine "github.com/abhisek/nismprep/internal/exam"
	"github.com/abhisek/nismprep/internal/explain"
	"github.com/abhisek/nismprep/internal/progress"
	"github.com/abhisek/nismprep/internal/question"
	"github.com/abhisek/nismprep/internal/router"
	"github.com/abhisek/nismprep/internal/screen"
	"github.com/abhisek/nismprep/internal/screens/results"
	"github.com/abhisek/nismprep/internal/store"
	"github.com/abhisek/nismprep/internal/ui/components"
	"github.com/abhisek/nismprep/internal/ui/layout"
	"github.com/abhisek/nismprep/internal/ui/theme"
)

type timerTickMsg time.Time

// ExamScreen drives one test attempt from first question to submission.
type ExamScreen struct {
	sess      *engine.Session
	ledger    *progress.Ledger
	explainer *explain.Service
	moduleID  string

	options     components.OptionList
	confirmOpen bool
	errMsg      string
}

var _ screen.Screen = (*ExamScreen)(nil)
var _ screen.KeyHintProvider = (*ExamScreen)(nil)
var _ screen.EscHandler = (*ExamScreen)(nil)
var _ screen.HeaderStatusProvider = (*ExamScreen)(nil)

// New starts a session over the bank's question set for this test.
func New(bank *question.Bank, ledger *progress.Ledger, explainer *explain.Service, moduleID, testID string, tt question.TestType) *ExamScreen {
	s := &ExamScreen{
		ledger:    ledger,
		explainer: explainer,
		moduleID:  moduleID,
	}

	sess, err := engine.Start(bank, ledger, moduleID, testID, tt)
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.sess = sess
	s.syncOptions()
	return s
}

func (s *ExamScreen) Init() tea.Cmd {
	if s.sess != nil && s.sess.Type == question.TypeFinal {
		return tickCmd()
	}
	return nil
}

func (s *ExamScreen) Title() string {
	if s.sess != nil && s.sess.Type == question.TypeFinal {
		return "Final Exam"
	}
	return "Practice Test"
}

// HeaderStatus shows the countdown on timed tests and the answered
// count otherwise.
func (s *ExamScreen) HeaderStatus() string {
	if s.sess == nil {
		return ""
	}
	answered, _, _ := s.sess.Counts()
	if s.sess.Type == question.TypeFinal {
		return fmt.Sprintf("⏱ %s · %d/%d", s.sess.Clock(), answered, s.sess.Len())
	}
	return fmt.Sprintf("%d/%d answered", answered, s.sess.Len())
}

// HandlesEsc keeps the app from popping the screen mid-test; Esc opens
// the submit dialog instead.
func (s *ExamScreen) HandlesEsc() bool {
	return s.sess != nil && !s.sess.Submitted()
}

func (s *ExamScreen) KeyHints() []layout.KeyHint {
	if s.confirmOpen {
		return []layout.KeyHint{
			{Key: "Y", Description: "Submit"},
			{Key: "N", Description: "Keep going"},
			{Key: "Q", Description: "Abandon"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Option"},
		{Key: "Enter", Description: "Answer"},
		{Key: "←→", Description: "Question"},
		{Key: "F", Description: "Flag"},
		{Key: "S", Description: "Submit"},
	}
}

func (s *ExamScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTick()
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *ExamScreen) handleTick() (screen.Screen, tea.Cmd) {
	if s.sess == nil || s.sess.Submitted() {
		return s, nil
	}

	rec, err := s.sess.Tick(context.Background())
	if rec != nil {
		// Time expired; the engine recorded the attempt.
		return s, s.showResults(*rec, err)
	}
	return s, tickCmd()
}

func (s *ExamScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.sess == nil || s.sess.Submitted() {
		return s, nil
	}

	if s.confirmOpen {
		switch key {
		case "y", "Y", "enter":
			s.confirmOpen = false
			return s.submit()
		case "n", "N", "esc":
			s.confirmOpen = false
		case "q", "Q":
			// Abandon without recording a result.
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	switch key {
	case "esc", "s", "S":
		s.confirmOpen = true
		return s, nil
	case "left", "h":
		s.sess.Navigate(-1)
		s.syncOptions()
		return s, nil
	case "right", "l":
		s.sess.Navigate(1)
		s.syncOptions()
		return s, nil
	case "f", "F":
		if q, ok := s.sess.CurrentQuestion(); ok {
			_ = s.sess.ToggleFlag(q.ID)
		}
		return s, nil
	case "enter":
		return s, s.choose(s.options.Cursor)
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		return s, s.choose(idx)
	}

	var cmd tea.Cmd
	s.options, cmd = s.options.Update(msg)
	return s, cmd
}

// choose persists the answer for the current question and advances.
func (s *ExamScreen) choose(idx int) tea.Cmd {
	q, ok := s.sess.CurrentQuestion()
	if !ok {
		return nil
	}
	if err := s.sess.SelectAnswer(q.ID, idx); err != nil {
		return nil
	}

	if s.sess.Cursor() < s.sess.Len()-1 {
		s.sess.Navigate(1)
		s.syncOptions()
	} else {
		s.options.Chosen = idx
		s.options.Cursor = idx
	}
	return nil
}

func (s *ExamScreen) submit() (screen.Screen, tea.Cmd) {
	// The ledger keeps the in-memory record even when the write fails,
	// so a persist error still lands on the results screen, flagged.
	rec, err := s.sess.Submit(context.Background(), false)
	return s, s.showResults(rec, err)
}

// showResults replaces this screen so Esc from results does not land
// back on a finished test.
func (s *ExamScreen) showResults(rec store.ResultRecord, persistErr error) tea.Cmd {
	sess := s.sess
	explainer := s.explainer
	return func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: results.New(sess, rec, explainer, persistErr),
		}
	}
}

// syncOptions rebuilds the option list for the question under the cursor.
func (s *ExamScreen) syncOptions() {
	q, ok := s.sess.CurrentQuestion()
	if !ok {
		s.options = components.NewOptionList(nil)
		return
	}

	s.options = components.NewOptionList(q.Options)
	if idx, answered := s.sess.Answer(q.ID); answered {
		s.options.Chosen = idx
		s.options.Cursor = idx
	}
}

func (s *ExamScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render("Could not start test: "+s.errMsg+"\n\npress any key to go back"))
	}
	if s.sess == nil {
		return ""
	}

	if s.confirmOpen {
		return s.renderConfirm(width, height)
	}

	cw := components.ContentWidth(width)

	q, ok := s.sess.CurrentQuestion()
	if !ok {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("This test has no questions. Press S to close it."))
	}

	var sections []string

	counter := fmt.Sprintf("Question %d of %d", s.sess.Cursor()+1, s.sess.Len())
	if s.sess.Flagged(q.ID) {
		counter += "  " + theme.Flagged.Render("⚑ flagged")
	}
	sections = append(sections, lipgloss.NewStyle().Foreground(theme.TextDim).Render(counter))

	prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(cw).Render(q.Prompt)
	sections = append(sections, prompt)
	sections = append(sections, s.options.View())
	sections = append(sections, s.renderNavigator(cw))

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderNavigator draws one marker per question: answered, flagged,
// or untouched, with the cursor bracketed.
func (s *ExamScreen) renderNavigator(cw int) string {
	var b strings.Builder
	for i, q := range s.sess.Questions {
		_, answered := s.sess.Answer(q.ID)

		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		switch {
		case s.sess.Flagged(q.ID):
			style = theme.Flagged
		case answered:
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		}

		cell := fmt.Sprintf(" %d ", i+1)
		if i == s.sess.Cursor() {
			cell = fmt.Sprintf("[%d]", i+1)
			style = style.Bold(true).Foreground(theme.Primary)
		}
		b.WriteString(style.Render(cell))
	}

	return lipgloss.NewStyle().Width(cw).Render(b.String())
}

func (s *ExamScreen) renderConfirm(width, height int) string {
	answered, flagged, unanswered := s.sess.Counts()

	var lines []string
	lines = append(lines, theme.Title.Render("Submit this test?"))
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("Answered    %d", answered))
	lines = append(lines, fmt.Sprintf("Flagged     %d", flagged))
	lines = append(lines, fmt.Sprintf("Unanswered  %d", unanswered))
	if s.sess.Type == question.TypeFinal {
		lines = append(lines, "")
		lines = append(lines, theme.Hint.Render("Time left: "+s.sess.Clock()))
	}
	lines = append(lines, "")
	lines = append(lines, theme.Hint.Render("Y submit · N keep going · Q abandon"))

	card := theme.Card.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
