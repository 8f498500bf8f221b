package history

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	engine "github.com/abhisek/nismprep/internal/exam"
	"github.com/abhisek/nismprep/internal/progress"
	"github.com/abhisek/nismprep/internal/question"
	"github.com/abhisek/nismprep/internal/router"
	"github.com/abhisek/nismprep/internal/screen"
	"github.com/abhisek/nismprep/internal/store"
	"github.com/abhisek/nismprep/internal/ui/layout"
	"github.com/abhisek/nismprep/internal/ui/theme"
)

const historyLimit = 50

// HistoryScreen lists past test attempts, newest first.
type HistoryScreen struct {
	results  []store.ResultRecord
	selected int
	expanded map[int]bool
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen over the ledger's recorded results.
func New(ledger *progress.Ledger) *HistoryScreen {
	return &HistoryScreen{
		results:  ledger.GetRecentActivity(historyLimit),
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.results)-1 {
			s.selected++
		}
	case "enter":
		s.expanded[s.selected] = !s.expanded[s.selected]
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if len(s.results) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No tests yet. Start with a practice test!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, rec := range s.results {
		dateStr := rec.Date
		if t, err := time.Parse(time.RFC3339, rec.Date); err == nil {
			dateStr = t.Local().Format("Jan 02, 2006")
		}

		modName := rec.ModuleID
		if mod, ok := question.ModuleByID(rec.ModuleID); ok {
			modName = mod.Name
		}

		autoStr := ""
		if rec.AutoSubmitted {
			autoStr = "  ⏱ auto"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %s %s  %d%%%s",
			prefix, dateStr, modName, rec.TestType, testNumber(rec.TestID), rec.Score, autoStr)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := fmt.Sprintf("    time %s · submitted %s",
				engine.FormatClock(rec.TimeSpent), dateStr)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// testNumber strips the type prefix from a test id like "practice-3".
func testNumber(testID string) string {
	if i := strings.LastIndex(testID, "-"); i >= 0 {
		return "#" + testID[i+1:]
	}
	return testID
}
