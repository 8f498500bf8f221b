package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/nismprep/internal/account"
	"github.com/abhisek/nismprep/internal/explain"
	"github.com/abhisek/nismprep/internal/progress"
	"github.com/abhisek/nismprep/internal/question"
	"github.com/abhisek/nismprep/internal/router"
	"github.com/abhisek/nismprep/internal/screen"
	"github.com/abhisek/nismprep/internal/screens/history"
	"github.com/abhisek/nismprep/internal/screens/modulepick"
	"github.com/abhisek/nismprep/internal/store"
	"github.com/abhisek/nismprep/internal/ui/components"
	"github.com/abhisek/nismprep/internal/ui/theme"
)

const recentLimit = 3

// HomeScreen is the candidate dashboard.
type HomeScreen struct {
	ledger *progress.Ledger
	menu   components.Menu

	candidateName string
	plan          string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.HeaderStatusProvider = (*HomeScreen)(nil)

// New creates the dashboard screen.
func New(ledger *progress.Ledger, bank *question.Bank, accounts *account.Service, explainer *explain.Service) *HomeScreen {
	var name, plan string
	if accounts != nil {
		if profile, err := accounts.Current(context.Background()); err == nil && profile != nil {
			name = profile.FullName()
			plan = profile.Plan
		}
	}

	items := []components.MenuItem{
		{Label: "PRACTICE TEST", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: modulepick.New(bank, ledger, explainer, question.TypePractice),
				}
			}
		}},
		{Label: "FINAL EXAM", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: modulepick.New(bank, ledger, explainer, question.TypeFinal),
				}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(ledger)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		ledger:        ledger,
		menu:          components.NewMenu(items),
		candidateName: name,
		plan:          plan,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Dashboard"
}

func (h *HomeScreen) HeaderStatus() string {
	if h.candidateName == "" {
		return ""
	}
	return h.candidateName + " · " + h.plan
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	compact := height < 26 || width < 100

	var sections []string

	sections = append(sections, renderStatsBar(h.ledger, cw))
	if !compact {
		sections = append(sections, renderModuleCards(h.ledger, cw))
		sections = append(sections, renderRecentActivity(h.ledger, cw))
	}
	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderStatsBar shows the lifetime aggregates in one row.
func renderStatsBar(ledger *progress.Ledger, cw int) string {
	stat := func(value, label string) string {
		v := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Align(lipgloss.Center).Render(value)
		l := lipgloss.NewStyle().Foreground(theme.TextDim).Align(lipgloss.Center).Render(label)
		return lipgloss.JoinVertical(lipgloss.Center, v, l)
	}

	cols := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(cw/3).Align(lipgloss.Center).Render(stat(fmt.Sprintf("%d", ledger.TotalTests()), "tests taken")),
		lipgloss.NewStyle().Width(cw/3).Align(lipgloss.Center).Render(stat(fmt.Sprintf("%d%%", ledger.AverageScore()), "average score")),
		lipgloss.NewStyle().Width(cw/3).Align(lipgloss.Center).Render(stat(fmt.Sprintf("%dh", ledger.TimeSpentHours()), "time studied")),
	)

	return components.Card(cols, cw)
}

// renderModuleCards shows one row per exam module with its progress bar.
func renderModuleCards(ledger *progress.Ledger, cw int) string {
	var rows []string
	for _, mod := range question.Catalog() {
		mp := ledger.ModuleProgress(mod.ID)

		bar := components.NewProgressBar("", float64(mp.Progress)/100, true, cw-28)
		nameStyle := lipgloss.NewStyle().Foreground(theme.Text).Width(24)

		row := nameStyle.Render(mod.Name) + bar.View()
		rows = append(rows, row)
		rows = append(rows, lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d of %d tests completed", len(mp.Completed), mod.TestCount())))
	}

	return components.Card(strings.Join(rows, "\n"), cw)
}

// renderRecentActivity shows the last few results.
func renderRecentActivity(ledger *progress.Ledger, cw int) string {
	recent := ledger.GetRecentActivity(recentLimit)
	if len(recent) == 0 {
		return components.Card(theme.Hint.Render("No tests yet. Start with a practice test."), cw)
	}

	var rows []string
	for _, rec := range recent {
		rows = append(rows, recentLine(rec))
	}
	return components.Card(strings.Join(rows, "\n"), cw)
}

func recentLine(rec store.ResultRecord) string {
	modName := rec.ModuleID
	if mod, ok := question.ModuleByID(rec.ModuleID); ok {
		modName = mod.Name
	}

	scoreStyle := theme.Correct
	if rec.Score < 60 {
		scoreStyle = theme.Incorrect
	}

	label := fmt.Sprintf("%s · %s %s", modName, rec.TestType, rec.TestID)
	return lipgloss.NewStyle().Foreground(theme.Text).Render(label) +
		"  " + scoreStyle.Render(fmt.Sprintf("%d%%", rec.Score))
}
