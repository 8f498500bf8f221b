package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/nismprep/internal/account"
	"github.com/abhisek/nismprep/internal/explain"
	"github.com/abhisek/nismprep/internal/progress"
	"github.com/abhisek/nismprep/internal/question"
	"github.com/abhisek/nismprep/internal/router"
	"github.com/abhisek/nismprep/internal/screen"
	"github.com/abhisek/nismprep/internal/screens/home"
	"github.com/abhisek/nismprep/internal/screens/welcome"
	"github.com/abhisek/nismprep/internal/store"
	"github.com/abhisek/nismprep/internal/ui/layout"
)

// Options carries the services the TUI screens depend on.
type Options struct {
	Store    *store.Store
	Ledger   *progress.Ledger
	Bank     *question.Bank
	Accounts *account.Service

	// Explainer is nil when no LLM provider is configured; the results
	// screen degrades to stored explanations only.
	Explainer *explain.Service

	Version string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates the root model. Unregistered candidates land on
// the welcome screen, everyone else goes straight to the dashboard.
func newAppModel(opts Options, profile *account.Profile) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(opts.Ledger, opts.Bank, opts.Accounts, opts.Explainer)
	}

	var initial screen.Screen
	if profile == nil {
		initial = welcome.New(opts.Accounts, homeFactory)
	} else {
		initial = homeFactory()
	}

	return AppModel{
		router: router.New(initial),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscHandler); ok && h.HandlesEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	status := ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.HeaderStatusProvider); ok {
			status = sp.HeaderStatus()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	profile, err := opts.Accounts.Current(context.Background())
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}

	p := tea.NewProgram(newAppModel(opts, profile))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
