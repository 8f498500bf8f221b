package welcome

import (
	"context"
	"errors"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/nismprep/internal/account"
	"github.com/abhisek/nismprep/internal/router"
	"github.com/abhisek/nismprep/internal/screen"
	"github.com/abhisek/nismprep/internal/ui/layout"
	"github.com/abhisek/nismprep/internal/ui/theme"
)

const (
	fieldFirstName = iota
	fieldLastName
	fieldEmail
	fieldPassword
	fieldConfirm
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"First name",
	"Last name",
	"Email",
	"Password",
	"Confirm password",
}

type registeredMsg struct {
	Err error
}

// WelcomeScreen collects the candidate profile on first launch.
type WelcomeScreen struct {
	accounts    *account.Service
	homeFactory func() screen.Screen

	inputs   [fieldCount]textinput.Model
	focused  int
	errMsg   string
	errField string
	busy     bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates the registration screen. On success it replaces itself
// with the screen produced by homeFactory.
func New(accounts *account.Service, homeFactory func() screen.Screen) *WelcomeScreen {
	w := &WelcomeScreen{
		accounts:    accounts,
		homeFactory: homeFactory,
	}

	for i := range w.inputs {
		ti := textinput.New()
		ti.Placeholder = fieldLabels[i]
		ti.CharLimit = 64
		if i == fieldPassword || i == fieldConfirm {
			ti.EchoMode = textinput.EchoPassword
		}
		w.inputs[i] = ti
	}
	w.inputs[fieldFirstName].Focus()

	return w
}

func (w *WelcomeScreen) Title() string {
	return "Welcome"
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Register"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case registeredMsg:
		w.busy = false
		if msg.Err != nil {
			var fe *account.FieldError
			if errors.As(msg.Err, &fe) {
				w.errField = fe.Field
				w.errMsg = fe.Msg
			} else {
				w.errField = ""
				w.errMsg = msg.Err.Error()
			}
			return w, nil
		}
		return w, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: w.homeFactory()}
		}

	case tea.KeyMsg:
		if w.busy {
			return w, nil
		}
		switch msg.String() {
		case "tab", "down":
			return w, w.focusField((w.focused + 1) % fieldCount)
		case "shift+tab", "up":
			return w, w.focusField((w.focused + fieldCount - 1) % fieldCount)
		case "enter":
			if w.focused < fieldCount-1 {
				return w, w.focusField(w.focused + 1)
			}
			return w, w.register()
		}
	}

	var cmd tea.Cmd
	w.inputs[w.focused], cmd = w.inputs[w.focused].Update(msg)
	return w, cmd
}

func (w *WelcomeScreen) focusField(i int) tea.Cmd {
	w.inputs[w.focused].Blur()
	w.focused = i
	return w.inputs[i].Focus()
}

func (w *WelcomeScreen) register() tea.Cmd {
	w.busy = true
	w.errMsg = ""
	w.errField = ""

	firstName := w.inputs[fieldFirstName].Value()
	lastName := w.inputs[fieldLastName].Value()
	email := w.inputs[fieldEmail].Value()
	password := w.inputs[fieldPassword].Value()
	confirm := w.inputs[fieldConfirm].Value()

	return func() tea.Msg {
		_, err := w.accounts.Register(context.Background(), firstName, lastName, email, password, confirm)
		return registeredMsg{Err: err}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Render("NISM Prep"))
	sections = append(sections, theme.Subtitle.Render("Mock tests for NISM certification exams"))
	sections = append(sections, "")

	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Width(18)
	focusedLabel := labelStyle.Foreground(theme.Primary).Bold(true)

	for i := range w.inputs {
		style := labelStyle
		if i == w.focused {
			style = focusedLabel
		}
		line := style.Render(fieldLabels[i]) + " " + w.inputs[i].View()
		if w.errField != "" && strings.EqualFold(fieldLabels[i], w.errField) {
			line += "  " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗ "+w.errMsg)
		}
		sections = append(sections, line)
	}

	if w.errMsg != "" && w.errField == "" {
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).Render(w.errMsg))
	}

	if w.busy {
		sections = append(sections, "")
		sections = append(sections, theme.Hint.Render("Creating your profile..."))
	} else {
		sections = append(sections, "")
		sections = append(sections, theme.Hint.Render("Your details stay on this machine."))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
