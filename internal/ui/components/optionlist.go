package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/nismprep/internal/ui/theme"
)

var optionLabels = []string{"A", "B", "C", "D", "E", "F"}

// OptionList presents the answer options of one exam question.
// During a test it tracks a cursor and the persisted choice without
// revealing correctness; in review mode it highlights the correct
// option and the candidate's answer instead.
type OptionList struct {
	Options []string
	Cursor  int

	// Chosen is the persisted answer index, or -1 when unanswered.
	Chosen int

	// Review switches to post-submission rendering.
	Review  bool
	Correct int
}

// NewOptionList creates an option list with no answer chosen.
func NewOptionList(options []string) OptionList {
	return OptionList{
		Options: options,
		Chosen:  -1,
		Correct: -1,
	}
}

// Update handles cursor movement. Choosing is left to the caller so
// the selection can be validated before it sticks.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.Review {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	}

	return o, nil
}

// View renders the option list.
func (o OptionList) View() string {
	var s string

	for i, opt := range o.Options {
		label := "?"
		if i < len(optionLabels) {
			label = optionLabels[i]
		}

		prefix := "  "
		if !o.Review && i == o.Cursor {
			prefix = "▸ "
		}

		marker := " "
		if i == o.Chosen {
			marker = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, label, opt)

		s += o.lineStyle(i).Render(line) + "\n"
	}

	return s
}

func (o OptionList) lineStyle(i int) lipgloss.Style {
	if o.Review {
		switch i {
		case o.Correct:
			return theme.Correct
		case o.Chosen:
			return theme.Incorrect
		default:
			return lipgloss.NewStyle().Foreground(theme.TextDim)
		}
	}

	switch {
	case i == o.Cursor:
		return theme.Selected
	case i == o.Chosen:
		return lipgloss.NewStyle().Foreground(theme.Secondary)
	default:
		return theme.Unselected
	}
}
