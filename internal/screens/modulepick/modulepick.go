package modulepick

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/nismprep/internal/explain"
	"github.com/abhisek/nismprep/internal/progress"
	"github.com/abhisek/nismprep/internal/question"
	"github.com/abhisek/nismprep/internal/router"
	"github.com/abhisek/nismprep/internal/screen"
	examscreen "github.com/abhisek/nismprep/internal/screens/exam"
	"github.com/abhisek/nismprep/internal/ui/components"
	"github.com/abhisek/nismprep/internal/ui/layout"
	"github.com/abhisek/nismprep/internal/ui/theme"
)

type stage int

const (
	stageModule stage = iota
	stageTest
)

// PickScreen walks the candidate from module to test number before a
// session starts.
type PickScreen struct {
	bank      *question.Bank
	ledger    *progress.Ledger
	explainer *explain.Service
	testType  question.TestType

	modules []question.Module
	stage   stage
	modIdx  int
	testIdx int
}

var _ screen.Screen = (*PickScreen)(nil)
var _ screen.KeyHintProvider = (*PickScreen)(nil)

// New creates the picker for one test type.
func New(bank *question.Bank, ledger *progress.Ledger, explainer *explain.Service, tt question.TestType) *PickScreen {
	return &PickScreen{
		bank:      bank,
		ledger:    ledger,
		explainer: explainer,
		testType:  tt,
		modules:   question.Catalog(),
	}
}

func (p *PickScreen) Init() tea.Cmd {
	return nil
}

func (p *PickScreen) Title() string {
	if p.testType == question.TypeFinal {
		return "Final Exam"
	}
	return "Practice Test"
}

func (p *PickScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

// testCount returns how many tests of this type the selected module has.
func (p *PickScreen) testCount() int {
	mod := p.modules[p.modIdx]
	if p.testType == question.TypeFinal {
		return mod.FinalTests
	}
	return mod.PracticeTests
}

func (p *PickScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if p.stage == stageModule && p.modIdx > 0 {
			p.modIdx--
		}
		if p.stage == stageTest && p.testIdx > 0 {
			p.testIdx--
		}
	case "down", "j":
		if p.stage == stageModule && p.modIdx < len(p.modules)-1 {
			p.modIdx++
		}
		if p.stage == stageTest && p.testIdx < p.testCount()-1 {
			p.testIdx++
		}
	case "esc":
		if p.stage == stageTest {
			p.stage = stageModule
			p.testIdx = 0
			return p, nil
		}
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	case "enter":
		if p.stage == stageModule {
			p.stage = stageTest
			p.testIdx = 0
			return p, nil
		}
		mod := p.modules[p.modIdx]
		testID := fmt.Sprintf("%s-%d", p.testType, p.testIdx+1)
		return p, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: examscreen.New(p.bank, p.ledger, p.explainer, mod.ID, testID, p.testType),
			}
		}
	}

	return p, nil
}

// HandlesEsc keeps the test-number stage from popping the whole screen.
func (p *PickScreen) HandlesEsc() bool {
	return true
}

func (p *PickScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string
	if p.stage == stageModule {
		sections = append(sections, theme.Title.Render("Choose a module"))
		sections = append(sections, "")
		for i, mod := range p.modules {
			mp := p.ledger.ModuleProgress(mod.ID)
			label := fmt.Sprintf("%s  (%d%% complete)", mod.Name, mp.Progress)
			sections = append(sections, components.SelectButton(label, i == p.modIdx, cw))
		}
	} else {
		mod := p.modules[p.modIdx]
		sections = append(sections, theme.Title.Render(mod.Name))
		sections = append(sections, theme.Subtitle.Render(p.Title()+" · choose a test"))
		sections = append(sections, "")

		mp := p.ledger.ModuleProgress(mod.ID)
		done := make(map[string]bool, len(mp.Completed))
		for _, id := range mp.Completed {
			done[id] = true
		}

		for i := 0; i < p.testCount(); i++ {
			testID := fmt.Sprintf("%s-%d", p.testType, i+1)
			label := fmt.Sprintf("Test %d", i+1)
			if done[testID] {
				label += "  ✓"
			}
			sections = append(sections, components.SelectButton(label, i == p.testIdx, cw))
		}

		if p.testType == question.TypeFinal {
			sections = append(sections, "")
			sections = append(sections, theme.Hint.Render("Final exams run against a 30 minute clock."))
		}
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
