package welcome

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/nismprep/internal/account"
	"github.com/abhisek/nismprep/internal/router"
	"github.com/abhisek/nismprep/internal/screen"
	"github.com/abhisek/nismprep/internal/store"
)

type memProfileRepo struct {
	saved *store.ProfileData
}

func (m *memProfileRepo) Save(_ context.Context, p store.ProfileData) error {
	m.saved = &p
	return nil
}

func (m *memProfileRepo) Get(context.Context) (*store.ProfileData, error) {
	return m.saved, nil
}

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

func newTestWelcome() (*WelcomeScreen, *memProfileRepo, *int) {
	repo := &memProfileRepo{}
	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(account.NewService(repo), factory), repo, &callCount
}

func fill(w *WelcomeScreen, values [fieldCount]string) {
	for i, v := range values {
		w.inputs[i].SetValue(v)
	}
}

func validFields() [fieldCount]string {
	return [fieldCount]string{"Asha", "Iyer", "asha@example.com", "secret123", "secret123"}
}

func TestTabCyclesFields(t *testing.T) {
	w, _, _ := newTestWelcome()

	w.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if w.focused != fieldLastName {
		t.Errorf("focused = %d, want last name", w.focused)
	}

	for i := 0; i < fieldCount-1; i++ {
		w.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	}
	if w.focused != fieldFirstName {
		t.Errorf("focused = %d, want wrap to first name", w.focused)
	}
}

func TestRegisterSuccessReplacesWithHome(t *testing.T) {
	w, repo, callCount := newTestWelcome()
	fill(w, validFields())
	w.focused = fieldConfirm

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected register command")
	}

	// The async register lands as registeredMsg.
	msg := cmd()
	reg, ok := msg.(registeredMsg)
	if !ok {
		t.Fatalf("expected registeredMsg, got %T", msg)
	}
	if reg.Err != nil {
		t.Fatalf("register failed: %v", reg.Err)
	}
	if repo.saved == nil || repo.saved.Email != "asha@example.com" {
		t.Fatalf("profile not saved: %+v", repo.saved)
	}

	_, cmd = w.Update(reg)
	if cmd == nil {
		t.Fatal("expected transition command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if *callCount != 1 {
		t.Errorf("factory calls = %d, want 1", *callCount)
	}
}

func TestValidationErrorShownOnField(t *testing.T) {
	w, repo, _ := newTestWelcome()
	fields := validFields()
	fields[fieldEmail] = "not-an-email"
	fill(w, fields)
	w.focused = fieldConfirm

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	msg := cmd()
	w.Update(msg)

	if w.errField != "email" {
		t.Errorf("errField = %q, want email", w.errField)
	}
	if repo.saved != nil {
		t.Error("invalid registration must not persist a profile")
	}
	if !strings.Contains(w.View(100, 40), "valid email") {
		t.Error("view should show the field error")
	}
}

func TestMismatchedPasswords(t *testing.T) {
	w, _, _ := newTestWelcome()
	fields := validFields()
	fields[fieldConfirm] = "different1"
	fill(w, fields)
	w.focused = fieldConfirm

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	w.Update(cmd())

	if w.errField != "confirm password" {
		t.Errorf("errField = %q, want confirm password", w.errField)
	}
}

func TestEnterAdvancesUntilLastField(t *testing.T) {
	w, _, _ := newTestWelcome()

	w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if w.focused != fieldLastName {
		t.Errorf("focused = %d, want last name", w.focused)
	}
	if w.busy {
		t.Error("enter on a middle field must not submit")
	}
}
