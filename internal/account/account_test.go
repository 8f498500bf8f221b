package account

import (
	"context"
	"testing"

	"github.com/abhisek/nismprep/internal/store"
)

type fakeProfileRepo struct {
	saved *store.ProfileData
}

func (f *fakeProfileRepo) Save(_ context.Context, p store.ProfileData) error {
	f.saved = &p
	return nil
}

func (f *fakeProfileRepo) Get(context.Context) (*store.ProfileData, error) {
	return f.saved, nil
}

func TestValidateName(t *testing.T) {
	if err := ValidateName("first name", "Al"); err != nil {
		t.Errorf("Al: %v", err)
	}
	if err := ValidateName("first name", " a "); err == nil {
		t.Error("expected error for single-character name")
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b.co", "user.name@example.com"}
	for _, e := range valid {
		if err := ValidateEmail(e); err != nil {
			t.Errorf("%s: %v", e, err)
		}
	}
	invalid := []string{"", "plain", "no@tld", "two@@example.com", "sp ace@example.com"}
	for _, e := range invalid {
		if err := ValidateEmail(e); err == nil {
			t.Errorf("%s: expected error", e)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	valid := []string{"abcd1234", "Passw0rd!"}
	for _, p := range valid {
		if err := ValidatePassword(p); err != nil {
			t.Errorf("%s: %v", p, err)
		}
	}
	invalid := []string{"short1", "allletters", "12345678"}
	for _, p := range invalid {
		if err := ValidatePassword(p); err == nil {
			t.Errorf("%s: expected error", p)
		}
	}
}

func TestRegisterNeverStoresPassword(t *testing.T) {
	repo := &fakeProfileRepo{}
	svc := NewService(repo)

	p, err := svc.Register(context.Background(), "Asha", "Rao", "asha@example.com", "abcd1234", "abcd1234")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if p.FullName() != "Asha Rao" {
		t.Errorf("full name = %q", p.FullName())
	}
	if repo.saved == nil {
		t.Fatal("expected profile saved")
	}
	if repo.saved.Plan != "starter" {
		t.Errorf("plan = %q, want starter", repo.saved.Plan)
	}
	// ProfileData has no password field; this test documents the contract.
}

func TestRegisterRejectsMismatchedConfirmation(t *testing.T) {
	svc := NewService(&fakeProfileRepo{})

	_, err := svc.Register(context.Background(), "Asha", "Rao", "asha@example.com", "abcd1234", "abcd1235")
	if err == nil {
		t.Fatal("expected error for mismatched passwords")
	}
	fe, ok := err.(*FieldError)
	if !ok {
		t.Fatalf("err = %T, want *FieldError", err)
	}
	if fe.Field != "confirm password" {
		t.Errorf("field = %q", fe.Field)
	}
}

func TestCurrentNilWhenUnregistered(t *testing.T) {
	svc := NewService(&fakeProfileRepo{})
	p, err := svc.Current(context.Background())
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if p != nil {
		t.Error("expected nil profile before registration")
	}
}
