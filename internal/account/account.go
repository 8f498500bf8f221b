package account

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/abhisek/nismprep/internal/store"
)

// Profile is the local account shown on the dashboard. The password is
// checked at registration for habit's sake but never stored; the app
// trusts its single local user.
type Profile struct {
	FirstName    string
	LastName     string
	Email        string
	Plan         string
	RegisteredAt time.Time
}

// FullName returns the display name.
func (p Profile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldError reports which registration field failed validation.
type FieldError struct {
	Field string
	Msg   string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// ValidateName requires at least 2 non-space characters.
func ValidateName(field, name string) error {
	if len(strings.TrimSpace(name)) < 2 {
		return &FieldError{Field: field, Msg: "must be at least 2 characters"}
	}
	return nil
}

// ValidateEmail checks the basic shape local@domain.tld.
func ValidateEmail(email string) error {
	if !emailRe.MatchString(strings.TrimSpace(email)) {
		return &FieldError{Field: "email", Msg: "enter a valid email address"}
	}
	return nil
}

// ValidatePassword requires 8+ characters containing at least one letter
// and one digit. The password is validated and discarded, never persisted.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return &FieldError{Field: "password", Msg: "must be at least 8 characters with letters and numbers"}
	}
	hasLetter, hasDigit := false, false
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			hasLetter = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return &FieldError{Field: "password", Msg: "must be at least 8 characters with letters and numbers"}
	}
	return nil
}

// Service gates the app behind a local profile.
type Service struct {
	repo store.ProfileRepo
}

// NewService creates a Service over the profile repository.
func NewService(repo store.ProfileRepo) *Service {
	return &Service{repo: repo}
}

// Register validates the fields and saves the profile. The password and
// its confirmation are checked, then dropped.
func (s *Service) Register(ctx context.Context, firstName, lastName, email, password, confirm string) (*Profile, error) {
	if err := ValidateName("first name", firstName); err != nil {
		return nil, err
	}
	if err := ValidateName("last name", lastName); err != nil {
		return nil, err
	}
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}
	if password != confirm {
		return nil, &FieldError{Field: "confirm password", Msg: "passwords do not match"}
	}

	p := Profile{
		FirstName:    strings.TrimSpace(firstName),
		LastName:     strings.TrimSpace(lastName),
		Email:        strings.TrimSpace(email),
		Plan:         "starter",
		RegisteredAt: time.Now(),
	}
	err := s.repo.Save(ctx, store.ProfileData{
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Email:        p.Email,
		Plan:         p.Plan,
		RegisteredAt: p.RegisteredAt,
	})
	if err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return &p, nil
}

// Current returns the stored profile, or nil when none exists yet.
func (s *Service) Current(ctx context.Context) (*Profile, error) {
	data, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if data == nil {
		return nil, nil
	}
	return &Profile{
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Email:        data.Email,
		Plan:         data.Plan,
		RegisteredAt: data.RegisteredAt,
	}, nil
}
