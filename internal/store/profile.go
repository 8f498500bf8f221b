package store

import (
	"context"
	"fmt"

	"github.com/abhisek/nismprep/ent"
)

// profileRepo implements ProfileRepo using the ent client.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Save(ctx context.Context, p ProfileData) error {
	// Single-user app: at most one profile row. Replace wholesale.
	if _, err := r.client.Profile.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear profile: %w", err)
	}

	builder := r.client.Profile.Create().
		SetFirstName(p.FirstName).
		SetLastName(p.LastName).
		SetEmail(p.Email).
		SetPlan(p.Plan)
	if !p.RegisteredAt.IsZero() {
		builder = builder.SetRegisteredAt(p.RegisteredAt)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (r *profileRepo) Get(ctx context.Context) (*ProfileData, error) {
	row, err := r.client.Profile.Query().First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}
	return &ProfileData{
		FirstName:    row.FirstName,
		LastName:     row.LastName,
		Email:        row.Email,
		Plan:         row.Plan,
		RegisteredAt: row.RegisteredAt,
	}, nil
}
