// Package profile implements the Profile repository using PostgreSQL.
package profile

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/tillyhacks/registration-backend/internal/adapter/postgres"
	"github.com/tillyhacks/registration-backend/internal/domain"
)

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new profile repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// profileRow mirrors the profiles table for scanning.
type profileRow struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	Name      string    `db:"name"`
	FirstName *string   `db:"first_name"`
	Email     string    `db:"email"`
}

func (r profileRow) toDomain() domain.Profile {
	return domain.Profile{
		ID:        r.ID,
		CreatedAt: r.CreatedAt,
		Name:      r.Name,
		FirstName: r.FirstName,
		Email:     r.Email,
	}
}

// GetByID returns a profile by its principal id.
// Returns domain.ErrNotFound if no profile row exists yet.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select("id", "created_at", "name", "first_name", "email").
		From("profiles").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "profile")
	}

	var row profileRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "profile")
	}

	p := row.toDomain()
	return &p, nil
}

// GetByEmail returns a profile by its email address.
// Returns domain.ErrNotFound if no profile has the given email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select("id", "created_at", "name", "first_name", "email").
		From("profiles").
		Where("email = ?", email).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "profile")
	}

	var row profileRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "profile")
	}

	p := row.toDomain()
	return &p, nil
}

// Create inserts a new profile row and returns the persisted profile.
// created_at is assigned by the database.
func (r *Repo) Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Insert("profiles").
		Columns("id", "name", "first_name", "email").
		Values(p.ID, p.Name, p.FirstName, p.Email).
		Suffix("RETURNING id, created_at, name, first_name, email").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "profile")
	}

	var row profileRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "profile")
	}

	created := row.toDomain()
	return &created, nil
}
