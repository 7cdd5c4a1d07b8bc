// Package parent implements the parent form repository using PostgreSQL.
package parent

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/tillyhacks/registration-backend/internal/adapter/postgres"
	"github.com/tillyhacks/registration-backend/internal/domain"
)

// Repo provides parent form persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new parent form repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const columns = "id, created_at, updated_at, user_id, parent_name, contact_number, emergency_contact"

const listWithProfilesSQL = `
SELECT
    f.id, f.created_at, f.updated_at, f.user_id, f.parent_name,
    f.contact_number, f.emergency_contact,
    p.name AS profile_name, p.email AS profile_email
FROM parent_forms f
JOIN profiles p ON p.id = f.user_id
ORDER BY f.created_at DESC`

type formRow struct {
	ID               int64      `db:"id"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        *time.Time `db:"updated_at"`
	UserID           uuid.UUID  `db:"user_id"`
	ParentName       string     `db:"parent_name"`
	ContactNumber    string     `db:"contact_number"`
	EmergencyContact string     `db:"emergency_contact"`
}

type listRow struct {
	formRow
	ProfileName  string `db:"profile_name"`
	ProfileEmail string `db:"profile_email"`
}

func (r formRow) toDomain() domain.ParentForm {
	return domain.ParentForm{
		FormMeta: domain.FormMeta{
			ID:        r.ID,
			UserID:    r.UserID,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		},
		ParentName:       r.ParentName,
		ContactNumber:    r.ContactNumber,
		EmergencyContact: r.EmergencyContact,
	}
}

// GetByUserID returns the user's parent form, or domain.ErrNotFound when the
// user has not submitted one. More than one row is a store invariant
// violation.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.ParentForm, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns).
		From("parent_forms").
		Where("user_id = ?", userID).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "parent_form")
	}

	var rows []formRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "parent_form")
	}

	switch len(rows) {
	case 0:
		return nil, fmt.Errorf("parent_form %s: %w", userID, domain.ErrNotFound)
	case 1:
		f := rows[0].toDomain()
		return &f, nil
	default:
		return nil, fmt.Errorf("parent_form %s: %d rows for one user: %w", userID, len(rows), domain.ErrStore)
	}
}

// Upsert inserts the user's parent form or rewrites the existing one,
// stamping updated_at only on the conflict branch.
func (r *Repo) Upsert(ctx context.Context, f *domain.ParentForm) (*domain.ParentForm, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Insert("parent_forms").
		Columns("user_id", "parent_name", "contact_number", "emergency_contact").
		Values(f.UserID, f.ParentName, f.ContactNumber, f.EmergencyContact).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			parent_name = EXCLUDED.parent_name,
			contact_number = EXCLUDED.contact_number,
			emergency_contact = EXCLUDED.emergency_contact,
			updated_at = now()
		RETURNING ` + columns).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "parent_form")
	}

	var row formRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "parent_form")
	}

	result := row.toDomain()
	return &result, nil
}

// ListWithProfiles returns every parent form joined to its owner's profile,
// newest first.
func (r *Repo) ListWithProfiles(ctx context.Context) ([]domain.ParentSubmission, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []listRow
	if err := pgxscan.Select(ctx, q, &rows, listWithProfilesSQL); err != nil {
		return nil, postgres.MapError(err, "parent_form")
	}

	out := make([]domain.ParentSubmission, len(rows))
	for i, row := range rows {
		out[i] = domain.ParentSubmission{
			ParentForm: row.formRow.toDomain(),
			Profile:    domain.ProfileRef{Name: row.ProfileName, Email: row.ProfileEmail},
		}
	}

	return out, nil
}
