// Package waiver implements the waiver form repository using PostgreSQL.
package waiver

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/tillyhacks/registration-backend/internal/adapter/postgres"
	"github.com/tillyhacks/registration-backend/internal/domain"
)

// Repo provides waiver form persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new waiver form repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const columns = "id, created_at, updated_at, user_id, waiver_agreement, signature"

const listWithProfilesSQL = `
SELECT
    f.id, f.created_at, f.updated_at, f.user_id, f.waiver_agreement,
    f.signature,
    p.name AS profile_name, p.email AS profile_email
FROM waiver_forms f
JOIN profiles p ON p.id = f.user_id
ORDER BY f.created_at DESC`

type formRow struct {
	ID              int64      `db:"id"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       *time.Time `db:"updated_at"`
	UserID          uuid.UUID  `db:"user_id"`
	WaiverAgreement bool       `db:"waiver_agreement"`
	Signature       string     `db:"signature"`
}

type listRow struct {
	formRow
	ProfileName  string `db:"profile_name"`
	ProfileEmail string `db:"profile_email"`
}

func (r formRow) toDomain() domain.WaiverForm {
	return domain.WaiverForm{
		FormMeta: domain.FormMeta{
			ID:        r.ID,
			UserID:    r.UserID,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		},
		WaiverAgreement: r.WaiverAgreement,
		Signature:       r.Signature,
	}
}

// GetByUserID returns the user's waiver form, or domain.ErrNotFound when the
// user has not submitted one. More than one row is a store invariant
// violation.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.WaiverForm, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns).
		From("waiver_forms").
		Where("user_id = ?", userID).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "waiver_form")
	}

	var rows []formRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "waiver_form")
	}

	switch len(rows) {
	case 0:
		return nil, fmt.Errorf("waiver_form %s: %w", userID, domain.ErrNotFound)
	case 1:
		f := rows[0].toDomain()
		return &f, nil
	default:
		return nil, fmt.Errorf("waiver_form %s: %d rows for one user: %w", userID, len(rows), domain.ErrStore)
	}
}

// Upsert inserts the user's waiver form or rewrites the existing one,
// stamping updated_at only on the conflict branch.
func (r *Repo) Upsert(ctx context.Context, f *domain.WaiverForm) (*domain.WaiverForm, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Insert("waiver_forms").
		Columns("user_id", "waiver_agreement", "signature").
		Values(f.UserID, f.WaiverAgreement, f.Signature).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			waiver_agreement = EXCLUDED.waiver_agreement,
			signature = EXCLUDED.signature,
			updated_at = now()
		RETURNING ` + columns).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "waiver_form")
	}

	var row formRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "waiver_form")
	}

	result := row.toDomain()
	return &result, nil
}

// ListWithProfiles returns every waiver form joined to its owner's profile,
// newest first.
func (r *Repo) ListWithProfiles(ctx context.Context) ([]domain.WaiverSubmission, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []listRow
	if err := pgxscan.Select(ctx, q, &rows, listWithProfilesSQL); err != nil {
		return nil, postgres.MapError(err, "waiver_form")
	}

	out := make([]domain.WaiverSubmission, len(rows))
	for i, row := range rows {
		out[i] = domain.WaiverSubmission{
			WaiverForm: row.formRow.toDomain(),
			Profile:    domain.ProfileRef{Name: row.ProfileName, Email: row.ProfileEmail},
		}
	}

	return out, nil
}
