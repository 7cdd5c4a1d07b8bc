// Package attendee implements the attendee form repository using PostgreSQL.
// The table holds at most one row per user; writes go through an upsert keyed
// on user_id so a resubmission rewrites the existing row in place.
package attendee

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/tillyhacks/registration-backend/internal/adapter/postgres"
	"github.com/tillyhacks/registration-backend/internal/domain"
)

// Repo provides attendee form persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new attendee form repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const columns = `id, created_at, updated_at, user_id, attendee_name, school,
grade_level, programming_experience, preferred_languages, tshirt_size,
emergency_contact_name, emergency_contact_phone, how_did_you_hear,
what_to_learn, team_preference, dietary_restrictions`

const listWithProfilesSQL = `
SELECT
    f.id, f.created_at, f.updated_at, f.user_id, f.attendee_name, f.school,
    f.grade_level, f.programming_experience, f.preferred_languages,
    f.tshirt_size, f.emergency_contact_name, f.emergency_contact_phone,
    f.how_did_you_hear, f.what_to_learn, f.team_preference,
    f.dietary_restrictions,
    p.name AS profile_name, p.email AS profile_email
FROM attendee_forms f
JOIN profiles p ON p.id = f.user_id
ORDER BY f.created_at DESC`

// formRow mirrors the attendee_forms table for scanning.
type formRow struct {
	ID                    int64      `db:"id"`
	CreatedAt             time.Time  `db:"created_at"`
	UpdatedAt             *time.Time `db:"updated_at"`
	UserID                uuid.UUID  `db:"user_id"`
	AttendeeName          string     `db:"attendee_name"`
	School                string     `db:"school"`
	GradeLevel            string     `db:"grade_level"`
	ProgrammingExperience string     `db:"programming_experience"`
	PreferredLanguages    []string   `db:"preferred_languages"`
	TshirtSize            string     `db:"tshirt_size"`
	EmergencyContactName  string     `db:"emergency_contact_name"`
	EmergencyContactPhone string     `db:"emergency_contact_phone"`
	HowDidYouHear         string     `db:"how_did_you_hear"`
	WhatToLearn           string     `db:"what_to_learn"`
	TeamPreference        string     `db:"team_preference"`
	DietaryRestrictions   *string    `db:"dietary_restrictions"`
}

// listRow extends formRow with the joined profile columns.
type listRow struct {
	formRow
	ProfileName  string `db:"profile_name"`
	ProfileEmail string `db:"profile_email"`
}

func (r formRow) toDomain() domain.AttendeeForm {
	return domain.AttendeeForm{
		FormMeta: domain.FormMeta{
			ID:        r.ID,
			UserID:    r.UserID,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		},
		AttendeeName:          r.AttendeeName,
		School:                r.School,
		GradeLevel:            r.GradeLevel,
		ProgrammingExperience: r.ProgrammingExperience,
		PreferredLanguages:    r.PreferredLanguages,
		TshirtSize:            r.TshirtSize,
		EmergencyContactName:  r.EmergencyContactName,
		EmergencyContactPhone: r.EmergencyContactPhone,
		HowDidYouHear:         r.HowDidYouHear,
		WhatToLearn:           r.WhatToLearn,
		TeamPreference:        r.TeamPreference,
		DietaryRestrictions:   r.DietaryRestrictions,
	}
}

// GetByUserID returns the user's attendee form, or domain.ErrNotFound when the
// user has not submitted one. More than one row for a user means the
// uniqueness invariant was violated in the store and is reported as a store
// error rather than silently picking a row.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.AttendeeForm, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns).
		From("attendee_forms").
		Where("user_id = ?", userID).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "attendee_form")
	}

	var rows []formRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "attendee_form")
	}

	switch len(rows) {
	case 0:
		return nil, fmt.Errorf("attendee_form %s: %w", userID, domain.ErrNotFound)
	case 1:
		f := rows[0].toDomain()
		return &f, nil
	default:
		return nil, fmt.Errorf("attendee_form %s: %d rows for one user: %w", userID, len(rows), domain.ErrStore)
	}
}

// Upsert inserts the user's attendee form or rewrites the existing one.
// The insert branch leaves updated_at NULL; the conflict branch preserves id
// and created_at and stamps updated_at with the database clock.
func (r *Repo) Upsert(ctx context.Context, f *domain.AttendeeForm) (*domain.AttendeeForm, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Insert("attendee_forms").
		Columns("user_id", "attendee_name", "school", "grade_level",
			"programming_experience", "preferred_languages", "tshirt_size",
			"emergency_contact_name", "emergency_contact_phone",
			"how_did_you_hear", "what_to_learn", "team_preference",
			"dietary_restrictions").
		Values(f.UserID, f.AttendeeName, f.School, f.GradeLevel,
			f.ProgrammingExperience, f.PreferredLanguages, f.TshirtSize,
			f.EmergencyContactName, f.EmergencyContactPhone,
			f.HowDidYouHear, f.WhatToLearn, f.TeamPreference,
			f.DietaryRestrictions).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			attendee_name = EXCLUDED.attendee_name,
			school = EXCLUDED.school,
			grade_level = EXCLUDED.grade_level,
			programming_experience = EXCLUDED.programming_experience,
			preferred_languages = EXCLUDED.preferred_languages,
			tshirt_size = EXCLUDED.tshirt_size,
			emergency_contact_name = EXCLUDED.emergency_contact_name,
			emergency_contact_phone = EXCLUDED.emergency_contact_phone,
			how_did_you_hear = EXCLUDED.how_did_you_hear,
			what_to_learn = EXCLUDED.what_to_learn,
			team_preference = EXCLUDED.team_preference,
			dietary_restrictions = EXCLUDED.dietary_restrictions,
			updated_at = now()
		RETURNING ` + columns).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "attendee_form")
	}

	var row formRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "attendee_form")
	}

	result := row.toDomain()
	return &result, nil
}

// ListWithProfiles returns every attendee form joined to its owner's profile,
// newest first. Returns an empty slice (not nil) when there are no rows.
func (r *Repo) ListWithProfiles(ctx context.Context) ([]domain.AttendeeSubmission, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []listRow
	if err := pgxscan.Select(ctx, q, &rows, listWithProfilesSQL); err != nil {
		return nil, postgres.MapError(err, "attendee_form")
	}

	out := make([]domain.AttendeeSubmission, len(rows))
	for i, row := range rows {
		out[i] = domain.AttendeeSubmission{
			AttendeeForm: row.formRow.toDomain(),
			Profile:      domain.ProfileRef{Name: row.ProfileName, Email: row.ProfileEmail},
		}
	}

	return out, nil
}
