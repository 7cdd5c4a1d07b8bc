// Package credential implements the Credential repository using PostgreSQL.
package credential

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/tillyhacks/registration-backend/internal/adapter/postgres"
	"github.com/tillyhacks/registration-backend/internal/domain"
)

// Repo provides credential persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new credential repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const columns = "id, created_at, profile_id, method, password_hash, provider_id"

// credentialRow mirrors the credentials table for scanning.
type credentialRow struct {
	ID           int64     `db:"id"`
	CreatedAt    time.Time `db:"created_at"`
	ProfileID    uuid.UUID `db:"profile_id"`
	Method       string    `db:"method"`
	PasswordHash *string   `db:"password_hash"`
	ProviderID   *string   `db:"provider_id"`
}

func (r credentialRow) toDomain() domain.Credential {
	return domain.Credential{
		ID:           r.ID,
		CreatedAt:    r.CreatedAt,
		ProfileID:    r.ProfileID,
		Method:       domain.CredentialMethod(r.Method),
		PasswordHash: r.PasswordHash,
		ProviderID:   r.ProviderID,
	}
}

// GetByProfileAndMethod returns the credential a profile holds for a given
// method. Returns domain.ErrNotFound when the profile has no such method.
func (r *Repo) GetByProfileAndMethod(ctx context.Context, profileID uuid.UUID, method domain.CredentialMethod) (*domain.Credential, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns).
		From("credentials").
		Where("profile_id = ? AND method = ?", profileID, method).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "credential")
	}

	var row credentialRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "credential")
	}

	c := row.toDomain()
	return &c, nil
}

// GetByProvider returns the credential for an OAuth identity.
// Returns domain.ErrNotFound when the identity has never logged in.
func (r *Repo) GetByProvider(ctx context.Context, method domain.CredentialMethod, providerID string) (*domain.Credential, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns).
		From("credentials").
		Where("method = ? AND provider_id = ?", method, providerID).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "credential")
	}

	var row credentialRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "credential")
	}

	c := row.toDomain()
	return &c, nil
}

// Create inserts a new credential row and returns the persisted credential.
// Returns domain.ErrAlreadyExists when the profile already holds the method
// or the provider identity is already linked.
func (r *Repo) Create(ctx context.Context, c *domain.Credential) (*domain.Credential, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Insert("credentials").
		Columns("profile_id", "method", "password_hash", "provider_id").
		Values(c.ProfileID, c.Method, c.PasswordHash, c.ProviderID).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "credential")
	}

	var row credentialRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "credential")
	}

	created := row.toDomain()
	return &created, nil
}
