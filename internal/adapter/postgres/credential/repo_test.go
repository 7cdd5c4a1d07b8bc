package credential_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/tillyhacks/registration-backend/internal/adapter/postgres/credential"
	"github.com/tillyhacks/registration-backend/internal/adapter/postgres/testutil"
	"github.com/tillyhacks/registration-backend/internal/domain"
)

var credColumns = []string{"id", "created_at", "profile_id", "method", "password_hash", "provider_id"}

func TestRepo_GetByProfileAndMethod(t *testing.T) {
	t.Parallel()

	mock := testutil.NewMockPool(t)
	repo := credential.New(mock)

	profileID := uuid.New()
	hash := "$2a$10$hash"

	mock.ExpectQuery("(?s)SELECT .+ FROM credentials WHERE profile_id").
		WithArgs(profileID, domain.CredentialPassword).
		WillReturnRows(pgxmock.NewRows(credColumns).
			AddRow(int64(1), time.Now(), profileID, "password", &hash, (*string)(nil)))

	got, err := repo.GetByProfileAndMethod(context.Background(), profileID, domain.CredentialPassword)
	if err != nil {
		t.Fatalf("GetByProfileAndMethod: unexpected error: %v", err)
	}
	if got.Method != domain.CredentialPassword {
		t.Errorf("method = %q, want password", got.Method)
	}
	if got.PasswordHash == nil || *got.PasswordHash != hash {
		t.Errorf("password hash = %v, want %q", got.PasswordHash, hash)
	}

	testutil.ExpectationsWereMet(t, mock)
}

func TestRepo_GetByProvider_NotFound(t *testing.T) {
	t.Parallel()

	mock := testutil.NewMockPool(t)
	repo := credential.New(mock)

	mock.ExpectQuery("(?s)SELECT .+ FROM credentials WHERE method").
		WithArgs(domain.CredentialGitHub, "gh_123").
		WillReturnRows(pgxmock.NewRows(credColumns))

	_, err := repo.GetByProvider(context.Background(), domain.CredentialGitHub, "gh_123")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByProvider: error = %v, want ErrNotFound", err)
	}

	testutil.ExpectationsWereMet(t, mock)
}

func TestRepo_Create_Duplicate(t *testing.T) {
	t.Parallel()

	mock := testutil.NewMockPool(t)
	repo := credential.New(mock)

	profileID := uuid.New()
	hash := "$2a$10$hash"

	mock.ExpectQuery("(?s)INSERT INTO credentials").
		WithArgs(testutil.AnyArgs(4)...).
		WillReturnError(testutil.PgError("23505"))

	_, err := repo.Create(context.Background(), &domain.Credential{
		ProfileID:    profileID,
		Method:       domain.CredentialPassword,
		PasswordHash: &hash,
	})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("Create: error = %v, want ErrAlreadyExists", err)
	}

	testutil.ExpectationsWereMet(t, mock)
}

func TestRepo_Create_ReturnsPersistedRow(t *testing.T) {
	t.Parallel()

	mock := testutil.NewMockPool(t)
	repo := credential.New(mock)

	profileID := uuid.New()
	providerID := "gh_123"

	mock.ExpectQuery("(?s)INSERT INTO credentials").
		WithArgs(testutil.AnyArgs(4)...).
		WillReturnRows(pgxmock.NewRows(credColumns).
			AddRow(int64(9), time.Now(), profileID, "github", (*string)(nil), &providerID))

	got, err := repo.Create(context.Background(), &domain.Credential{
		ProfileID:  profileID,
		Method:     domain.CredentialGitHub,
		ProviderID: &providerID,
	})
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}
	if got.ID != 9 {
		t.Errorf("Create: id = %d, want 9", got.ID)
	}

	testutil.ExpectationsWereMet(t, mock)
}
