package profile_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/tillyhacks/registration-backend/internal/adapter/postgres/profile"
	"github.com/tillyhacks/registration-backend/internal/adapter/postgres/testutil"
	"github.com/tillyhacks/registration-backend/internal/domain"
)

var profileColumns = []string{"id", "created_at", "name", "first_name", "email"}

func TestRepo_GetByID_Found(t *testing.T) {
	t.Parallel()

	mock := testutil.NewMockPool(t)
	repo := profile.New(mock)

	id := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT .+ FROM profiles WHERE id").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(profileColumns).
			AddRow(id, now, "Ada Lovelace", (*string)(nil), "ada@example.com"))

	got, err := repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetByID: unexpected error: %v", err)
	}
	if got.Email != "ada@example.com" || got.Name != "Ada Lovelace" {
		t.Errorf("GetByID: got %+v", got)
	}

	testutil.ExpectationsWereMet(t, mock)
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	t.Parallel()

	mock := testutil.NewMockPool(t)
	repo := profile.New(mock)

	mock.ExpectQuery("SELECT .+ FROM profiles WHERE id").
		WithArgs(pgxmock.AnyArg()).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByID: error = %v, want ErrNotFound", err)
	}

	testutil.ExpectationsWereMet(t, mock)
}

func TestRepo_Create_ReturnsPersistedRow(t *testing.T) {
	t.Parallel()

	mock := testutil.NewMockPool(t)
	repo := profile.New(mock)

	id := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery("INSERT INTO profiles .+ RETURNING").
		WithArgs(testutil.AnyArgs(4)...).
		WillReturnRows(pgxmock.NewRows(profileColumns).
			AddRow(id, now, "GitHub User", (*string)(nil), "gh@example.com"))

	got, err := repo.Create(context.Background(), &domain.Profile{
		ID:    id,
		Name:  "GitHub User",
		Email: "gh@example.com",
	})
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}
	if got.CreatedAt.IsZero() {
		t.Error("Create: created_at should come back from the database")
	}

	testutil.ExpectationsWereMet(t, mock)
}

func TestRepo_Create_DuplicateMapsToAlreadyExists(t *testing.T) {
	t.Parallel()

	mock := testutil.NewMockPool(t)
	repo := profile.New(mock)

	mock.ExpectQuery("INSERT INTO profiles").
		WithArgs(testutil.AnyArgs(4)...).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Create(context.Background(), &domain.Profile{ID: uuid.New()})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("Create: error = %v, want ErrAlreadyExists", err)
	}

	testutil.ExpectationsWereMet(t, mock)
}
