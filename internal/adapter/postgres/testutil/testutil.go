// Package testutil provides pgxmock helpers for repository tests.
package testutil

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v2"
)

// NewMockPool creates a pgxmock pool and registers its cleanup.
// The returned iface satisfies the adapter's Querier interface.
func NewMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(mock.Close)

	return mock
}

// AnyArgs returns n pgxmock.AnyArg matchers for expectations where only the
// argument count matters.
func AnyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

// PgError builds a *pgconn.PgError with the given SQLSTATE code.
func PgError(code string) *pgconn.PgError {
	return &pgconn.PgError{Code: code}
}

// ExpectationsWereMet fails the test if the mock has unmet expectations.
func ExpectationsWereMet(t *testing.T, mock pgxmock.PgxPoolIface) {
	t.Helper()

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet mock expectations: %v", err)
	}
}
