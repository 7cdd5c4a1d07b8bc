package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the registrant's identity row, created on first successful
// authentication. The id matches the auth principal; name and email are
// refreshed from provider metadata but the identity itself is immutable.
type Profile struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Name      string
	FirstName *string
	Email     string
}

// ProfileRef is the display subset of Profile joined onto form rows for the
// admin views and CSV export.
type ProfileRef struct {
	Name  string
	Email string
}
