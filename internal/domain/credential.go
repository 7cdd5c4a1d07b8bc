package domain

import (
	"time"

	"github.com/google/uuid"
)

// CredentialMethod identifies how a profile authenticates.
type CredentialMethod string

const (
	CredentialPassword CredentialMethod = "password"
	CredentialGitHub   CredentialMethod = "github"
)

// String implements fmt.Stringer.
func (m CredentialMethod) String() string { return string(m) }

// Credential links a profile to one authentication method. Password
// credentials carry a bcrypt hash; OAuth credentials carry the provider's
// stable user id. A profile holds at most one credential per method.
type Credential struct {
	ID           int64
	CreatedAt    time.Time
	ProfileID    uuid.UUID
	Method       CredentialMethod
	PasswordHash *string
	ProviderID   *string
}
