package auth

import "github.com/tillyhacks/registration-backend/internal/domain"

// AuthResult is returned by Register, LoginWithPassword and Login.
type AuthResult struct {
	AccessToken string
	Profile     *domain.Profile
}
