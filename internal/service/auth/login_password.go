package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/tillyhacks/registration-backend/internal/domain"
)

// LoginWithPassword authenticates a profile with email + password.
// Returns ErrUnauthorized if the email is not found or the password is wrong.
func (s *Service) LoginWithPassword(ctx context.Context, input LoginPasswordInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Find profile by email
	profile, err := s.profiles.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.LoginWithPassword get profile: %w", err)
	}

	// Step 3: Find password credential for this profile
	cred, err := s.credentials.GetByProfileAndMethod(ctx, profile.ID, domain.CredentialPassword)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Profile exists but has no password credential (OAuth-only)
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.LoginWithPassword get credential: %w", err)
	}

	// Step 4: Verify password
	if cred.PasswordHash == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*cred.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	// Step 5: Issue token
	accessToken, err := s.jwt.GenerateAccessToken(profile.ID)
	if err != nil {
		return nil, fmt.Errorf("auth.LoginWithPassword issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in via password",
		slog.String("user_id", profile.ID.String()))

	return &AuthResult{AccessToken: accessToken, Profile: profile}, nil
}
