package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tillyhacks/registration-backend/internal/domain"
)

// Register creates a new profile with email + password authentication.
// Returns ErrAlreadyExists if the email is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Name = strings.TrimSpace(input.Name)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}
	hashStr := string(hash)

	// Step 3: Create profile + credential in a transaction.
	// Email uniqueness is enforced by a DB constraint.
	name := input.Name
	if name == "" {
		name = emailPrefix(input.Email)
	}

	var createdProfile *domain.Profile

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		newProfile := &domain.Profile{
			ID:    uuid.New(),
			Name:  name,
			Email: input.Email,
		}

		profile, err := s.profiles.Create(txCtx, newProfile)
		if err != nil {
			return fmt.Errorf("create profile: %w", err)
		}

		cred := &domain.Credential{
			ProfileID:    profile.ID,
			Method:       domain.CredentialPassword,
			PasswordHash: &hashStr,
		}
		if _, err := s.credentials.Create(txCtx, cred); err != nil {
			return fmt.Errorf("create credential: %w", err)
		}

		createdProfile = profile
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	// Step 4: Issue token
	accessToken, err := s.jwt.GenerateAccessToken(createdProfile.ID)
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue token: %w", err)
	}

	s.announceNewUser(ctx, createdProfile, "email")

	s.log.InfoContext(ctx, "user registered via password",
		slog.String("user_id", createdProfile.ID.String()))

	return &AuthResult{AccessToken: accessToken, Profile: createdProfile}, nil
}

// emailPrefix extracts the part before @ from an email address.
func emailPrefix(email string) string {
	if idx := strings.IndexByte(email, '@'); idx > 0 {
		return email[:idx]
	}
	return email
}
