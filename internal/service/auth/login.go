package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/tillyhacks/registration-backend/internal/auth"
	"github.com/tillyhacks/registration-backend/internal/domain"
)

// Login performs OAuth authentication and returns an access token.
// If the profile doesn't exist, creates it in a transaction and announces the
// new user. If a profile with the same email already exists
// (password-registered), links the OAuth credential.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Verify OAuth code with provider
	identity, err := s.oauth.VerifyCode(ctx, input.Provider, input.Code)
	if err != nil {
		return nil, fmt.Errorf("auth.Login oauth verification: %w", err)
	}

	method := domain.CredentialMethod(input.Provider)

	// Step 3: Check if a credential already exists for this OAuth identity
	cred, err := s.credentials.GetByProvider(ctx, method, identity.ProviderID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("auth.Login get credential: %w", err)
	}

	if cred != nil {
		// Returning OAuth user
		profile, err := s.profiles.GetByID(ctx, cred.ProfileID)
		if err != nil {
			return nil, fmt.Errorf("auth.Login get profile: %w", err)
		}

		result, err := s.issueToken(ctx, profile)
		if err != nil {
			return nil, err
		}

		s.log.InfoContext(ctx, "user logged in via oauth",
			slog.String("user_id", profile.ID.String()),
			slog.String("provider", input.Provider))

		return result, nil
	}

	// Step 4: No existing credential. Check if a profile with the same email
	// exists (account linking)
	identity.Email = strings.ToLower(strings.TrimSpace(identity.Email))
	profile, err := s.profiles.GetByEmail(ctx, identity.Email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("auth.Login get profile by email: %w", err)
	}

	if profile != nil {
		newCred := &domain.Credential{
			ProfileID:  profile.ID,
			Method:     method,
			ProviderID: &identity.ProviderID,
		}
		if _, err := s.credentials.Create(ctx, newCred); err != nil && !errors.Is(err, domain.ErrAlreadyExists) {
			// ErrAlreadyExists means a concurrent link; proceed to issue a token.
			return nil, fmt.Errorf("auth.Login link oauth: %w", err)
		}

		result, err := s.issueToken(ctx, profile)
		if err != nil {
			return nil, err
		}

		s.log.InfoContext(ctx, "oauth linked to existing account",
			slog.String("user_id", profile.ID.String()),
			slog.String("provider", input.Provider))

		return result, nil
	}

	// Step 5: Completely new user, register in a transaction
	profile, err = s.registerOAuthUser(ctx, identity, method)
	if err != nil {
		return nil, err
	}

	result, err := s.issueToken(ctx, profile)
	if err != nil {
		return nil, err
	}

	s.announceNewUser(ctx, profile, input.Provider)

	s.log.InfoContext(ctx, "user registered via oauth",
		slog.String("user_id", profile.ID.String()),
		slog.String("provider", input.Provider))

	return result, nil
}

// issueToken generates an access token for the given profile.
func (s *Service) issueToken(ctx context.Context, profile *domain.Profile) (*AuthResult, error) {
	accessToken, err := s.jwt.GenerateAccessToken(profile.ID)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue token: %w", err)
	}
	return &AuthResult{AccessToken: accessToken, Profile: profile}, nil
}

// registerOAuthUser creates a new profile + credential in a transaction.
func (s *Service) registerOAuthUser(ctx context.Context, identity *auth.OAuthIdentity, method domain.CredentialMethod) (*domain.Profile, error) {
	var createdProfile *domain.Profile

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		newProfile := &domain.Profile{
			ID:        uuid.New(),
			Name:      identity.DisplayName(),
			FirstName: identity.Name,
			Email:     identity.Email,
		}

		profile, err := s.profiles.Create(txCtx, newProfile)
		if err != nil {
			return fmt.Errorf("create profile: %w", err)
		}

		cred := &domain.Credential{
			ProfileID:  profile.ID,
			Method:     method,
			ProviderID: &identity.ProviderID,
		}
		if _, err := s.credentials.Create(txCtx, cred); err != nil {
			return fmt.Errorf("create credential: %w", err)
		}

		createdProfile = profile
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			// Race: a concurrent login created the credential first.
			cred, retryErr := s.credentials.GetByProvider(ctx, method, identity.ProviderID)
			if retryErr == nil {
				profile, retryErr := s.profiles.GetByID(ctx, cred.ProfileID)
				if retryErr == nil {
					return profile, nil
				}
			}
			return nil, domain.ErrAlreadyExists
		}
		return nil, fmt.Errorf("auth.Login register user: %w", err)
	}

	return createdProfile, nil
}
