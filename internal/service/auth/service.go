// Package auth implements registration and login flows on top of the profile
// and credential repositories.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tillyhacks/registration-backend/internal/auth"
	"github.com/tillyhacks/registration-backend/internal/config"
	"github.com/tillyhacks/registration-backend/internal/domain"
	"github.com/tillyhacks/registration-backend/internal/notify"
)

// profileRepo defines the profile repository interface needed by auth service.
type profileRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)
	Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
}

// credentialRepo defines the credential repository interface needed by auth service.
type credentialRepo interface {
	GetByProfileAndMethod(ctx context.Context, profileID uuid.UUID, method domain.CredentialMethod) (*domain.Credential, error)
	GetByProvider(ctx context.Context, method domain.CredentialMethod, providerID string) (*domain.Credential, error)
	Create(ctx context.Context, c *domain.Credential) (*domain.Credential, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// oauthVerifier defines the OAuth verification interface needed by auth service.
type oauthVerifier interface {
	VerifyCode(ctx context.Context, provider, code string) (*auth.OAuthIdentity, error)
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
}

// notifier defines the notification interface needed by auth service.
type notifier interface {
	Emit(ctx context.Context, ev notify.Event)
}

// Service implements auth operations.
type Service struct {
	log         *slog.Logger
	profiles    profileRepo
	credentials credentialRepo
	tx          txManager
	oauth       oauthVerifier
	jwt         jwtManager
	notify      notifier
	cfg         config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	profiles profileRepo,
	credentials credentialRepo,
	tx txManager,
	oauth oauthVerifier,
	jwt jwtManager,
	notify notifier,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:         logger.With("service", "auth"),
		profiles:    profiles,
		credentials: credentials,
		tx:          tx,
		oauth:       oauth,
		jwt:         jwt,
		notify:      notify,
		cfg:         cfg,
	}
}

// announceNewUser emits the registration notification in a detached goroutine
// so a slow webhook never delays the response.
func (s *Service) announceNewUser(ctx context.Context, p *domain.Profile, method string) {
	ev := notify.NewUserEvent(p.Name, p.Email, method)
	go s.notify.Emit(context.WithoutCancel(ctx), ev)
}
