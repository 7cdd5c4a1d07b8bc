// Package registration reconciles form submissions against the row-store:
// load the existing record, decide created vs updated, write through an
// idempotent upsert, and announce the result.
package registration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tillyhacks/registration-backend/internal/domain"
	"github.com/tillyhacks/registration-backend/internal/notify"
	"github.com/tillyhacks/registration-backend/pkg/ctxutil"
)

// profileRepo defines the profile repository interface needed by registration service.
type profileRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
}

// attendeeRepo defines the attendee form repository interface needed by registration service.
type attendeeRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.AttendeeForm, error)
	Upsert(ctx context.Context, form *domain.AttendeeForm) (*domain.AttendeeForm, error)
}

// parentRepo defines the parent form repository interface needed by registration service.
type parentRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.ParentForm, error)
	Upsert(ctx context.Context, form *domain.ParentForm) (*domain.ParentForm, error)
}

// waiverRepo defines the waiver form repository interface needed by registration service.
type waiverRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.WaiverForm, error)
	Upsert(ctx context.Context, form *domain.WaiverForm) (*domain.WaiverForm, error)
}

// notifier defines the notification interface needed by registration service.
type notifier interface {
	Emit(ctx context.Context, ev notify.Event)
}

// Service implements form reconciliation.
type Service struct {
	log       *slog.Logger
	profiles  profileRepo
	attendees attendeeRepo
	parents   parentRepo
	waivers   waiverRepo
	notify    notifier
}

// NewService creates a new registration service instance.
func NewService(
	logger *slog.Logger,
	profiles profileRepo,
	attendees attendeeRepo,
	parents parentRepo,
	waivers waiverRepo,
	notify notifier,
) *Service {
	return &Service{
		log:       logger.With("service", "registration"),
		profiles:  profiles,
		attendees: attendees,
		parents:   parents,
		waivers:   waivers,
		notify:    notify,
	}
}

// principal extracts the authenticated user id from the context.
func principal(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}

// ensureProfile makes sure the principal has a profile row before any form
// write; forms reference profiles by foreign key. Profiles are normally
// created at registration, so the create branch is a repair path.
func (s *Service) ensureProfile(ctx context.Context, userID uuid.UUID) error {
	_, err := s.profiles.GetByID(ctx, userID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("get profile: %w", err)
	}

	// The synthetic address keeps the email unique constraint satisfied.
	placeholder := &domain.Profile{
		ID:    userID,
		Name:  "GitHub User",
		Email: userID.String() + "@placeholder.tillyhacks.org",
	}
	if _, err := s.profiles.Create(ctx, placeholder); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			// Concurrent repair; the row is there now.
			return nil
		}
		return fmt.Errorf("create profile: %w", err)
	}

	s.log.InfoContext(ctx, "created placeholder profile",
		slog.String("user_id", userID.String()))

	return nil
}

// announce emits the form notification in a detached goroutine so a slow
// webhook never delays the response.
func (s *Service) announce(ctx context.Context, ev notify.Event) {
	go s.notify.Emit(context.WithoutCancel(ctx), ev)
}

// formAction maps a reconcile outcome to its notification action.
func formAction(outcome domain.Outcome) notify.Action {
	if outcome == domain.OutcomeUpdated {
		return notify.ActionUpdated
	}
	return notify.ActionSubmitted
}
