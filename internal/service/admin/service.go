// Package admin serves the organizer dashboard: a password gate, the
// aggregated view of all three form collections, and the CSV downloads.
package admin

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"github.com/tillyhacks/registration-backend/internal/config"
	"github.com/tillyhacks/registration-backend/internal/domain"
)

// attendeeLister defines the attendee repository interface needed by admin service.
type attendeeLister interface {
	ListWithProfiles(ctx context.Context) ([]domain.AttendeeSubmission, error)
}

// parentLister defines the parent repository interface needed by admin service.
type parentLister interface {
	ListWithProfiles(ctx context.Context) ([]domain.ParentSubmission, error)
}

// waiverLister defines the waiver repository interface needed by admin service.
type waiverLister interface {
	ListWithProfiles(ctx context.Context) ([]domain.WaiverSubmission, error)
}

// Service implements admin operations.
type Service struct {
	log       *slog.Logger
	attendees attendeeLister
	parents   parentLister
	waivers   waiverLister
	cfg       config.AdminConfig
}

// NewService creates a new admin service instance.
func NewService(
	logger *slog.Logger,
	attendees attendeeLister,
	parents parentLister,
	waivers waiverLister,
	cfg config.AdminConfig,
) *Service {
	return &Service{
		log:       logger.With("service", "admin"),
		attendees: attendees,
		parents:   parents,
		waivers:   waivers,
		cfg:       cfg,
	}
}

// Authenticate checks the dashboard password. This is a soft gate in front of
// the organizer pages, not an access-control system.
// Returns ErrForbidden on mismatch.
func (s *Service) Authenticate(password string) error {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.Password)) != 1 {
		return domain.ErrForbidden
	}
	return nil
}
