package registration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tillyhacks/registration-backend/internal/domain"
	"github.com/tillyhacks/registration-backend/internal/notify"
)

// SubmitWaiver reconciles the waiver form for the authenticated user.
func (s *Service) SubmitWaiver(ctx context.Context, input WaiverInput) (*WaiverResult, error) {
	userID, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.ensureProfile(ctx, userID); err != nil {
		return nil, fmt.Errorf("registration.SubmitWaiver: %w", err)
	}

	outcome := domain.OutcomeCreated
	if _, err := s.waivers.GetByUserID(ctx, userID); err == nil {
		outcome = domain.OutcomeUpdated
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("registration.SubmitWaiver load existing: %w", err)
	}

	saved, err := s.waivers.Upsert(ctx, input.toDomain(userID))
	if err != nil {
		return nil, fmt.Errorf("registration.SubmitWaiver upsert: %w", err)
	}

	s.announce(ctx, notify.WaiverFormEvent(
		formAction(outcome), saved.Signature, saved.WaiverAgreement))

	s.log.InfoContext(ctx, "waiver form reconciled",
		slog.String("user_id", userID.String()),
		slog.String("outcome", outcome.String()))

	return &WaiverResult{Outcome: outcome, Form: saved}, nil
}

// GetWaiver returns the authenticated user's waiver form.
// Returns ErrNotFound when the user has not submitted one yet.
func (s *Service) GetWaiver(ctx context.Context) (*domain.WaiverForm, error) {
	userID, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	form, err := s.waivers.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("registration.GetWaiver: %w", err)
	}

	return form, nil
}
