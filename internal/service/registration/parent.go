package registration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tillyhacks/registration-backend/internal/domain"
	"github.com/tillyhacks/registration-backend/internal/notify"
)

// SubmitParent reconciles the parent/guardian form for the authenticated user.
func (s *Service) SubmitParent(ctx context.Context, input ParentInput) (*ParentResult, error) {
	userID, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.ensureProfile(ctx, userID); err != nil {
		return nil, fmt.Errorf("registration.SubmitParent: %w", err)
	}

	outcome := domain.OutcomeCreated
	if _, err := s.parents.GetByUserID(ctx, userID); err == nil {
		outcome = domain.OutcomeUpdated
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("registration.SubmitParent load existing: %w", err)
	}

	saved, err := s.parents.Upsert(ctx, input.toDomain(userID))
	if err != nil {
		return nil, fmt.Errorf("registration.SubmitParent upsert: %w", err)
	}

	s.announce(ctx, notify.ParentFormEvent(
		formAction(outcome), saved.ParentName, saved.ContactNumber))

	s.log.InfoContext(ctx, "parent form reconciled",
		slog.String("user_id", userID.String()),
		slog.String("outcome", outcome.String()))

	return &ParentResult{Outcome: outcome, Form: saved}, nil
}

// GetParent returns the authenticated user's parent form.
// Returns ErrNotFound when the user has not submitted one yet.
func (s *Service) GetParent(ctx context.Context) (*domain.ParentForm, error) {
	userID, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	form, err := s.parents.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("registration.GetParent: %w", err)
	}

	return form, nil
}
