package registration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tillyhacks/registration-backend/internal/domain"
	"github.com/tillyhacks/registration-backend/internal/notify"
)

// SubmitAttendee reconciles the attendee form for the authenticated user:
// first submission inserts a row, a resubmission rewrites it in place. The
// result reports which of the two happened.
func (s *Service) SubmitAttendee(ctx context.Context, input AttendeeInput) (*AttendeeResult, error) {
	userID, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.ensureProfile(ctx, userID); err != nil {
		return nil, fmt.Errorf("registration.SubmitAttendee: %w", err)
	}

	// The outcome is decided by the pre-write lookup, not the write itself.
	outcome := domain.OutcomeCreated
	if _, err := s.attendees.GetByUserID(ctx, userID); err == nil {
		outcome = domain.OutcomeUpdated
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("registration.SubmitAttendee load existing: %w", err)
	}

	saved, err := s.attendees.Upsert(ctx, input.toDomain(userID))
	if err != nil {
		return nil, fmt.Errorf("registration.SubmitAttendee upsert: %w", err)
	}

	s.announce(ctx, notify.AttendeeFormEvent(
		formAction(outcome), saved.AttendeeName, saved.School, saved.ProgrammingExperience))

	s.log.InfoContext(ctx, "attendee form reconciled",
		slog.String("user_id", userID.String()),
		slog.String("outcome", outcome.String()))

	return &AttendeeResult{Outcome: outcome, Form: saved}, nil
}

// GetAttendee returns the authenticated user's attendee form.
// Returns ErrNotFound when the user has not submitted one yet.
func (s *Service) GetAttendee(ctx context.Context) (*domain.AttendeeForm, error) {
	userID, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	form, err := s.attendees.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("registration.GetAttendee: %w", err)
	}

	return form, nil
}
