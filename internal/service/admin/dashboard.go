package admin

import (
	"context"
	"log/slog"
	"sync"

	"github.com/tillyhacks/registration-backend/internal/domain"
)

// Dashboard aggregates all three form collections. A failed collection stays
// empty with its error recorded; the others still populate.
type Dashboard struct {
	Attendee []domain.AttendeeSubmission
	Parent   []domain.ParentSubmission
	Waiver   []domain.WaiverSubmission

	AttendeeErr error
	ParentErr   error
	WaiverErr   error
}

// LoadAll fans out the three collection queries in parallel and waits for all
// of them to settle. Failures are isolated per collection and never abort the
// other two, which is why this is a WaitGroup and not an errgroup.
func (s *Service) LoadAll(ctx context.Context) *Dashboard {
	var (
		d  Dashboard
		wg sync.WaitGroup
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		d.Attendee, d.AttendeeErr = s.attendees.ListWithProfiles(ctx)
	}()
	go func() {
		defer wg.Done()
		d.Parent, d.ParentErr = s.parents.ListWithProfiles(ctx)
	}()
	go func() {
		defer wg.Done()
		d.Waiver, d.WaiverErr = s.waivers.ListWithProfiles(ctx)
	}()
	wg.Wait()

	for kind, err := range map[string]error{
		"attendee": d.AttendeeErr,
		"parent":   d.ParentErr,
		"waiver":   d.WaiverErr,
	} {
		if err != nil {
			s.log.ErrorContext(ctx, "dashboard collection failed",
				slog.String("kind", kind),
				slog.String("error", err.Error()))
		}
	}

	return &d
}
