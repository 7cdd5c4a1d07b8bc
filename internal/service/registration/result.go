package registration

import "github.com/tillyhacks/registration-backend/internal/domain"

// AttendeeResult is returned by SubmitAttendee.
type AttendeeResult struct {
	Outcome domain.Outcome
	Form    *domain.AttendeeForm
}

// ParentResult is returned by SubmitParent.
type ParentResult struct {
	Outcome domain.Outcome
	Form    *domain.ParentForm
}

// WaiverResult is returned by SubmitWaiver.
type WaiverResult struct {
	Outcome domain.Outcome
	Form    *domain.WaiverForm
}
