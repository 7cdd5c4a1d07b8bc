package admin

import (
	"context"
	"fmt"

	"github.com/tillyhacks/registration-backend/internal/csvexport"
	"github.com/tillyhacks/registration-backend/internal/domain"
)

// ExportCSV serializes one form collection for download and returns the
// download filename alongside the CSV text.
func (s *Service) ExportCSV(ctx context.Context, kind domain.FormKind) (filename, text string, err error) {
	switch kind {
	case domain.FormKindAttendee:
		forms, err := s.attendees.ListWithProfiles(ctx)
		if err != nil {
			return "", "", fmt.Errorf("admin.ExportCSV attendee: %w", err)
		}
		return csvexport.AttendeeFilename, csvexport.Marshal(csvexport.AttendeeRows(forms), csvexport.AttendeeHeaders), nil

	case domain.FormKindParent:
		forms, err := s.parents.ListWithProfiles(ctx)
		if err != nil {
			return "", "", fmt.Errorf("admin.ExportCSV parent: %w", err)
		}
		return csvexport.ParentFilename, csvexport.Marshal(csvexport.ParentRows(forms), csvexport.ParentHeaders), nil

	case domain.FormKindWaiver:
		forms, err := s.waivers.ListWithProfiles(ctx)
		if err != nil {
			return "", "", fmt.Errorf("admin.ExportCSV waiver: %w", err)
		}
		return csvexport.WaiverFilename, csvexport.Marshal(csvexport.WaiverRows(forms), csvexport.WaiverHeaders), nil

	default:
		return "", "", domain.NewValidationError("kind", "unknown form kind")
	}
}
