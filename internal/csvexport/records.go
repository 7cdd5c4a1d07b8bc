package csvexport

import (
	"time"

	"github.com/tillyhacks/registration-backend/internal/domain"
)

// Download filenames, fixed per form kind.
const (
	AttendeeFilename = "tillyhacks_attendee_data.csv"
	ParentFilename   = "tillyhacks_parent_data.csv"
	WaiverFilename   = "tillyhacks_waiver_data.csv"
)

// ContentType is the MIME type for the CSV downloads.
const ContentType = "text/csv;charset=utf-8"

// AttendeeHeaders is the export column order for attendee forms.
var AttendeeHeaders = []string{
	"id", "created_at", "updated_at", "attendee_name", "school",
	"grade_level", "programming_experience", "preferred_languages",
	"tshirt_size", "emergency_contact_name", "emergency_contact_phone",
	"how_did_you_hear", "what_to_learn", "team_preference",
	"dietary_restrictions", "profiles.name", "profiles.email",
}

// ParentHeaders is the export column order for parent forms.
var ParentHeaders = []string{
	"id", "created_at", "updated_at", "parent_name", "contact_number",
	"emergency_contact", "profiles.name", "profiles.email",
}

// WaiverHeaders is the export column order for waiver forms.
var WaiverHeaders = []string{
	"id", "created_at", "updated_at", "waiver_agreement", "signature",
	"profiles.name", "profiles.email",
}

// AttendeeRows converts attendee submissions to serializer rows,
// preserving order.
func AttendeeRows(forms []domain.AttendeeSubmission) []Row {
	rows := make([]Row, len(forms))
	for i, f := range forms {
		rows[i] = Row{
			"id":                      f.ID,
			"created_at":              formatTime(f.CreatedAt),
			"updated_at":              formatTimePtr(f.UpdatedAt),
			"attendee_name":           f.AttendeeName,
			"school":                  f.School,
			"grade_level":             f.GradeLevel,
			"programming_experience":  f.ProgrammingExperience,
			"preferred_languages":     f.PreferredLanguages,
			"tshirt_size":             f.TshirtSize,
			"emergency_contact_name":  f.EmergencyContactName,
			"emergency_contact_phone": f.EmergencyContactPhone,
			"how_did_you_hear":        f.HowDidYouHear,
			"what_to_learn":           f.WhatToLearn,
			"team_preference":         f.TeamPreference,
			"dietary_restrictions":    f.DietaryRestrictions,
			"profiles":                profileRow(f.Profile),
		}
	}
	return rows
}

// ParentRows converts parent submissions to serializer rows.
func ParentRows(forms []domain.ParentSubmission) []Row {
	rows := make([]Row, len(forms))
	for i, f := range forms {
		rows[i] = Row{
			"id":                f.ID,
			"created_at":        formatTime(f.CreatedAt),
			"updated_at":        formatTimePtr(f.UpdatedAt),
			"parent_name":       f.ParentName,
			"contact_number":    f.ContactNumber,
			"emergency_contact": f.EmergencyContact,
			"profiles":          profileRow(f.Profile),
		}
	}
	return rows
}

// WaiverRows converts waiver submissions to serializer rows.
func WaiverRows(forms []domain.WaiverSubmission) []Row {
	rows := make([]Row, len(forms))
	for i, f := range forms {
		rows[i] = Row{
			"id":               f.ID,
			"created_at":       formatTime(f.CreatedAt),
			"updated_at":       formatTimePtr(f.UpdatedAt),
			"waiver_agreement": f.WaiverAgreement,
			"signature":        f.Signature,
			"profiles":         profileRow(f.Profile),
		}
	}
	return rows
}

func profileRow(p domain.ProfileRef) Row {
	return Row{"name": p.Name, "email": p.Email}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatTime(*t)
}
