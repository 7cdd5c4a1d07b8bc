package registration

import (
	"strings"

	"github.com/google/uuid"

	"github.com/tillyhacks/registration-backend/internal/domain"
)

// AttendeeInput holds the attendee form fields as submitted.
type AttendeeInput struct {
	AttendeeName          string
	School                string
	GradeLevel            string
	ProgrammingExperience string
	PreferredLanguages    []string
	TshirtSize            string
	EmergencyContactName  string
	EmergencyContactPhone string
	HowDidYouHear         string
	WhatToLearn           string
	TeamPreference        string
	DietaryRestrictions   *string
}

// Validate validates the attendee input.
func (i AttendeeInput) Validate() error {
	var errs []domain.FieldError

	required := []struct {
		field string
		value string
	}{
		{"attendee_name", i.AttendeeName},
		{"school", i.School},
		{"grade_level", i.GradeLevel},
		{"programming_experience", i.ProgrammingExperience},
		{"tshirt_size", i.TshirtSize},
		{"emergency_contact_name", i.EmergencyContactName},
		{"emergency_contact_phone", i.EmergencyContactPhone},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, domain.FieldError{Field: r.field, Message: "required"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i AttendeeInput) toDomain(userID uuid.UUID) *domain.AttendeeForm {
	return &domain.AttendeeForm{
		FormMeta:              domain.FormMeta{UserID: userID},
		AttendeeName:          strings.TrimSpace(i.AttendeeName),
		School:                strings.TrimSpace(i.School),
		GradeLevel:            i.GradeLevel,
		ProgrammingExperience: i.ProgrammingExperience,
		PreferredLanguages:    i.PreferredLanguages,
		TshirtSize:            i.TshirtSize,
		EmergencyContactName:  strings.TrimSpace(i.EmergencyContactName),
		EmergencyContactPhone: strings.TrimSpace(i.EmergencyContactPhone),
		HowDidYouHear:         i.HowDidYouHear,
		WhatToLearn:           i.WhatToLearn,
		TeamPreference:        i.TeamPreference,
		DietaryRestrictions:   i.DietaryRestrictions,
	}
}

// ParentInput holds the parent form fields as submitted.
type ParentInput struct {
	ParentName       string
	ContactNumber    string
	EmergencyContact string
}

// Validate validates the parent input.
func (i ParentInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.ParentName) == "" {
		errs = append(errs, domain.FieldError{Field: "parent_name", Message: "required"})
	}
	if strings.TrimSpace(i.ContactNumber) == "" {
		errs = append(errs, domain.FieldError{Field: "contact_number", Message: "required"})
	}
	if strings.TrimSpace(i.EmergencyContact) == "" {
		errs = append(errs, domain.FieldError{Field: "emergency_contact", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ParentInput) toDomain(userID uuid.UUID) *domain.ParentForm {
	return &domain.ParentForm{
		FormMeta:         domain.FormMeta{UserID: userID},
		ParentName:       strings.TrimSpace(i.ParentName),
		ContactNumber:    strings.TrimSpace(i.ContactNumber),
		EmergencyContact: strings.TrimSpace(i.EmergencyContact),
	}
}

// WaiverInput holds the waiver form fields as submitted.
type WaiverInput struct {
	WaiverAgreement bool
	Signature       string
}

// Validate validates the waiver input. The agreement checkbox is mandatory;
// an unchecked waiver is not a submittable state.
func (i WaiverInput) Validate() error {
	var errs []domain.FieldError

	if !i.WaiverAgreement {
		errs = append(errs, domain.FieldError{Field: "waiver_agreement", Message: "agreement is required"})
	}
	if strings.TrimSpace(i.Signature) == "" {
		errs = append(errs, domain.FieldError{Field: "signature", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i WaiverInput) toDomain(userID uuid.UUID) *domain.WaiverForm {
	return &domain.WaiverForm{
		FormMeta:        domain.FormMeta{UserID: userID},
		WaiverAgreement: i.WaiverAgreement,
		Signature:       strings.TrimSpace(i.Signature),
	}
}
