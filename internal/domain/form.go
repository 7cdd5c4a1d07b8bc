package domain

import (
	"time"

	"github.com/google/uuid"
)

// FormKind identifies one of the registration form collections.
type FormKind string

const (
	FormKindAttendee FormKind = "attendee"
	FormKindParent   FormKind = "parent"
	FormKindWaiver   FormKind = "waiver"
)

// String implements fmt.Stringer.
func (k FormKind) String() string { return string(k) }

// Valid reports whether k is one of the known form kinds.
func (k FormKind) Valid() bool {
	switch k {
	case FormKindAttendee, FormKindParent, FormKindWaiver:
		return true
	}
	return false
}

// Outcome tags a reconcile call as a first submission or a rewrite of an
// existing record.
type Outcome string

const (
	OutcomeCreated Outcome = "created"
	OutcomeUpdated Outcome = "updated"
)

// String implements fmt.Stringer.
func (o Outcome) String() string { return string(o) }

// FormMeta holds the fields shared by every form row. UpdatedAt is NULL until
// the row is rewritten; it is the sole signal used to label a record
// "Updated" in the admin views.
type FormMeta struct {
	ID        int64
	UserID    uuid.UUID
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Updated reports whether the row has been rewritten since its first
// submission. An UpdatedAt equal to CreatedAt still counts as not updated.
func (m FormMeta) Updated() bool {
	return m.UpdatedAt != nil && m.UpdatedAt.After(m.CreatedAt)
}

// AttendeeForm is the attendee registration record, at most one per user.
type AttendeeForm struct {
	FormMeta
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

// ParentForm is the parent/guardian contact record, at most one per user.
type ParentForm struct {
	FormMeta
	ParentName       string
	ContactNumber    string
	EmergencyContact string
}

// WaiverForm is the signed waiver record, at most one per user.
type WaiverForm struct {
	FormMeta
	WaiverAgreement bool
	Signature       string
}

// AttendeeSubmission is an attendee form joined to its owner's profile.
type AttendeeSubmission struct {
	AttendeeForm
	Profile ProfileRef
}

// ParentSubmission is a parent form joined to its owner's profile.
type ParentSubmission struct {
	ParentForm
	Profile ProfileRef
}

// WaiverSubmission is a waiver form joined to its owner's profile.
type WaiverSubmission struct {
	WaiverForm
	Profile ProfileRef
}
