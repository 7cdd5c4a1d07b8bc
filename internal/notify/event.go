package notify

import "fmt"

// Kind identifies what a notification is about.
type Kind string

const (
	KindNewUser      Kind = "new_user"
	KindAttendeeForm Kind = "attendee_form"
	KindParentForm   Kind = "parent_form"
	KindWaiverForm   Kind = "waiver_form"
)

// Action tags whether a form event was a first submission or a rewrite.
type Action string

const (
	ActionSubmitted Action = "submitted"
	ActionUpdated   Action = "updated"
)

// Event is one notification to be delivered to the webhook.
type Event struct {
	Kind   Kind
	Action Action
	// Title and Description are the rendered embed contents.
	Title       string
	Description string
	// Color is the embed accent color.
	Color int
}

// Embed accent colors, matching the registration site's palette.
const (
	colorDefault = 0x7c3aed // purple
	colorNewUser = 0x22c55e // green
	colorCreated = 0x10b981 // green
	colorUpdated = 0xf59e0b // orange
	colorParent  = 0x3b82f6 // blue
	colorWaiver  = 0xef4444 // red
)

// NewUserEvent builds the notification for a first successful registration.
func NewUserEvent(name, email, method string) Event {
	return Event{
		Kind:        KindNewUser,
		Action:      ActionSubmitted,
		Title:       "🎉 New User Registered!",
		Description: fmt.Sprintf("**Name:** %s\n**Email:** %s\n**Method:** %s", name, email, method),
		Color:       colorNewUser,
	}
}

// AttendeeFormEvent builds the notification for an attendee form write.
func AttendeeFormEvent(action Action, name, school, experience string) Event {
	return Event{
		Kind:        KindAttendeeForm,
		Action:      action,
		Title:       fmt.Sprintf("🎉 Attendee Form %s!", actionLabel(action)),
		Description: fmt.Sprintf("**Name:** %s\n**School:** %s\n**Experience:** %s", name, school, experience),
		Color:       actionColor(action, colorCreated),
	}
}

// ParentFormEvent builds the notification for a parent form write.
func ParentFormEvent(action Action, parentName, contactNumber string) Event {
	return Event{
		Kind:        KindParentForm,
		Action:      action,
		Title:       fmt.Sprintf("👨‍👩‍👧‍👦 Parent Form %s!", actionLabel(action)),
		Description: fmt.Sprintf("**Parent:** %s\n**Contact:** %s", parentName, contactNumber),
		Color:       actionColor(action, colorParent),
	}
}

// WaiverFormEvent builds the notification for a waiver form write.
func WaiverFormEvent(action Action, signature string, agreed bool) Event {
	agreement := "Disagreed"
	if agreed {
		agreement = "Agreed"
	}
	return Event{
		Kind:        KindWaiverForm,
		Action:      action,
		Title:       fmt.Sprintf("📝 Waiver Form %s!", actionLabel(action)),
		Description: fmt.Sprintf("**Signature:** %s\n**Agreement:** %s", signature, agreement),
		Color:       actionColor(action, colorWaiver),
	}
}

func actionLabel(a Action) string {
	if a == ActionUpdated {
		return "Updated"
	}
	return "Submitted"
}

func actionColor(a Action, created int) int {
	if a == ActionUpdated {
		return colorUpdated
	}
	return created
}
