package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/tillyhacks/registration-backend/internal/config"
	"github.com/tillyhacks/registration-backend/internal/domain"
	"github.com/tillyhacks/registration-backend/internal/service/registration"
)

// registrationService defines the minimal interface needed by FormsHandler.
type registrationService interface {
	SubmitAttendee(ctx context.Context, input registration.AttendeeInput) (*registration.AttendeeResult, error)
	GetAttendee(ctx context.Context) (*domain.AttendeeForm, error)
	SubmitParent(ctx context.Context, input registration.ParentInput) (*registration.ParentResult, error)
	GetParent(ctx context.Context) (*domain.ParentForm, error)
	SubmitWaiver(ctx context.Context, input registration.WaiverInput) (*registration.WaiverResult, error)
	GetWaiver(ctx context.Context) (*domain.WaiverForm, error)
}

// FormsHandler serves the registration form REST endpoints.
type FormsHandler struct {
	svc registrationService
	log *slog.Logger
	cfg config.FormsConfig
}

// NewFormsHandler creates a FormsHandler.
func NewFormsHandler(svc registrationService, cfg config.FormsConfig, logger *slog.Logger) *FormsHandler {
	return &FormsHandler{
		svc: svc,
		log: logger.With("handler", "forms"),
		cfg: cfg,
	}
}

type attendeeRequest struct {
	AttendeeName          string   `json:"attendee_name"`
	School                string   `json:"school"`
	GradeLevel            string   `json:"grade_level"`
	ProgrammingExperience string   `json:"programming_experience"`
	PreferredLanguages    []string `json:"preferred_languages"`
	TshirtSize            string   `json:"tshirt_size"`
	EmergencyContactName  string   `json:"emergency_contact_name"`
	EmergencyContactPhone string   `json:"emergency_contact_phone"`
	HowDidYouHear         string   `json:"how_did_you_hear"`
	WhatToLearn           string   `json:"what_to_learn"`
	TeamPreference        string   `json:"team_preference"`
	DietaryRestrictions   *string  `json:"dietary_restrictions"`
}

type parentRequest struct {
	ParentName       string `json:"parent_name"`
	ContactNumber    string `json:"contact_number"`
	EmergencyContact string `json:"emergency_contact"`
}

type waiverRequest struct {
	WaiverAgreement bool   `json:"waiver_agreement"`
	Signature       string `json:"signature"`
}

type formMetaResponse struct {
	ID        int64      `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	Updated   bool       `json:"updated"`
}

type attendeeResponse struct {
	formMetaResponse
	AttendeeName          string   `json:"attendee_name"`
	School                string   `json:"school"`
	GradeLevel            string   `json:"grade_level"`
	ProgrammingExperience string   `json:"programming_experience"`
	PreferredLanguages    []string `json:"preferred_languages"`
	TshirtSize            string   `json:"tshirt_size"`
	EmergencyContactName  string   `json:"emergency_contact_name"`
	EmergencyContactPhone string   `json:"emergency_contact_phone"`
	HowDidYouHear         string   `json:"how_did_you_hear"`
	WhatToLearn           string   `json:"what_to_learn"`
	TeamPreference        string   `json:"team_preference"`
	DietaryRestrictions   *string  `json:"dietary_restrictions,omitempty"`
}

type parentResponse struct {
	formMetaResponse
	ParentName       string `json:"parent_name"`
	ContactNumber    string `json:"contact_number"`
	EmergencyContact string `json:"emergency_contact"`
}

type waiverResponse struct {
	formMetaResponse
	WaiverAgreement bool   `json:"waiver_agreement"`
	Signature       string `json:"signature"`
}

type submitResponse struct {
	Outcome string `json:"outcome"`
	Form    any    `json:"form"`
}

// SubmitAttendee handles POST /api/forms/attendee.
func (h *FormsHandler) SubmitAttendee(w http.ResponseWriter, r *http.Request) {
	if !h.formsOpen(w) {
		return
	}

	var req attendeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.SubmitAttendee(r.Context(), registration.AttendeeInput{
		AttendeeName:          req.AttendeeName,
		School:                req.School,
		GradeLevel:            req.GradeLevel,
		ProgrammingExperience: req.ProgrammingExperience,
		PreferredLanguages:    req.PreferredLanguages,
		TshirtSize:            req.TshirtSize,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
		HowDidYouHear:         req.HowDidYouHear,
		WhatToLearn:           req.WhatToLearn,
		TeamPreference:        req.TeamPreference,
		DietaryRestrictions:   req.DietaryRestrictions,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, submitStatus(result.Outcome), submitResponse{
		Outcome: result.Outcome.String(),
		Form:    toAttendeeResponse(result.Form),
	})
}

// GetAttendee handles GET /api/forms/attendee.
func (h *FormsHandler) GetAttendee(w http.ResponseWriter, r *http.Request) {
	if !h.formsOpen(w) {
		return
	}

	form, err := h.svc.GetAttendee(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAttendeeResponse(form))
}

// SubmitParent handles POST /api/forms/parent.
func (h *FormsHandler) SubmitParent(w http.ResponseWriter, r *http.Request) {
	if !h.formsOpen(w) {
		return
	}

	var req parentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.SubmitParent(r.Context(), registration.ParentInput{
		ParentName:       req.ParentName,
		ContactNumber:    req.ContactNumber,
		EmergencyContact: req.EmergencyContact,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, submitStatus(result.Outcome), submitResponse{
		Outcome: result.Outcome.String(),
		Form:    toParentResponse(result.Form),
	})
}

// GetParent handles GET /api/forms/parent.
func (h *FormsHandler) GetParent(w http.ResponseWriter, r *http.Request) {
	if !h.formsOpen(w) {
		return
	}

	form, err := h.svc.GetParent(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toParentResponse(form))
}

// SubmitWaiver handles POST /api/forms/waiver.
func (h *FormsHandler) SubmitWaiver(w http.ResponseWriter, r *http.Request) {
	if !h.formsOpen(w) {
		return
	}

	var req waiverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.SubmitWaiver(r.Context(), registration.WaiverInput{
		WaiverAgreement: req.WaiverAgreement,
		Signature:       req.Signature,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, submitStatus(result.Outcome), submitResponse{
		Outcome: result.Outcome.String(),
		Form:    toWaiverResponse(result.Form),
	})
}

// GetWaiver handles GET /api/forms/waiver.
func (h *FormsHandler) GetWaiver(w http.ResponseWriter, r *http.Request) {
	if !h.formsOpen(w) {
		return
	}

	form, err := h.svc.GetWaiver(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toWaiverResponse(form))
}

// formsOpen answers 503 and returns false when the registration flow is
// switched off; the rest of the site stays up.
func (h *FormsHandler) formsOpen(w http.ResponseWriter) bool {
	if h.cfg.Disabled {
		writeError(w, http.StatusServiceUnavailable, "registration is currently closed")
		return false
	}
	return true
}

func (h *FormsHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeValidationError(w, err)
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "authentication required")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "no submission yet")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// submitStatus maps a first submission to 201 and a rewrite to 200.
func submitStatus(outcome domain.Outcome) int {
	if outcome == domain.OutcomeCreated {
		return http.StatusCreated
	}
	return http.StatusOK
}

func toFormMetaResponse(m domain.FormMeta) formMetaResponse {
	return formMetaResponse{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		Updated:   m.Updated(),
	}
}

func toAttendeeResponse(f *domain.AttendeeForm) attendeeResponse {
	return attendeeResponse{
		formMetaResponse:      toFormMetaResponse(f.FormMeta),
		AttendeeName:          f.AttendeeName,
		School:                f.School,
		GradeLevel:            f.GradeLevel,
		ProgrammingExperience: f.ProgrammingExperience,
		PreferredLanguages:    f.PreferredLanguages,
		TshirtSize:            f.TshirtSize,
		EmergencyContactName:  f.EmergencyContactName,
		EmergencyContactPhone: f.EmergencyContactPhone,
		HowDidYouHear:         f.HowDidYouHear,
		WhatToLearn:           f.WhatToLearn,
		TeamPreference:        f.TeamPreference,
		DietaryRestrictions:   f.DietaryRestrictions,
	}
}

func toParentResponse(f *domain.ParentForm) parentResponse {
	return parentResponse{
		formMetaResponse: toFormMetaResponse(f.FormMeta),
		ParentName:       f.ParentName,
		ContactNumber:    f.ContactNumber,
		EmergencyContact: f.EmergencyContact,
	}
}

func toWaiverResponse(f *domain.WaiverForm) waiverResponse {
	return waiverResponse{
		formMetaResponse: toFormMetaResponse(f.FormMeta),
		WaiverAgreement:  f.WaiverAgreement,
		Signature:        f.Signature,
	}
}
