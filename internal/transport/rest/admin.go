package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/tillyhacks/registration-backend/internal/csvexport"
	"github.com/tillyhacks/registration-backend/internal/domain"
	"github.com/tillyhacks/registration-backend/internal/service/admin"
	"github.com/tillyhacks/registration-backend/pkg/ctxutil"
)

// adminService defines the minimal interface needed by AdminHandler.
type adminService interface {
	Authenticate(password string) error
	LoadAll(ctx context.Context) *admin.Dashboard
	ExportCSV(ctx context.Context, kind domain.FormKind) (filename, text string, err error)
}

// AdminHandler serves the admin dashboard REST endpoints.
type AdminHandler struct {
	svc adminService
	log *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc adminService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{svc: svc, log: logger.With("handler", "admin")}
}

type adminLoginRequest struct {
	Password string `json:"password"`
}

type adminLoginResponse struct {
	Token string `json:"token"`
}

type submissionResponse struct {
	Form    any                `json:"form"`
	Profile profileRefResponse `json:"profile"`
}

type profileRefResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type dashboardResponse struct {
	Attendee []submissionResponse `json:"attendee"`
	Parent   []submissionResponse `json:"parent"`
	Waiver   []submissionResponse `json:"waiver"`
	Errors   map[string]string    `json:"errors,omitempty"`
}

// Login handles POST /api/admin/login. The gate is stateless: the shared
// secret doubles as the dashboard token, so a successful login just hands it
// back for the X-Admin-Token header.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.Authenticate(req.Password); err != nil {
		writeError(w, http.StatusForbidden, "wrong password")
		return
	}

	writeJSON(w, http.StatusOK, adminLoginResponse{Token: req.Password})
}

// Forms handles GET /api/admin/forms. A failed collection shows up in the
// errors map while the other two still render.
func (h *AdminHandler) Forms(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	d := h.svc.LoadAll(r.Context())

	resp := dashboardResponse{
		Attendee: make([]submissionResponse, 0, len(d.Attendee)),
		Parent:   make([]submissionResponse, 0, len(d.Parent)),
		Waiver:   make([]submissionResponse, 0, len(d.Waiver)),
	}
	for _, s := range d.Attendee {
		resp.Attendee = append(resp.Attendee, submissionResponse{
			Form:    toAttendeeResponse(&s.AttendeeForm),
			Profile: profileRefResponse(s.Profile),
		})
	}
	for _, s := range d.Parent {
		resp.Parent = append(resp.Parent, submissionResponse{
			Form:    toParentResponse(&s.ParentForm),
			Profile: profileRefResponse(s.Profile),
		})
	}
	for _, s := range d.Waiver {
		resp.Waiver = append(resp.Waiver, submissionResponse{
			Form:    toWaiverResponse(&s.WaiverForm),
			Profile: profileRefResponse(s.Profile),
		})
	}

	errs := make(map[string]string)
	if d.AttendeeErr != nil {
		errs[domain.FormKindAttendee.String()] = d.AttendeeErr.Error()
	}
	if d.ParentErr != nil {
		errs[domain.FormKindParent.String()] = d.ParentErr.Error()
	}
	if d.WaiverErr != nil {
		errs[domain.FormKindWaiver.String()] = d.WaiverErr.Error()
	}
	if len(errs) > 0 {
		resp.Errors = errs
	}

	writeJSON(w, http.StatusOK, resp)
}

// Export handles GET /api/admin/export/{kind}.
func (h *AdminHandler) Export(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	kind := domain.FormKind(r.PathValue("kind"))

	filename, text, err := h.svc.ExportCSV(r.Context(), kind)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", csvexport.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(text)) //nolint:errcheck
}

func (h *AdminHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if !ctxutil.IsAdminCtx(r.Context()) {
		writeError(w, http.StatusForbidden, "admin access required")
		return false
	}
	return true
}

func (h *AdminHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeValidationError(w, err)
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
