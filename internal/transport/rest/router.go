package rest

import (
	"net/http"

	"github.com/tillyhacks/registration-backend/internal/transport/middleware"
)

// NewRouter registers all REST routes and wraps them with the given
// middleware chain. loginLimit is applied only to the credential endpoints.
func NewRouter(
	auth *AuthHandler,
	forms *FormsHandler,
	adm *AdminHandler,
	health *HealthHandler,
	mw middleware.Middleware,
	loginLimit middleware.Middleware,
) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("POST /api/auth/register", loginLimit(http.HandlerFunc(auth.Register)))
	mux.Handle("POST /api/auth/login", loginLimit(http.HandlerFunc(auth.Login)))
	mux.Handle("POST /api/auth/oauth", loginLimit(http.HandlerFunc(auth.OAuth)))
	mux.HandleFunc("POST /api/auth/logout", auth.Logout)

	mux.HandleFunc("GET /api/forms/attendee", forms.GetAttendee)
	mux.HandleFunc("POST /api/forms/attendee", forms.SubmitAttendee)
	mux.HandleFunc("GET /api/forms/parent", forms.GetParent)
	mux.HandleFunc("POST /api/forms/parent", forms.SubmitParent)
	mux.HandleFunc("GET /api/forms/waiver", forms.GetWaiver)
	mux.HandleFunc("POST /api/forms/waiver", forms.SubmitWaiver)

	mux.Handle("POST /api/admin/login", loginLimit(http.HandlerFunc(adm.Login)))
	mux.HandleFunc("GET /api/admin/forms", adm.Forms)
	mux.HandleFunc("GET /api/admin/export/{kind}", adm.Export)

	mux.HandleFunc("GET /healthz", health.Health)
	mux.HandleFunc("GET /livez", health.Live)

	return mw(mux)
}
