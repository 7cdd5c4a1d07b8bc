package middleware

import (
	"net/http"

	"github.com/tillyhacks/registration-backend/pkg/ctxutil"
)

type adminGate interface {
	Authenticate(password string) error
}

// AdminGate resolves the X-Admin-Token header into an admin mark on the
// context. Requests without the header pass through unmarked; a present but
// wrong token is rejected so a guessing client gets a clear answer.
func AdminGate(gate adminGate) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("X-Admin-Token")
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			if err := gate.Authenticate(token); err != nil {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			ctx := ctxutil.WithAdmin(r.Context())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
