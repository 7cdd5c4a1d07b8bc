package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tillyhacks/registration-backend/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeValidationError renders a ValidationError with per-field messages so
// the frontend can highlight individual inputs.
func writeValidationError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	fields := make(map[string]string, len(verr.Errors))
	for _, fe := range verr.Errors {
		fields[fe.Field] = fe.Message
	}
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"error":  "validation failed",
		"fields": fields,
	})
}
