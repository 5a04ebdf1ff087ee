package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	derr "github.com/ozzus/nextbid/internal/domain/errors"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	if payload == nil {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// statusFor maps service errors to an HTTP status and a client-safe message.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, derr.ErrInvalidCommandInput),
		errors.Is(err, derr.ErrUnsupportedCommandKind),
		errors.Is(err, derr.ErrInvalidProfileID):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, derr.ErrProfileNotFound):
		return http.StatusNotFound, "profile not found"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "deadline exceeded"
	case errors.Is(err, derr.ErrCatalogUnavailable):
		return http.StatusServiceUnavailable, "trip catalog unavailable"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func decodeJSON(r *http.Request, out interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(out)
}
