package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MrSnakeDoc/voyage/internal/domain"
	"github.com/MrSnakeDoc/voyage/internal/logger"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the typed error taxonomy onto HTTP statuses:
// validation -> 400, not found -> 404, store down -> 503, anything else
// (including a malformed stored timestamp) -> 500.
func writeError(w http.ResponseWriter, log logger.Logger, err error) {
	var verr *domain.ValidationError

	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: verr.Error()})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Detail: "not found"})
	case errors.Is(err, domain.ErrStoreUnavailable):
		log.Error("store unavailable", logger.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Detail: "store unavailable"})
	default:
		log.Error("internal error", logger.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: "internal error"})
	}
}

// decodeBody parses a JSON request body. A body that is not valid JSON,
// or carries a wrong-typed field, is a validation error.
func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &domain.ValidationError{Field: "body", Reason: "invalid json payload"}
	}
	return nil
}
