package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MrSnakeDoc/klub/internal/domain"
	"github.com/MrSnakeDoc/klub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/klub/internal/logger"
)

const (
	contentTypeJSON = "application/json"
	msgNotFound     = "Entity not found"
	msgBadBody      = "invalid request body"
	msgInternal     = "internal error"
)

func writeJSON(d deps.Deps, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		d.Logger.Debug("failed to write response", logger.Error(err))
	}
}

func writeError(d deps.Deps, w http.ResponseWriter, status int, message string) {
	writeJSON(d, w, status, map[string]string{"error": message})
}

// handleError maps domain sentinels to status codes and logs the rest.
func handleError(d deps.Deps, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(d, w, http.StatusNotFound, msgNotFound)
	case errors.Is(err, domain.ErrValidation):
		writeError(d, w, http.StatusBadRequest, err.Error())
	default:
		d.Logger.Error("request failed",
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
			logger.Error(err))
		writeError(d, w, http.StatusInternalServerError, msgInternal)
	}
}

// decodeJSON reads the request body into v. An unreadable body is a
// validation error.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.Invalid("%s: %v", msgBadBody, err)
	}
	return nil
}

// found writes v, or the not-found error when v is nil.
func found[T any](d deps.Deps, w http.ResponseWriter, v *T) {
	if v == nil {
		writeError(d, w, http.StatusNotFound, msgNotFound)
		return
	}
	writeJSON(d, w, http.StatusOK, v)
}
