package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/klub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/klub/internal/logger"
)

const probeTimeout = 2 * time.Second

type readyzResponse struct {
	Ready bool   `json:"ready"`
	Error string `json:"error,omitempty"`
}

// Readyz reports ready once both the record store and the posts database answer.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
		defer cancel()

		if err := d.Backend.Ping(ctx); err != nil {
			d.Logger.Warn("readyz: record store unavailable", logger.Error(err))
			writeJSON(d, w, http.StatusServiceUnavailable, readyzResponse{Error: "store unavailable"})
			return
		}
		if err := d.Posts.Ping(ctx); err != nil {
			d.Logger.Warn("readyz: posts database unavailable", logger.Error(err))
			writeJSON(d, w, http.StatusServiceUnavailable, readyzResponse{Error: "posts unavailable"})
			return
		}

		writeJSON(d, w, http.StatusOK, readyzResponse{Ready: true})
	}
}
