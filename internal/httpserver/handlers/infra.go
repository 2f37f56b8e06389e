package handlers

import (
	"context"
	"net/http"

	"github.com/MrSnakeDoc/klub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/klub/internal/store"
)

type componentStatus struct {
	OK          bool     `json:"ok"`
	Backend     string   `json:"backend,omitempty"`
	Collections []string `json:"collections,omitempty"`
	Missing     []string `json:"missing,omitempty"`
	Keys        *int     `json:"keys,omitempty"`
	Bytes       *int     `json:"bytes,omitempty"`
	Rows        *int     `json:"rows,omitempty"`
	Error       string   `json:"error,omitempty"`
}

type infraResponse struct {
	Mode       string                     `json:"mode"`
	Components map[string]componentStatus `json:"components"`
}

// Infra reports the state of the record store and the posts database.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
		defer cancel()

		components := map[string]componentStatus{
			"store": checkStore(ctx, d),
			"posts": checkPosts(ctx, d),
		}

		writeJSON(d, w, http.StatusOK, infraResponse{
			Mode:       determineMode(components),
			Components: components,
		})
	}
}

func determineMode(components map[string]componentStatus) string {
	// Without the record store every read serves seed defaults
	if s, ok := components["store"]; ok && !s.OK {
		return "critical"
	}

	// Collections missing until the seed keeper runs again, or posts down
	if s := components["store"]; len(s.Missing) > 0 {
		return "degraded"
	}
	if p, ok := components["posts"]; ok && !p.OK {
		return "degraded"
	}

	return "optimal"
}

func checkStore(ctx context.Context, d deps.Deps) componentStatus {
	status := componentStatus{Backend: d.StoreBackend}
	if err := d.Backend.Ping(ctx); err != nil {
		status.Error = "unreachable"
		return status
	}
	status.OK = true

	if sizer, ok := d.Backend.(store.Sizer); ok {
		keys, size := sizer.Len(), sizer.Size()
		status.Keys, status.Bytes = &keys, &size
	}

	lister, ok := d.Backend.(store.Lister)
	if !ok {
		return status
	}
	present, err := lister.Collections(ctx)
	if err != nil {
		status.Error = err.Error()
		return status
	}

	have := make(map[string]bool, len(present))
	for _, name := range present {
		have[name] = true
	}
	status.Collections = present
	for _, key := range store.Keys() {
		if !have[key] {
			status.Missing = append(status.Missing, key)
		}
	}
	return status
}

func checkPosts(ctx context.Context, d deps.Deps) componentStatus {
	n, err := d.Posts.Count(ctx)
	if err != nil {
		return componentStatus{Error: "unreachable"}
	}
	return componentStatus{OK: true, Rows: &n}
}
