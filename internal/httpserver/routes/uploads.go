package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/klub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/klub/internal/httpserver/handlers"
)

func init() { Register(registerUploads) }

// registerUploads serves the local bucket. Skipped when uploads go elsewhere.
func registerUploads(r chi.Router, d deps.Deps) {
	if d.Bucket == nil {
		return
	}
	r.Get("/uploads/{name}", handlers.ServeUpload(d))
}
