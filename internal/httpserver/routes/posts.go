package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/klub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/klub/internal/httpserver/handlers"
)

func init() { Register(registerPosts) }

func registerPosts(r chi.Router, d deps.Deps) {
	r.Get("/api/posts", handlers.ListPosts(d))
	r.Post("/api/posts", handlers.CreatePost(d))
	r.Delete("/api/posts/{id}", handlers.DeletePost(d))
}
