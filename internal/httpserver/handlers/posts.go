package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/klub/internal/domain"
	"github.com/MrSnakeDoc/klub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/klub/internal/logger"
	"github.com/MrSnakeDoc/klub/internal/posts"
)

func ListPosts(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := d.Posts.List(r.Context())
		if err != nil {
			handleError(d, w, r, err)
			return
		}
		writeJSON(d, w, http.StatusOK, list)
	}
}

// CreatePost handles POST /api/posts. Title and content are required.
func CreatePost(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in posts.NewPost
		if err := decodeJSON(r, &in); err != nil {
			handleError(d, w, r, err)
			return
		}

		p, err := d.Posts.Create(r.Context(), in)
		if err != nil {
			handleError(d, w, r, err)
			return
		}
		d.Logger.Info("post created",
			logger.Int64("id", p.ID),
			logger.String("slug", p.Slug))
		writeJSON(d, w, http.StatusOK, map[string]bool{"success": true})
	}
}

// DeletePost answers 204 when a row was removed and 404 otherwise.
func DeletePost(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeJSON(d, w, http.StatusBadRequest, map[string]string{"message": "Post ID is required"})
			return
		}

		if err := d.Posts.Delete(r.Context(), id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeJSON(d, w, http.StatusNotFound, map[string]string{"message": "Post not found"})
				return
			}
			handleError(d, w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
