package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/klub/internal/domain"
	"github.com/MrSnakeDoc/klub/internal/httpserver/deps"
)

func Categories(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := d.Portal.Categories(r.Context())
		if err != nil {
			handleError(d, w, r, err)
			return
		}
		writeJSON(d, w, http.StatusOK, list)
	}
}

func CategoryByID(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := d.Portal.CategoryByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			handleError(d, w, r, err)
			return
		}
		found(d, w, c)
	}
}

func CreateCategory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in domain.CategoryInput
		if err := decodeJSON(r, &in); err != nil {
			handleError(d, w, r, err)
			return
		}
		if err := in.Validate(); err != nil {
			handleError(d, w, r, err)
			return
		}

		c, err := d.Portal.CreateCategory(r.Context(), in)
		if err != nil {
			handleError(d, w, r, err)
			return
		}
		writeJSON(d, w, http.StatusCreated, c)
	}
}

// UpdateCategory renames a category. Articles keep their embedded copy.
func UpdateCategory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch domain.CategoryPatch
		if err := decodeJSON(r, &patch); err != nil {
			handleError(d, w, r, err)
			return
		}

		c, err := d.Portal.UpdateCategory(r.Context(), chi.URLParam(r, "id"), patch)
		if err != nil {
			handleError(d, w, r, err)
			return
		}
		writeJSON(d, w, http.StatusOK, c)
	}
}

func DeleteCategory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Portal.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
			handleError(d, w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
