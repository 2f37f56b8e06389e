package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/klub/internal/domain"
	"github.com/MrSnakeDoc/klub/internal/httpserver/deps"
)

func PageBySlug(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := d.Portal.PageBySlug(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			handleError(d, w, r, err)
			return
		}
		found(d, w, p)
	}
}

func AdminPages(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := d.Portal.AdminPages(r.Context())
		if err != nil {
			handleError(d, w, r, err)
			return
		}
		writeJSON(d, w, http.StatusOK, list)
	}
}

func AdminPageByID(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := d.Portal.AdminPageByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			handleError(d, w, r, err)
			return
		}
		found(d, w, p)
	}
}

func CreatePage(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in domain.PageInput
		if err := decodeJSON(r, &in); err != nil {
			handleError(d, w, r, err)
			return
		}
		if err := in.Validate(); err != nil {
			handleError(d, w, r, err)
			return
		}

		p, err := d.Portal.CreatePage(r.Context(), in)
		if err != nil {
			handleError(d, w, r, err)
			return
		}
		writeJSON(d, w, http.StatusCreated, p)
	}
}

func UpdatePage(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch domain.PagePatch
		if err := decodeJSON(r, &patch); err != nil {
			handleError(d, w, r, err)
			return
		}

		p, err := d.Portal.UpdatePage(r.Context(), chi.URLParam(r, "id"), patch)
		if err != nil {
			handleError(d, w, r, err)
			return
		}
		writeJSON(d, w, http.StatusOK, p)
	}
}

func DeletePage(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Portal.DeletePage(r.Context(), chi.URLParam(r, "id")); err != nil {
			handleError(d, w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
