package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/klub/internal/domain"
	"github.com/MrSnakeDoc/klub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/klub/internal/logger"
)

func PublicMembers(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := d.Portal.PublicMembers(r.Context())
		if err != nil {
			handleError(d, w, r, err)
			return
		}
		writeJSON(d, w, http.StatusOK, list)
	}
}

// RegisterMember handles the public registration form.
func RegisterMember(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in domain.MemberInput
		if err := decodeJSON(r, &in); err != nil {
			handleError(d, w, r, err)
			return
		}
		if err := in.Validate(); err != nil {
			handleError(d, w, r, err)
			return
		}

		m, err := d.Portal.RegisterMember(r.Context(), in)
		if err != nil {
			handleError(d, w, r, err)
			return
		}
		d.Logger.Info("member registered",
			logger.String("id", m.ID))
		writeJSON(d, w, http.StatusCreated, m)
	}
}

func AdminMembers(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := d.Portal.AdminMembers(r.Context())
		if err != nil {
			handleError(d, w, r, err)
			return
		}
		writeJSON(d, w, http.StatusOK, list)
	}
}

func AdminMemberByID(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := d.Portal.AdminMemberByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			handleError(d, w, r, err)
			return
		}
		found(d, w, m)
	}
}

func UpdateMember(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch domain.MemberPatch
		if err := decodeJSON(r, &patch); err != nil {
			handleError(d, w, r, err)
			return
		}
		if err := patch.Validate(); err != nil {
			handleError(d, w, r, err)
			return
		}

		m, err := d.Portal.UpdateMember(r.Context(), chi.URLParam(r, "id"), patch)
		if err != nil {
			handleError(d, w, r, err)
			return
		}
		writeJSON(d, w, http.StatusOK, m)
	}
}

func DeleteMember(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Portal.DeleteMember(r.Context(), chi.URLParam(r, "id")); err != nil {
			handleError(d, w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
