package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/klub/internal/domain"
	"github.com/MrSnakeDoc/klub/internal/httpserver/deps"
)

func Merchants(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := d.Portal.Merchants(r.Context())
		if err != nil {
			handleError(d, w, r, err)
			return
		}
		writeJSON(d, w, http.StatusOK, list)
	}
}

func AdminMerchants(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := d.Portal.AdminMerchants(r.Context())
		if err != nil {
			handleError(d, w, r, err)
			return
		}
		writeJSON(d, w, http.StatusOK, list)
	}
}

func AdminMerchantByID(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := d.Portal.AdminMerchantByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			handleError(d, w, r, err)
			return
		}
		found(d, w, m)
	}
}

func CreateMerchant(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in domain.MerchantInput
		if err := decodeJSON(r, &in); err != nil {
			handleError(d, w, r, err)
			return
		}
		if err := in.Validate(); err != nil {
			handleError(d, w, r, err)
			return
		}

		m, err := d.Portal.CreateMerchant(r.Context(), in)
		if err != nil {
			handleError(d, w, r, err)
			return
		}
		writeJSON(d, w, http.StatusCreated, m)
	}
}

func UpdateMerchant(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch domain.MerchantPatch
		if err := decodeJSON(r, &patch); err != nil {
			handleError(d, w, r, err)
			return
		}

		m, err := d.Portal.UpdateMerchant(r.Context(), chi.URLParam(r, "id"), patch)
		if err != nil {
			handleError(d, w, r, err)
			return
		}
		writeJSON(d, w, http.StatusOK, m)
	}
}

func DeleteMerchant(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Portal.DeleteMerchant(r.Context(), chi.URLParam(r, "id")); err != nil {
			handleError(d, w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
