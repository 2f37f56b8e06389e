package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/klub/internal/domain"
	"github.com/MrSnakeDoc/klub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/klub/internal/logger"
	"github.com/MrSnakeDoc/klub/internal/utils"
)

const msgWrongCredentials = "wrong credentials"

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Banner(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := d.Portal.Banner(r.Context())
		if err != nil {
			handleError(d, w, r, err)
			return
		}
		writeJSON(d, w, http.StatusOK, b)
	}
}

// UpdateBanner replaces the banner with the request body.
func UpdateBanner(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var b domain.Banner
		if err := decodeJSON(r, &b); err != nil {
			handleError(d, w, r, err)
			return
		}

		updated, err := d.Portal.UpdateBanner(r.Context(), b)
		if err != nil {
			handleError(d, w, r, err)
			return
		}
		writeJSON(d, w, http.StatusOK, updated)
	}
}

func Login(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := decodeJSON(r, &req); err != nil {
			handleError(d, w, r, err)
			return
		}

		session, err := d.Portal.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			handleError(d, w, r, err)
			return
		}
		if session == nil {
			d.Logger.Warn("login rejected",
				logger.String("remote_ip", utils.ClientIP(r, d.TrustProxy)))
			writeError(d, w, http.StatusUnauthorized, msgWrongCredentials)
			return
		}
		writeJSON(d, w, http.StatusOK, session)
	}
}

func Dashboard(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := d.Portal.DashboardStats(r.Context())
		if err != nil {
			handleError(d, w, r, err)
			return
		}
		writeJSON(d, w, http.StatusOK, stats)
	}
}
