package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/klub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/klub/internal/logger"
	"github.com/MrSnakeDoc/klub/internal/utils"
)

// Reload asks the seed keeper to restore missing collections.
func Reload(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		remoteIP := utils.ClientIP(r, d.TrustProxy)

		select {
		case d.ReloadTrigger <- struct{}{}:
			d.Logger.Info("manual reseed triggered via endpoint",
				logger.String("remote_ip", remoteIP))
			writeJSON(d, w, http.StatusAccepted, map[string]string{"status": "reseed triggered"})
		default:
			d.Logger.Warn("reseed already pending",
				logger.String("remote_ip", remoteIP))
			writeJSON(d, w, http.StatusTooManyRequests, map[string]string{"status": "reseed already pending"})
		}
	}
}
