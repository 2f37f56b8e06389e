package handlers

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/klub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/klub/internal/logger"
	"github.com/MrSnakeDoc/klub/internal/upload"
	"github.com/MrSnakeDoc/klub/internal/utils"
)

// Upload stores the multipart field "file" and returns {url}.
func Upload(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		url, err := d.Uploader.FromRequest(r)
		switch {
		case errors.Is(err, upload.ErrNoFile):
			writeError(d, w, http.StatusBadRequest, "No file uploaded")
			return
		case errors.Is(err, upload.ErrTooLarge):
			writeError(d, w, http.StatusBadRequest, "File too large")
			return
		case errors.Is(err, upload.ErrUnsupportedType):
			writeError(d, w, http.StatusBadRequest, "Only image uploads are allowed")
			return
		case err != nil:
			d.Logger.Error("upload failed", logger.Error(err))
			writeError(d, w, http.StatusInternalServerError, err.Error())
			return
		}

		d.Logger.Info("file uploaded", logger.String("url", url))
		writeJSON(d, w, http.StatusOK, map[string]string{"url": url})
	}
}

// ServeUpload streams an object from the local bucket. Objects share the
// site origin, so the browser is told never to sniff or run them, and
// anything that is not an image is sent as a download.
func ServeUpload(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, obj, err := d.Bucket.Open(r.Context(), chi.URLParam(r, "name"))
		if err != nil {
			if errors.Is(err, upload.ErrObjectNotFound) {
				http.NotFound(w, r)
				return
			}
			d.Logger.Error("failed to open upload", logger.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		defer utils.Close(f)

		w.Header().Set("Content-Type", obj.ContentType)
		w.Header().Set("Content-Length", strconv.FormatInt(obj.Size, 10))
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Content-Security-Policy", "default-src 'none'; sandbox")
		if !upload.IsImage(obj.ContentType) {
			w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": obj.Name}))
		}
		if r.Method == http.MethodHead {
			return
		}
		if _, err := io.Copy(w, f); err != nil {
			d.Logger.Debug("failed to stream upload", logger.Error(err))
		}
	}
}
