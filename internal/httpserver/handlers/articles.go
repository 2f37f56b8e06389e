package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/klub/internal/domain"
	"github.com/MrSnakeDoc/klub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/klub/internal/portal"
)

// Articles handles GET /api/articles?page=&limit=&categoryId=&search=
// Unparseable numbers fall back to the defaults.
func Articles(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		page, _ := strconv.Atoi(q.Get("page"))
		limit, _ := strconv.Atoi(q.Get("limit"))

		res, err := d.Portal.Articles(r.Context(), portal.ArticleQuery{
			Page:       page,
			Limit:      limit,
			CategoryID: strings.TrimSpace(q.Get("categoryId")),
			Search:     strings.TrimSpace(q.Get("search")),
		})
		if err != nil {
			handleError(d, w, r, err)
			return
		}
		writeJSON(d, w, http.StatusOK, res)
	}
}

func ArticleBySlug(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := d.Portal.ArticleBySlug(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			handleError(d, w, r, err)
			return
		}
		found(d, w, a)
	}
}

func AdminArticles(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := d.Portal.AdminArticles(r.Context())
		if err != nil {
			handleError(d, w, r, err)
			return
		}
		writeJSON(d, w, http.StatusOK, list)
	}
}

func AdminArticleByID(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := d.Portal.AdminArticleByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			handleError(d, w, r, err)
			return
		}
		found(d, w, a)
	}
}

func CreateArticle(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in domain.ArticleInput
		if err := decodeJSON(r, &in); err != nil {
			handleError(d, w, r, err)
			return
		}
		if err := in.Validate(); err != nil {
			handleError(d, w, r, err)
			return
		}

		a, err := d.Portal.CreateArticle(r.Context(), in)
		if err != nil {
			handleError(d, w, r, err)
			return
		}
		writeJSON(d, w, http.StatusCreated, a)
	}
}

func UpdateArticle(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch domain.ArticlePatch
		if err := decodeJSON(r, &patch); err != nil {
			handleError(d, w, r, err)
			return
		}

		a, err := d.Portal.UpdateArticle(r.Context(), chi.URLParam(r, "id"), patch)
		if err != nil {
			handleError(d, w, r, err)
			return
		}
		writeJSON(d, w, http.StatusOK, a)
	}
}

func DeleteArticle(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Portal.DeleteArticle(r.Context(), chi.URLParam(r, "id")); err != nil {
			handleError(d, w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
