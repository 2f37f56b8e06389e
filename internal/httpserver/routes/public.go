package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/klub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/klub/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/klub/internal/httpserver/mw"
)

func init() { Register(registerPublic) }

func registerPublic(r chi.Router, d deps.Deps) {
	r.Get("/api/articles", handlers.Articles(d))
	r.Get("/api/articles/{slug}", handlers.ArticleBySlug(d))
	r.Get("/api/categories", handlers.Categories(d))
	r.Get("/api/pages/{slug}", handlers.PageBySlug(d))
	r.Get("/api/banner", handlers.Banner(d))
	r.Get("/api/merchants", handlers.Merchants(d))
	r.Get("/api/members", handlers.PublicMembers(d))
	r.Post("/api/members", handlers.RegisterMember(d))

	r.With(mw.RateLimit(mw.RateLimitConfig{
		Burst:             d.LoginBurst,
		RefillPerIPPerMin: d.LoginPerMin,
		MaxEntries:        10000,
		TrustProxy:        d.TrustProxy,
	})).Post("/api/login", handlers.Login(d))

	r.Get("/rss.xml", handlers.RSS(d))
}
