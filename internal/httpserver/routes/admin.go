package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/klub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/klub/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/klub/internal/httpserver/mw"
)

func init() { Register(registerAdmin) }

func registerAdmin(r chi.Router, d deps.Deps) {
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(mw.RequireToken(d.Portal.AdminToken(), d.TrustProxy, d.Logger))

		r.Get("/dashboard", handlers.Dashboard(d))

		r.Get("/articles", handlers.AdminArticles(d))
		r.Post("/articles", handlers.CreateArticle(d))
		r.Get("/articles/{id}", handlers.AdminArticleByID(d))
		r.Put("/articles/{id}", handlers.UpdateArticle(d))
		r.Delete("/articles/{id}", handlers.DeleteArticle(d))

		r.Get("/pages", handlers.AdminPages(d))
		r.Post("/pages", handlers.CreatePage(d))
		r.Get("/pages/{id}", handlers.AdminPageByID(d))
		r.Put("/pages/{id}", handlers.UpdatePage(d))
		r.Delete("/pages/{id}", handlers.DeletePage(d))

		// members are created through public registration
		r.Get("/members", handlers.AdminMembers(d))
		r.Get("/members/{id}", handlers.AdminMemberByID(d))
		r.Put("/members/{id}", handlers.UpdateMember(d))
		r.Delete("/members/{id}", handlers.DeleteMember(d))

		r.Get("/merchants", handlers.AdminMerchants(d))
		r.Post("/merchants", handlers.CreateMerchant(d))
		r.Get("/merchants/{id}", handlers.AdminMerchantByID(d))
		r.Put("/merchants/{id}", handlers.UpdateMerchant(d))
		r.Delete("/merchants/{id}", handlers.DeleteMerchant(d))

		r.Post("/categories", handlers.CreateCategory(d))
		r.Get("/categories/{id}", handlers.CategoryByID(d))
		r.Put("/categories/{id}", handlers.UpdateCategory(d))
		r.Delete("/categories/{id}", handlers.DeleteCategory(d))

		r.Put("/banner", handlers.UpdateBanner(d))

		r.With(mw.RateLimit(mw.RateLimitConfig{
			Burst:             d.LoginBurst,
			RefillPerIPPerMin: d.LoginPerMin,
			MaxEntries:        10000,
			TrustProxy:        d.TrustProxy,
		})).Post("/upload", handlers.Upload(d))

		r.Post("/reload", handlers.Reload(d))
	})
}
