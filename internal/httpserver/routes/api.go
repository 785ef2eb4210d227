package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/voyage/internal/httpserver/deps"
	"github.com/MrSnakeDoc/voyage/internal/httpserver/handlers"
)

func init() { Register(registerAPI) }

func registerAPI(r chi.Router, d deps.Deps) {
	r.Route("/api", func(r chi.Router) {
		r.Route("/bookmarks", func(r chi.Router) {
			r.Post("/", handlers.CreateBookmark(d))
			r.Get("/", handlers.ListBookmarks(d))
			r.Delete("/{id}", handlers.DeleteBookmark(d))
		})

		r.Route("/history", func(r chi.Router) {
			r.Post("/", handlers.CreateHistory(d))
			r.Get("/", handlers.ListHistory(d))
			r.Get("/search", handlers.SearchHistory(d))
			r.Delete("/", handlers.ClearHistory(d))
			r.Delete("/{id}", handlers.DeleteHistory(d))
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", handlers.GetSettings(d))
			r.Put("/", handlers.UpdateSettings(d))
		})

		r.Route("/downloads", func(r chi.Router) {
			r.Post("/", handlers.CreateDownload(d))
			r.Get("/", handlers.ListDownloads(d))
			r.Delete("/{id}", handlers.DeleteDownload(d))
		})
	})
}
