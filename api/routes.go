package api

import (
	"net/http"

	"github.com/blockwavenation/gtn-backend/storage"
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public read surface, the credential-gated admin
// surface, and the static media directory.
func setupRoutes(r chi.Router, handlers *routeHandlers, auth authMiddleware, uploadDir string) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Public endpoints
		r.Get("/api/health", handlers.healthHandler.check())
		r.Get("/api/projects", handlers.projectHandler.list())
		r.Get("/api/events", handlers.eventHandler.list())
		r.Get("/api/news", handlers.newsHandler.list())
		r.Get("/api/blogs", handlers.blogHandler.list())
		r.Post("/api/join", handlers.joinHandler.create())
		r.Post("/api/login", handlers.authHandler.login())
		r.Get("/api/session", handlers.authHandler.status())

		// Admin endpoints
		r.Group(func(r chi.Router) {
			r.Use(auth.requireAdmin)

			r.Post("/api/projects", handlers.projectHandler.create())
			r.Put("/api/projects", handlers.projectHandler.update())
			r.Delete("/api/projects", handlers.projectHandler.delete())

			r.Post("/api/events", handlers.eventHandler.create())
			r.Put("/api/events", handlers.eventHandler.update())
			r.Delete("/api/events", handlers.eventHandler.delete())

			r.Post("/api/news", handlers.newsHandler.create())
			r.Put("/api/news", handlers.newsHandler.update())
			r.Delete("/api/news", handlers.newsHandler.delete())

			r.Post("/api/blogs", handlers.blogHandler.create())
			r.Put("/api/blogs", handlers.blogHandler.update())
			r.Delete("/api/blogs", handlers.blogHandler.delete())

			r.Get("/api/join", handlers.joinHandler.list())
			r.Post("/api/upload", handlers.uploadHandler.store())
			r.Get("/api/backup", handlers.backupHandler.download())
			r.Post("/api/backup/restore", handlers.backupHandler.restore())
			r.Post("/api/logout", handlers.authHandler.logout())
		})
	})

	// Uploaded media is served read-only at its public prefix.
	fileServer := http.StripPrefix(storage.PublicPrefix, http.FileServer(http.Dir(uploadDir)))
	r.Get(storage.PublicPrefix+"*", fileServer.ServeHTTP)
}
