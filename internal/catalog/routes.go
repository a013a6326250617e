package catalog

import (
	"github.com/OpenShelf/library-backend/internal/auth"
	"github.com/OpenShelf/library-backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router) {
	sessionFetcher := auth.SessionInfo{}

	// Admin routes - full catalog management
	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(sessionFetcher))
		r.Use(middleware.RequireRole("admin"))

		r.Get("/admin/books", ListBooksHandler)
		r.Post("/admin/add-book", CreateBookHandler)
		r.Put("/admin/edit-book/{id}", UpdateBookHandler)
		r.Delete("/admin/delete-book/{id}", DeleteBookHandler)
		r.Get("/admin/categories", CategoriesHandler)
	})

	// User routes - read-only catalog access
	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(sessionFetcher))
		r.Use(middleware.RequireRole("user"))

		r.Get("/user/books", ListBooksHandler)
	})
}
