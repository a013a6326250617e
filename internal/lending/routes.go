package lending

import (
	"github.com/OpenShelf/library-backend/internal/auth"
	"github.com/OpenShelf/library-backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router) {
	sessionFetcher := auth.SessionInfo{}

	// The lending ledger is admin-only; borrowers never mutate it.
	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(sessionFetcher))
		r.Use(middleware.RequireRole("admin"))

		r.Get("/admin/borrowed-books", ListBorrowedBooksHandler)
		r.Post("/admin/add-borrowed-book", CreateBorrowedBookHandler)
		r.Put("/admin/edit-borrowed-book/{id}", UpdateBorrowedBookHandler)
		r.Delete("/admin/delete-borrowed-book/{id}", DeleteBorrowedBookHandler)
	})
}
