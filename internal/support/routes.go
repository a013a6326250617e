package support

import (
	"github.com/OpenShelf/library-backend/internal/auth"
	"github.com/OpenShelf/library-backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router) {
	sessionFetcher := auth.SessionInfo{}

	// User routes - submit and view own tickets
	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(sessionFetcher))
		r.Use(middleware.RequireRole("user"))

		r.Get("/support", MyTicketsHandler)
		r.Post("/submit-ticket", SubmitTicketHandler)
	})

	// Admin routes - view all tickets and resolve
	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(sessionFetcher))
		r.Use(middleware.RequireRole("admin"))

		r.Get("/admin/support", AllTicketsHandler)
		r.Post("/admin/support/resolve/{id}", ResolveTicketHandler)
	})
}
