package auth

import (
	"github.com/OpenShelf/library-backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes attaches the auth endpoints at the root of the router.
// Credential endpoints share a per-IP rate limit to slow down guessing.
func RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimitMiddleware(5, 10))

		r.Post("/user/signup", UserSignupHandler)
		r.Post("/admin/signup", AdminSignupHandler)
		r.Post("/user/login", UserLoginHandler)
		r.Post("/admin/login", AdminLoginHandler)
		r.Post("/forgot-password", ForgotPasswordHandler)
	})

	r.Get("/reset-password/{token}", ValidateResetTokenHandler)
	r.Post("/reset-password/{token}", ResetPasswordHandler)
	r.Get("/logout", LogoutHandler)
}
