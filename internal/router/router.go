// Package router sets up all HTTP routes and middleware chains for the
// dashboard API. Routes live under /api and are split into auth endpoints,
// the authenticated staff area, and admin-only account management.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"eventdeck/internal/handlers"
	"eventdeck/internal/middleware"
	"eventdeck/internal/session"
)

// loginRateLimit bounds credential-guessing: attempts per IP per window.
const (
	loginRateLimit  = 10
	loginRateWindow = time.Minute
)

// Handlers bundles the per-resource handler groups the router mounts.
type Handlers struct {
	Auth       *handlers.Auth
	Categories *handlers.Categories
	Events     *handlers.Events
	Users      *handlers.Users
	Reports    *handlers.Reports
	Contacts   *handlers.Contacts
	Settings   *handlers.Settings
	Admins     *handlers.Admins
	Dashboard  *handlers.Dashboard
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. dashboardOrigin is the browser origin the
// CORS policy admits; secure marks the CSRF cookie as Secure.
func New(sessionStore *session.Store, h Handlers, dashboardOrigin string, secure bool) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{dashboardOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", middleware.CSRFHeaderName},
		AllowCredentials: true,
	}).Handler)
	r.Use(middleware.NewCSRF(secure))
	r.Use(middleware.LoadSession(sessionStore))

	// Health check, no auth.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		// Auth endpoints, reachable without a session. Login is
		// rate-limited per IP.
		r.Route("/auth", func(r chi.Router) {
			loginLimiter := middleware.NewRateLimiter(loginRateLimit, loginRateWindow)
			r.With(loginLimiter.Middleware).Post("/login", h.Auth.Login)
			r.Post("/logout", h.Auth.Logout)

			// 2FA requires a session but NOT a completed second factor.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Post("/2fa/setup", h.Auth.TwoFASetup)
				r.Post("/2fa/verify", h.Auth.TwoFAVerify)
			})
		})

		// Authenticated + 2FA-verified staff area.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.Require2FA)

			r.Get("/me", h.Auth.Me)
			r.Get("/dashboard", h.Dashboard.Stats)

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", h.Categories.List)
				r.Post("/", h.Categories.Create)
				r.Put("/{id}", h.Categories.Rename)
				r.Delete("/{id}", h.Categories.Delete)
				r.Post("/{id}/move", h.Categories.Move)
				r.Post("/{id}/image", h.Categories.UploadImage)
				r.Get("/{id}/subcategories", h.Categories.ListSubCategories)
			})

			r.Route("/subcategories", func(r chi.Router) {
				r.Post("/", h.Categories.CreateSubCategory)
				r.Put("/{id}", h.Categories.UpdateSubCategory)
				r.Delete("/{id}", h.Categories.DeleteSubCategory)
			})

			r.Route("/events", func(r chi.Router) {
				r.Get("/", h.Events.List)
				r.Post("/", h.Events.Create)
				r.Get("/{id}", h.Events.Get)
				r.Put("/{id}", h.Events.Update)
				r.Delete("/{id}", h.Events.Delete)
			})

			r.Route("/users", func(r chi.Router) {
				r.Get("/", h.Users.List)
				r.Patch("/{id}/status", h.Users.SetStatus)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/", h.Reports.List)
				r.Delete("/{id}", h.Reports.Dismiss)
			})

			r.Route("/contacts", func(r chi.Router) {
				r.Get("/", h.Contacts.List)
				r.Post("/{id}/approve", h.Contacts.Approve)
				r.Delete("/{id}", h.Contacts.Delete)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/{name}", h.Settings.Get)
				r.Post("/{name}", h.Settings.Upload)
				r.Delete("/{name}", h.Settings.Remove)
			})

			// Staff account management, full admins only.
			r.Route("/admins", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/", h.Admins.List)
				r.Post("/", h.Admins.Create)
				r.Delete("/{id}", h.Admins.Delete)
			})
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
