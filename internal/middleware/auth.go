// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"eventdeck/internal/models"
	"eventdeck/internal/session"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

const (
	// SessionKey is the context key for the session data.
	SessionKey contextKey = "session"
)

// writeJSONError emits the API's standard error envelope. The dashboard is
// a separate frontend, so auth failures are JSON, never redirects.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// LoadSession retrieves the session from Redis and stores it in the
// request context. Downstream handlers can access it via SessionFromCtx().
// This middleware does NOT enforce authentication, it just loads the
// session if one exists.
func LoadSession(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			data, err := store.Get(r.Context(), r)
			if err != nil {
				// Treat a session backend hiccup as unauthenticated.
				next.ServeHTTP(w, r)
				return
			}

			if data != nil {
				ctx := context.WithValue(r.Context(), SessionKey, data)
				r = r.WithContext(ctx)
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth rejects unauthenticated requests with 401.
// Must be applied after LoadSession in the middleware chain.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := SessionFromCtx(r.Context())
		if sess == nil {
			writeJSONError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Require2FA rejects sessions that haven't completed the second factor.
// Must be applied after RequireAuth.
func Require2FA(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := SessionFromCtx(r.Context())
		if sess != nil && !sess.TwoFADone {
			writeJSONError(w, http.StatusForbidden, "two-factor verification required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAdmin returns 403 if the authenticated staff member is not a full
// admin. Must be applied after RequireAuth and Require2FA.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := SessionFromCtx(r.Context())
		if sess == nil || sess.Role != string(models.RoleAdmin) {
			writeJSONError(w, http.StatusForbidden, "admin role required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// SessionFromCtx extracts the session data from the request context.
// Returns nil if no session is loaded (request is not authenticated).
func SessionFromCtx(ctx context.Context) *session.Data {
	data, _ := ctx.Value(SessionKey).(*session.Data)
	return data
}
