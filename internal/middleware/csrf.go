// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
)

const (
	// csrfTokenLength is the byte length of CSRF tokens (32 bytes = 64 hex chars).
	csrfTokenLength = 32

	// CSRFCookieName is the cookie that holds the CSRF token.
	CSRFCookieName = "ed_csrf"

	// CSRFHeaderName is the header the dashboard sends the CSRF token in.
	// The SPA reads the cookie and echoes it on every mutating request.
	CSRFHeaderName = "X-CSRF-Token"
)

// NewCSRF returns double-submit cookie CSRF protection. A token is issued
// in a cookie the dashboard can read, and every state-changing request
// (POST, PUT, PATCH, DELETE) must echo it back in the X-CSRF-Token header.
// The session cookie alone is never enough to mutate state.
func NewCSRF(secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Ensure a CSRF token cookie exists.
			cookie, err := r.Cookie(CSRFCookieName)
			if err != nil || cookie.Value == "" {
				token, err := generateCSRFToken()
				if err != nil {
					writeJSONError(w, http.StatusInternalServerError, "internal server error")
					return
				}
				http.SetCookie(w, &http.Cookie{
					Name:     CSRFCookieName,
					Value:    token,
					Path:     "/",
					HttpOnly: false, // the dashboard reads this to set the header
					Secure:   secure,
					SameSite: http.SameSiteStrictMode,
				})
				cookie = &http.Cookie{Value: token}
			}

			// Safe methods don't need CSRF validation.
			if r.Method == http.MethodGet || r.Method == http.MethodHead || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			submitted := r.Header.Get(CSRFHeaderName)
			if subtle.ConstantTimeCompare([]byte(cookie.Value), []byte(submitted)) != 1 {
				writeJSONError(w, http.StatusForbidden, "csrf token mismatch")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// generateCSRFToken creates a cryptographically random token.
func generateCSRFToken() (string, error) {
	b := make([]byte, csrfTokenLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
