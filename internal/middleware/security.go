// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import "net/http"

// SecureHeaders adds defensive HTTP headers to every response. The server
// only ever returns JSON for the dashboard, so framing is refused outright
// and referrers are never sent.
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()

		// Prevent the browser from MIME-sniffing the Content-Type.
		h.Set("X-Content-Type-Options", "nosniff")

		// Nothing here is meant to render inside a frame.
		h.Set("X-Frame-Options", "DENY")

		// API URLs can carry resource ids; keep them out of Referer headers.
		h.Set("Referrer-Policy", "no-referrer")

		// Staff data must not land in shared caches.
		h.Set("Cache-Control", "no-store")

		next.ServeHTTP(w, r)
	})
}
