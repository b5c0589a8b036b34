// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// RateLimiter throttles requests per client IP over a sliding window.
// The router puts one in front of the login endpoint; credential guessing
// is the only traffic expected to ever hit the limit.
type RateLimiter struct {
	mu     sync.Mutex
	seen   map[string][]time.Time
	limit  int
	window time.Duration
	stopCh chan struct{}
}

// NewRateLimiter creates a limiter allowing limit requests per window.
// A background goroutine drops idle clients every few minutes; call Stop
// when the limiter is no longer needed.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		seen:   make(map[string][]time.Time),
		limit:  limit,
		window: window,
		stopCh: make(chan struct{}),
	}

	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				rl.cleanup()
			case <-rl.stopCh:
				return
			}
		}
	}()

	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stopCh)
}

// allow records a request for key and reports whether it is within the
// limit. Timestamps older than the window are pruned on every call.
func (rl *RateLimiter) allow(key string) bool {
	now := time.Now()
	cutoff := now.Add(-rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	live := rl.seen[key][:0]
	for _, ts := range rl.seen[key] {
		if ts.After(cutoff) {
			live = append(live, ts)
		}
	}

	if len(live) >= rl.limit {
		rl.seen[key] = live
		return false
	}
	rl.seen[key] = append(live, now)
	return true
}

// cleanup drops clients whose every request has aged out of the window.
func (rl *RateLimiter) cleanup() {
	cutoff := time.Now().Add(-rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, stamps := range rl.seen {
		idle := true
		for _, ts := range stamps {
			if ts.After(cutoff) {
				idle = false
				break
			}
		}
		if idle {
			delete(rl.seen, key)
		}
	}
}

// Middleware rejects over-limit requests with a JSON 429.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(clientIP(r)) {
			writeJSONError(w, http.StatusTooManyRequests, "too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP resolves the client address, honoring the proxy headers the
// reverse proxy in front of the API sets.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// The leftmost entry is the original client.
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
