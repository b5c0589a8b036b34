package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventdeck/internal/session"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func requestWithSession(data *session.Data) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	if data != nil {
		req = req.WithContext(context.WithValue(req.Context(), SessionKey, data))
	}
	return req
}

func TestRequireAuth(t *testing.T) {
	tests := []struct {
		name string
		sess *session.Data
		want int
	}{
		{"no session", nil, http.StatusUnauthorized},
		{"with session", &session.Data{AdminID: "a1", TwoFADone: true}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			RequireAuth(okHandler()).ServeHTTP(rr, requestWithSession(tt.sess))
			if rr.Code != tt.want {
				t.Errorf("status = %d, want %d", rr.Code, tt.want)
			}
		})
	}
}

func TestRequire2FA(t *testing.T) {
	tests := []struct {
		name string
		sess *session.Data
		want int
	}{
		{"2fa pending", &session.Data{AdminID: "a1", TwoFADone: false}, http.StatusForbidden},
		{"2fa done", &session.Data{AdminID: "a1", TwoFADone: true}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			Require2FA(okHandler()).ServeHTTP(rr, requestWithSession(tt.sess))
			if rr.Code != tt.want {
				t.Errorf("status = %d, want %d", rr.Code, tt.want)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name string
		sess *session.Data
		want int
	}{
		{"no session", nil, http.StatusForbidden},
		{"sub-admin", &session.Data{AdminID: "a1", Role: "subAdmin"}, http.StatusForbidden},
		{"admin", &session.Data{AdminID: "a1", Role: "admin"}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			RequireAdmin(okHandler()).ServeHTTP(rr, requestWithSession(tt.sess))
			if rr.Code != tt.want {
				t.Errorf("status = %d, want %d", rr.Code, tt.want)
			}
		})
	}
}
