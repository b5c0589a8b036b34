package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"eventdeck/internal/models"
	"eventdeck/internal/session"
	"eventdeck/internal/store"
)

type fakeAdminDirectory struct {
	admins map[string]models.Admin
}

func (f *fakeAdminDirectory) GetByEmail(ctx context.Context, email string) (models.Admin, error) {
	for _, a := range f.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return models.Admin{}, store.ErrNotFound
}

func (f *fakeAdminDirectory) GetByID(ctx context.Context, id string) (models.Admin, error) {
	a, ok := f.admins[id]
	if !ok {
		return models.Admin{}, store.ErrNotFound
	}
	return a, nil
}

func (f *fakeAdminDirectory) SetTOTP(ctx context.Context, id, secret string, enabled bool) error {
	a := f.admins[id]
	a.TOTPSecret = secret
	a.TOTPEnabled = enabled
	f.admins[id] = a
	return nil
}

// newAuthHandler builds an Auth handler whose session store points at a
// dead address; tests here only exercise paths that fail before a session
// is created.
func newAuthHandler(t *testing.T) *Auth {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	admins := &fakeAdminDirectory{admins: map[string]models.Admin{
		"a1": {
			ID:           "a1",
			Name:         "Administrator",
			Email:        "admin@example.com",
			PasswordHash: string(hash),
			Role:         models.RoleAdmin,
		},
	}}
	sessions := session.NewStore(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}), false)
	return NewAuth(sessions, admins)
}

func TestLoginUnknownEmail(t *testing.T) {
	h := newAuthHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", jsonBody(t, map[string]string{
		"email":    "nobody@example.com",
		"password": "whatever",
	}))
	rr := httptest.NewRecorder()
	h.Login(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rr.Code)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	h := newAuthHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", jsonBody(t, map[string]string{
		"email":    "admin@example.com",
		"password": "wrong",
	}))
	rr := httptest.NewRecorder()
	h.Login(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rr.Code)
	}
}

func TestLoginMalformedBody(t *testing.T) {
	h := newAuthHandler(t)

	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing password", map[string]string{"email": "admin@example.com"}},
		{"not an email", map[string]string{"email": "admin", "password": "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", jsonBody(t, tt.body))
			rr := httptest.NewRecorder()
			h.Login(rr, req)
			if rr.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rr.Code)
			}
		})
	}
}
