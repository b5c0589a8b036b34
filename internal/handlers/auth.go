package handlers

import (
	"context"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pquerna/otp/totp"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/crypto/bcrypt"

	"eventdeck/internal/middleware"
	"eventdeck/internal/models"
	"eventdeck/internal/session"
	"eventdeck/internal/store"
)

// totpIssuer is the name shown in authenticator apps.
const totpIssuer = "EventDeck"

// AdminDirectory is the slice of the admin store the auth handlers need.
type AdminDirectory interface {
	GetByEmail(ctx context.Context, email string) (models.Admin, error)
	GetByID(ctx context.Context, id string) (models.Admin, error)
	SetTOTP(ctx context.Context, id, secret string, enabled bool) error
}

// Auth groups all authentication-related HTTP handlers.
type Auth struct {
	sessions *session.Store
	admins   AdminDirectory
}

// NewAuth creates a new Auth handler group.
func NewAuth(sessions *session.Store, admins AdminDirectory) *Auth {
	return &Auth{sessions: sessions, admins: admins}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login checks credentials and opens a session with the second factor
// still pending. The response tells the frontend whether to show the 2FA
// setup flow or the verification prompt.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := checkStruct(req); err != nil {
		writeError(w, err)
		return
	}

	admin, err := a.admins.GetByEmail(r.Context(), req.Email)
	if errors.Is(err, store.ErrNotFound) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid email or password"})
		return
	}
	if err != nil {
		slog.Error("login lookup failed", "error", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "data store unavailable"})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)) != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid email or password"})
		return
	}

	// TwoFADone starts false; the session only unlocks the API after the
	// second factor is verified.
	_, err = a.sessions.Create(r.Context(), w, &session.Data{
		AdminID:   admin.ID,
		Email:     admin.Email,
		Name:      admin.Name,
		Role:      string(admin.Role),
		TwoFADone: false,
	})
	if err != nil {
		slog.Error("session create failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	next := "verify"
	if admin.Needs2FASetup() {
		next = "setup"
	}
	writeJSON(w, http.StatusOK, map[string]string{"twoFactor": next})
}

// TwoFASetup generates a fresh TOTP secret for the logged-in account and
// returns it with a QR code PNG for authenticator enrollment.
func (a *Auth) TwoFASetup(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: sess.Email,
	})
	if err != nil {
		slog.Error("totp generate failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	if err := a.admins.SetTOTP(r.Context(), sess.AdminID, key.Secret(), false); err != nil {
		slog.Error("save totp secret failed", "error", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "data store unavailable"})
		return
	}

	qrPNG, err := qrcode.Encode(key.URL(), qrcode.Medium, 256)
	if err != nil {
		slog.Error("qr code generation failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"secret": key.Secret(),
		"qrPng":  base64.StdEncoding.EncodeToString(qrPNG),
	})
}

type twoFAVerifyRequest struct {
	Code string `json:"code" validate:"required,len=6"`
}

// TwoFAVerify validates the TOTP code and unlocks the session. First-time
// verification also flips the account's enrollment flag.
func (a *Auth) TwoFAVerify(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var req twoFAVerifyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := checkStruct(req); err != nil {
		writeError(w, err)
		return
	}

	admin, err := a.admins.GetByID(r.Context(), sess.AdminID)
	if err != nil {
		slog.Error("admin lookup for 2fa failed", "error", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "data store unavailable"})
		return
	}

	if admin.TOTPSecret == "" {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "two-factor setup not started"})
		return
	}

	if !totp.Validate(req.Code, admin.TOTPSecret) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid verification code"})
		return
	}

	if !admin.TOTPEnabled {
		if err := a.admins.SetTOTP(r.Context(), admin.ID, admin.TOTPSecret, true); err != nil {
			slog.Error("enable totp failed", "error", err)
			writeJSON(w, http.StatusBadGateway, map[string]string{"error": "data store unavailable"})
			return
		}
	}

	sess.TwoFADone = true
	if err := a.sessions.Update(r.Context(), r, sess); err != nil {
		slog.Error("session update failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"name":  sess.Name,
		"email": sess.Email,
		"role":  sess.Role,
	})
}

// Me returns the authenticated staff member's identity.
func (a *Auth) Me(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"name":  sess.Name,
		"email": sess.Email,
		"role":  sess.Role,
	})
}

// Logout destroys the session.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	_ = a.sessions.Destroy(r.Context(), w, r)
	w.WriteHeader(http.StatusNoContent)
}
