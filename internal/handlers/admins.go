// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"eventdeck/internal/apperr"
	"eventdeck/internal/middleware"
	"eventdeck/internal/models"
	"eventdeck/internal/store"
)

// AdminManager is the slice of the admin store the sub-admin handlers need.
type AdminManager interface {
	List(ctx context.Context) ([]models.Admin, error)
	GetByEmail(ctx context.Context, email string) (models.Admin, error)
	Create(ctx context.Context, a models.Admin) (models.Admin, error)
	Delete(ctx context.Context, id string) error
}

// Admins groups the staff-account HTTP handlers. These routes are
// restricted to the full admin role by the router.
type Admins struct {
	store AdminManager
}

// NewAdmins creates a new Admins handler group.
func NewAdmins(store AdminManager) *Admins {
	return &Admins{store: store}
}

// List returns all staff accounts. Password hashes and TOTP secrets never
// serialize; the model hides them from JSON.
func (h *Admins) List(w http.ResponseWriter, r *http.Request) {
	admins, err := h.store.List(r.Context())
	if err != nil {
		writeError(w, apperr.StoreRead("list admins", err))
		return
	}
	if admins == nil {
		admins = []models.Admin{}
	}
	writeJSON(w, http.StatusOK, admins)
}

type adminCreateRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=admin subAdmin"`
}

// Create adds a staff account with a bcrypt-hashed password. The new
// account enrolls in 2FA on its first login.
func (h *Admins) Create(w http.ResponseWriter, r *http.Request) {
	var req adminCreateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := checkStruct(req); err != nil {
		writeError(w, err)
		return
	}

	_, err := h.store.GetByEmail(r.Context(), req.Email)
	if err == nil {
		writeError(w, apperr.Validation("an account with email %q already exists", req.Email))
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		writeError(w, apperr.StoreRead("check admin email", err))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, err)
		return
	}

	created, err := h.store.Create(r.Context(), models.Admin{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         models.Role(req.Role),
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		writeError(w, apperr.StoreWrite("create admin", err))
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Delete removes a staff account. Deleting your own account is rejected;
// there must always be someone left holding the keys.
func (h *Admins) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if sess := middleware.SessionFromCtx(r.Context()); sess != nil && sess.AdminID == id {
		writeError(w, apperr.Validation("cannot delete your own account"))
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		writeError(w, apperr.StoreWrite("delete admin", err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
