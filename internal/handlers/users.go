// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"eventdeck/internal/directory"
	"eventdeck/internal/models"
)

// Users groups the end-user directory HTTP handlers.
type Users struct {
	index   *directory.Index
	refresh *directory.Debouncer
}

// NewUsers creates a new Users handler group. Status mutations schedule a
// debounced background refresh, so a burst of block/unblock clicks costs
// one store round-trip instead of one per click.
func NewUsers(index *directory.Index) *Users {
	h := &Users{index: index}
	h.refresh = directory.NewDebouncer(directory.DefaultDebounce, func() {
		if err := index.Refresh(context.Background()); err != nil {
			slog.Warn("background user refresh failed", "error", err)
		}
	})
	return h
}

// List returns users matching the optional ?q= substring filter. The index
// is refreshed first so a status change made elsewhere shows up.
func (h *Users) List(w http.ResponseWriter, r *http.Request) {
	if err := h.index.Refresh(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.index.Search(r.URL.Query().Get("q")))
}

type userStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active block"`
}

// SetStatus blocks or unblocks a user account.
func (h *Users) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req userStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := checkStruct(req); err != nil {
		writeError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.index.SetStatus(r.Context(), id, models.UserStatus(req.Status)); err != nil {
		writeError(w, err)
		return
	}
	h.refresh.Trigger()

	u, _ := h.index.Get(id)
	writeJSON(w, http.StatusOK, u)
}
