// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"eventdeck/internal/apperr"
	"eventdeck/internal/models"
)

// ContactQueue is the slice of the contact store the handlers need.
type ContactQueue interface {
	List(ctx context.Context) ([]models.ContactMessage, error)
	SetStatus(ctx context.Context, id string, status models.ContactStatus) error
	Delete(ctx context.Context, id string) error
}

// Contacts groups the contact-query HTTP handlers.
type Contacts struct {
	store ContactQueue
}

// NewContacts creates a new Contacts handler group.
func NewContacts(store ContactQueue) *Contacts {
	return &Contacts{store: store}
}

// List returns all contact messages, newest first.
func (h *Contacts) List(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.store.List(r.Context())
	if err != nil {
		writeError(w, apperr.StoreRead("list contact messages", err))
		return
	}
	if msgs == nil {
		msgs = []models.ContactMessage{}
	}
	writeJSON(w, http.StatusOK, msgs)
}

// Approve marks a contact message as reviewed.
func (h *Contacts) Approve(w http.ResponseWriter, r *http.Request) {
	if err := h.store.SetStatus(r.Context(), chi.URLParam(r, "id"), models.ContactApproved); err != nil {
		writeError(w, apperr.StoreWrite("approve contact message", err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete removes a contact message.
func (h *Contacts) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, apperr.StoreWrite("delete contact message", err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
