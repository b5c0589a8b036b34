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

// ReportLister is the slice of the report store the handlers need.
type ReportLister interface {
	List(ctx context.Context) ([]models.Report, error)
	Delete(ctx context.Context, id string) error
}

// Reports groups the user-report HTTP handlers.
type Reports struct {
	store ReportLister
}

// NewReports creates a new Reports handler group.
func NewReports(store ReportLister) *Reports {
	return &Reports{store: store}
}

// List returns all reports, newest first.
func (h *Reports) List(w http.ResponseWriter, r *http.Request) {
	reports, err := h.store.List(r.Context())
	if err != nil {
		writeError(w, apperr.StoreRead("list reports", err))
		return
	}
	if reports == nil {
		reports = []models.Report{}
	}
	writeJSON(w, http.StatusOK, reports)
}

// Dismiss deletes a handled report.
func (h *Reports) Dismiss(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, apperr.StoreWrite("dismiss report", err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
