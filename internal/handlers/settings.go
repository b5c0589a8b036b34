// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"

	"eventdeck/internal/apperr"
	"eventdeck/internal/models"
)

// maxPDFUpload bounds static-content PDF uploads.
const maxPDFUpload = 20 << 20

// SettingReader is the slice of the setting store the handlers need.
type SettingReader interface {
	Get(ctx context.Context, name string) (models.AppSetting, error)
	Upsert(ctx context.Context, name, pdfURL string) error
}

// SettingBlobStore is the slice of blob storage the settings handlers need.
type SettingBlobStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
	DeleteURL(ctx context.Context, rawURL string) error
}

// Settings groups the static-content (terms, privacy, about) HTTP handlers.
// Each section is a single PDF stored in blob storage and referenced by an
// appSettings document.
type Settings struct {
	store SettingReader
	blobs SettingBlobStore
}

// NewSettings creates a new Settings handler group. blobs may be nil when
// no blob storage is configured; uploads then fail with 502.
func NewSettings(store SettingReader, blobs SettingBlobStore) *Settings {
	return &Settings{store: store, blobs: blobs}
}

// Get returns one section's current PDF URL.
func (h *Settings) Get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !models.KnownSettingKey(name) {
		writeError(w, apperr.Validation("unknown setting %q", name))
		return
	}

	setting, err := h.store.Get(r.Context(), name)
	if err != nil {
		writeError(w, apperr.StoreRead("get setting", err))
		return
	}
	writeJSON(w, http.StatusOK, setting)
}

// Upload replaces a section's PDF. The file is verified to actually be a
// PDF by sniffing its bytes, uploaded under the section's key, and the
// setting document is upserted with the new URL. The previous file is
// deleted best-effort afterwards.
func (h *Settings) Upload(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !models.KnownSettingKey(name) {
		writeError(w, apperr.Validation("unknown setting %q", name))
		return
	}

	if err := r.ParseMultipartForm(maxPDFUpload); err != nil {
		writeError(w, apperr.Validation("invalid multipart form: %v", err))
		return
	}
	file, header, err := r.FormFile("pdf")
	if err != nil {
		writeError(w, apperr.Validation("pdf file is required"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, apperr.Validation("could not read uploaded file: %v", err))
		return
	}
	if http.DetectContentType(data) != "application/pdf" {
		writeError(w, apperr.Validation("file must be a PDF"))
		return
	}

	if h.blobs == nil {
		writeError(w, apperr.Upload("blob storage not configured", nil))
		return
	}

	prev, err := h.store.Get(r.Context(), name)
	if err != nil {
		writeError(w, apperr.StoreRead("get setting", err))
		return
	}

	key := name + "/" + sanitizePDFName(header.Filename)
	url, err := h.blobs.Upload(r.Context(), key, "application/pdf", bytes.NewReader(data), int64(len(data)))
	if err != nil {
		writeError(w, apperr.Upload("upload setting pdf", err))
		return
	}

	if err := h.store.Upsert(r.Context(), name, url); err != nil {
		writeError(w, apperr.StoreWrite("persist setting", err))
		return
	}

	if prev.PDFURL != "" && prev.PDFURL != url {
		if err := h.blobs.DeleteURL(r.Context(), prev.PDFURL); err != nil {
			slog.Warn("could not delete replaced setting pdf", "url", prev.PDFURL, "error", err)
		}
	}

	writeJSON(w, http.StatusOK, models.AppSetting{ID: name, PDFURL: url})
}

// Remove clears a section's PDF: the document is updated first, then the
// blob is deleted best-effort.
func (h *Settings) Remove(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !models.KnownSettingKey(name) {
		writeError(w, apperr.Validation("unknown setting %q", name))
		return
	}

	prev, err := h.store.Get(r.Context(), name)
	if err != nil {
		writeError(w, apperr.StoreRead("get setting", err))
		return
	}

	if err := h.store.Upsert(r.Context(), name, ""); err != nil {
		writeError(w, apperr.StoreWrite("clear setting", err))
		return
	}

	if prev.PDFURL != "" && h.blobs != nil {
		if err := h.blobs.DeleteURL(r.Context(), prev.PDFURL); err != nil {
			slog.Warn("could not delete setting pdf", "url", prev.PDFURL, "error", err)
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

// sanitizePDFName strips any path components and guarantees a .pdf suffix.
func sanitizePDFName(filename string) string {
	base := path.Base(filename)
	if base == "." || base == "/" || base == "" {
		base = "document.pdf"
	}
	if !strings.HasSuffix(strings.ToLower(base), ".pdf") {
		base += ".pdf"
	}
	return base
}
