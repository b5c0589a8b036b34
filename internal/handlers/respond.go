// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the dashboard JSON API. Handlers are grouped
// per resource, constructed with their dependencies, and mounted by the
// router.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"eventdeck/internal/apperr"
	"eventdeck/internal/store"
)

// maxJSONBody bounds request bodies to keep misbehaving clients cheap.
const maxJSONBody = 1 << 20

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

// writeError maps an application error onto the API's error envelope.
// A missing document is the caller's problem (404), as are validation
// failures (400); store and upload failures are upstream outages (502).
// Anything unclassified is a 500.
func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}

	var ae *apperr.Error
	if !errors.As(err, &ae) {
		slog.Error("unclassified handler error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	switch ae.Kind {
	case apperr.KindValidation:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": ae.Msg})
	case apperr.KindStoreRead, apperr.KindStoreWrite:
		slog.Error("store operation failed", "error", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "data store unavailable"})
	case apperr.KindUpload:
		slog.Error("blob upload failed", "error", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "file storage unavailable"})
	default:
		slog.Error("handler error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

// decodeJSON reads a size-capped JSON body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return apperr.Validation("request body too large")
		}
		return apperr.Validation("invalid JSON body: %v", err)
	}
	return nil
}
