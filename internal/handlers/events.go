// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"eventdeck/internal/apperr"
	"eventdeck/internal/events"
	"eventdeck/internal/middleware"
	"eventdeck/internal/models"
)

// dateLayout is the wire format for event dates.
const dateLayout = "2006-01-02"

// Events groups the event HTTP handlers.
type Events struct {
	svc *events.Service
}

// NewEvents creates a new Events handler group.
func NewEvents(svc *events.Service) *Events {
	return &Events{svc: svc}
}

// List returns events. With ?visible=true only events that have not yet
// ended are included; the default shows everything, past events included.
func (h *Events) List(w http.ResponseWriter, r *http.Request) {
	var (
		evs []models.Event
		err error
	)
	if r.URL.Query().Get("visible") == "true" {
		evs, err = h.svc.ListVisible(r.Context())
	} else {
		evs, err = h.svc.List(r.Context())
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, evs)
}

// Get returns a single event.
func (h *Events) Get(w http.ResponseWriter, r *http.Request) {
	e, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

// Create builds an event from a multipart form. The optional "image" part
// becomes the event's first image.
func (h *Events) Create(w http.ResponseWriter, r *http.Request) {
	in, image, err := parseEventForm(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if sess := middleware.SessionFromCtx(r.Context()); sess != nil {
		in.CreatedBy = sess.AdminID
	}

	created, err := h.svc.Create(r.Context(), in, image)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Update replaces an event's fields and, when an image part is present,
// its first image.
func (h *Events) Update(w http.ResponseWriter, r *http.Request) {
	in, image, err := parseEventForm(r)
	if err != nil {
		writeError(w, err)
		return
	}

	updated, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), in, image)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete removes an event and its stored images.
func (h *Events) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// parseEventForm extracts the event input and optional image from a
// multipart form.
func parseEventForm(r *http.Request) (events.Input, *events.ImageUpload, error) {
	if err := r.ParseMultipartForm(maxImageUpload); err != nil {
		return events.Input{}, nil, apperr.Validation("invalid multipart form: %v", err)
	}

	in := events.Input{
		Title:        r.FormValue("title"),
		Description:  r.FormValue("description"),
		TicketLink:   r.FormValue("ticketLink"),
		MoreInfoLink: r.FormValue("moreInfoLink"),
		Time: models.EventTime{
			StartTime: r.FormValue("startTime"),
			EndTime:   r.FormValue("endTime"),
		},
		Location: models.Location{
			City:    r.FormValue("city"),
			Country: r.FormValue("country"),
		},
		Price: models.Price{Currency: r.FormValue("currency")},
	}

	var err error
	if in.Date.Start, err = parseDate(r.FormValue("startDate")); err != nil {
		return events.Input{}, nil, apperr.Validation("invalid startDate: %v", err)
	}
	if in.Date.End, err = parseDate(r.FormValue("endDate")); err != nil {
		return events.Input{}, nil, apperr.Validation("invalid endDate: %v", err)
	}
	if v := r.FormValue("latitude"); v != "" {
		if in.Location.Latitude, err = strconv.ParseFloat(v, 64); err != nil {
			return events.Input{}, nil, apperr.Validation("invalid latitude %q", v)
		}
	}
	if v := r.FormValue("longitude"); v != "" {
		if in.Location.Longitude, err = strconv.ParseFloat(v, 64); err != nil {
			return events.Input{}, nil, apperr.Validation("invalid longitude %q", v)
		}
	}
	if v := r.FormValue("price"); v != "" {
		if in.Price.Amount, err = strconv.ParseFloat(v, 64); err != nil {
			return events.Input{}, nil, apperr.Validation("invalid price %q", v)
		}
	}
	if v := r.FormValue("category"); v != "" {
		if err := json.Unmarshal([]byte(v), &in.Category); err != nil {
			return events.Input{}, nil, apperr.Validation("invalid category payload: %v", err)
		}
	}

	file, header, err := r.FormFile("image")
	if err == http.ErrMissingFile {
		return in, nil, nil
	}
	if err != nil {
		return events.Input{}, nil, apperr.Validation("could not read image part: %v", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return events.Input{}, nil, apperr.Validation("could not read uploaded file: %v", err)
	}

	return in, &events.ImageUpload{
		Filename:    header.Filename,
		ContentType: http.DetectContentType(data),
		Data:        data,
	}, nil
}

// parseDate accepts a bare date or a full RFC 3339 timestamp. An empty
// value yields the zero time.
func parseDate(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(dateLayout, v); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, v)
}
