// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package events implements the event lifecycle: listing with expiry
// filtering, creation with an up-front image upload, and deletion that
// tolerates blob storage failures so a missing file can never strand a
// document.
package events

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"eventdeck/internal/apperr"
	"eventdeck/internal/models"
)

// Store is the document store contract for the events collection.
type Store interface {
	List(ctx context.Context) ([]models.Event, error)
	Get(ctx context.Context, id string) (models.Event, error)
	Create(ctx context.Context, e models.Event) (models.Event, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

// BlobStore is the slice of blob storage the service needs.
type BlobStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
	DeleteURL(ctx context.Context, rawURL string) error
}

// ImageUpload carries an in-memory image file through the service.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Input is the writable part of an event, shared by create and update.
type Input struct {
	Title        string
	Description  string
	Date         models.EventDate
	Time         models.EventTime
	Location     models.Location
	Price        models.Price
	Category     []models.EventCategory
	TicketLink   string
	MoreInfoLink string
	CreatedBy    string
}

// Service owns event reads and writes. The clock is injectable so expiry
// filtering can be tested against fixed dates.
type Service struct {
	store Store
	blobs BlobStore
	now   func() time.Time
}

// NewService builds a Service over the given store. blobs may be nil.
func NewService(store Store, blobs BlobStore) *Service {
	return &Service{store: store, blobs: blobs, now: time.Now}
}

// Expired reports whether an event's date has passed relative to now.
// The end date decides; events without one are judged by their start date.
// An event ending exactly at now is still considered live.
func Expired(e models.Event, now time.Time) bool {
	ref := e.EventDate.End
	if ref.IsZero() {
		ref = e.EventDate.Start
	}
	if ref.IsZero() {
		return false
	}
	return ref.Before(now)
}

// List returns every event, newest start date first. Admin surfaces show
// past events too, so nothing is filtered here.
func (s *Service) List(ctx context.Context) ([]models.Event, error) {
	evs, err := s.store.List(ctx)
	if err != nil {
		return nil, apperr.StoreRead("list events", err)
	}
	sort.SliceStable(evs, func(i, j int) bool {
		return evs[i].EventDate.Start.After(evs[j].EventDate.Start)
	})
	return evs, nil
}

// ListVisible returns only events that have not yet expired, soonest first.
func (s *Service) ListVisible(ctx context.Context) ([]models.Event, error) {
	evs, err := s.store.List(ctx)
	if err != nil {
		return nil, apperr.StoreRead("list events", err)
	}
	now := s.now()
	out := make([]models.Event, 0, len(evs))
	for _, e := range evs {
		if !Expired(e, now) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EventDate.Start.Before(out[j].EventDate.Start)
	})
	return out, nil
}

// Get fetches a single event by id.
func (s *Service) Get(ctx context.Context, id string) (models.Event, error) {
	e, err := s.store.Get(ctx, id)
	if err != nil {
		return models.Event{}, apperr.StoreRead("get event", err)
	}
	return e, nil
}

// Create validates the input, uploads the image when one is given, and
// inserts the document with the uploaded URL as its first image. The upload
// happens first so a failed upload never leaves an event without its image.
func (s *Service) Create(ctx context.Context, in Input, image *ImageUpload) (models.Event, error) {
	if err := validateInput(in); err != nil {
		return models.Event{}, err
	}

	e := models.Event{
		ID:           uuid.NewString(),
		Title:        strings.TrimSpace(in.Title),
		Description:  in.Description,
		EventDate:    in.Date,
		Time:         in.Time,
		Location:     in.Location,
		Price:        in.Price,
		Category:     in.Category,
		TicketLink:   in.TicketLink,
		MoreInfoLink: in.MoreInfoLink,
		CreatedBy:    in.CreatedBy,
		CreatedAt:    s.now().UTC(),
	}

	if image != nil {
		url, err := s.uploadImage(ctx, e.ID, image)
		if err != nil {
			return models.Event{}, err
		}
		e.Images = []string{url}
	}

	created, err := s.store.Create(ctx, e)
	if err != nil {
		// The document never landed; clean the blob up so it does not leak.
		if len(e.Images) > 0 && s.blobs != nil {
			if derr := s.blobs.DeleteURL(ctx, e.Images[0]); derr != nil {
				slog.Warn("could not delete orphaned event image", "url", e.Images[0], "error", derr)
			}
		}
		return models.Event{}, apperr.StoreWrite("create event", err)
	}
	return created, nil
}

// Update applies the input to an existing event. When a new image is given
// it replaces the first image: the new file is uploaded, the document
// updated, and the old blob deleted best-effort.
func (s *Service) Update(ctx context.Context, id string, in Input, image *ImageUpload) (models.Event, error) {
	if err := validateInput(in); err != nil {
		return models.Event{}, err
	}

	current, err := s.store.Get(ctx, id)
	if err != nil {
		return models.Event{}, apperr.StoreRead("get event", err)
	}

	fields := map[string]any{
		"title":        strings.TrimSpace(in.Title),
		"description":  in.Description,
		"eventDate":    in.Date,
		"time":         in.Time,
		"location":     in.Location,
		"price":        in.Price,
		"category":     in.Category,
		"ticketLink":   in.TicketLink,
		"moreInfoLink": in.MoreInfoLink,
	}

	var oldImage, newImage string
	if image != nil {
		url, err := s.uploadImage(ctx, id, image)
		if err != nil {
			return models.Event{}, err
		}
		newImage = url
		fields["images"] = append([]string{url}, rest(current.Images)...)
		if len(current.Images) > 0 {
			oldImage = current.Images[0]
		}
	}

	if err := s.store.Update(ctx, id, fields); err != nil {
		// The document still points at the old image; the fresh upload
		// would leak, so clean it up.
		if newImage != "" && s.blobs != nil {
			if derr := s.blobs.DeleteURL(ctx, newImage); derr != nil {
				slog.Warn("could not delete orphaned event image", "url", newImage, "error", derr)
			}
		}
		return models.Event{}, apperr.StoreWrite("update event", err)
	}

	if oldImage != "" && s.blobs != nil {
		if err := s.blobs.DeleteURL(ctx, oldImage); err != nil {
			slog.Warn("could not delete replaced event image", "url", oldImage, "error", err)
		}
	}

	return s.Get(ctx, id)
}

// Delete removes an event's blobs and then its document. Blob deletion
// failures are logged and do not stop the document delete; an image that
// was already gone must not make the event undeletable.
func (s *Service) Delete(ctx context.Context, id string) error {
	e, err := s.store.Get(ctx, id)
	if err != nil {
		return apperr.StoreRead("get event", err)
	}

	if s.blobs != nil {
		for _, img := range e.Images {
			if err := s.blobs.DeleteURL(ctx, img); err != nil {
				slog.Warn("could not delete event image", "event", id, "url", img, "error", err)
			}
		}
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return apperr.StoreWrite("delete event", err)
	}
	return nil
}

func (s *Service) uploadImage(ctx context.Context, eventID string, image *ImageUpload) (string, error) {
	if !strings.HasPrefix(image.ContentType, "image/") {
		return "", apperr.Validation("event image must be an image, got %q", image.ContentType)
	}
	if s.blobs == nil {
		return "", apperr.Upload("blob storage not configured", nil)
	}
	key := "events/" + eventID + "/" + path.Base(image.Filename)
	url, err := s.blobs.Upload(ctx, key, image.ContentType, bytes.NewReader(image.Data), int64(len(image.Data)))
	if err != nil {
		return "", apperr.Upload("upload event image", err)
	}
	return url, nil
}

func validateInput(in Input) error {
	if strings.TrimSpace(in.Title) == "" {
		return apperr.Validation("event title is required")
	}
	if in.Date.Start.IsZero() {
		return apperr.Validation("event start date is required")
	}
	if !in.Date.End.IsZero() && in.Date.End.Before(in.Date.Start) {
		return apperr.Validation("event end date is before its start date")
	}
	return nil
}

func rest(images []string) []string {
	if len(images) <= 1 {
		return nil
	}
	return images[1:]
}
