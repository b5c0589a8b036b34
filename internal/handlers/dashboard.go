// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"
	"time"

	"eventdeck/internal/apperr"
	"eventdeck/internal/models"
)

// recentFeedCount is how many recent events and reports the dashboard shows.
const recentFeedCount = 4

// Counter is any store that can report its document count.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// EventFeed supplies the event figures on the landing page.
type EventFeed interface {
	Counter
	Recent(ctx context.Context, n int64) ([]models.Event, error)
	CountUpcoming(ctx context.Context, now time.Time) (int64, error)
}

// ReportFeed supplies the report figures on the landing page.
type ReportFeed interface {
	Counter
	Recent(ctx context.Context, n int64) ([]models.Report, error)
}

// Dashboard serves the landing-page statistics.
type Dashboard struct {
	users      Counter
	categories Counter
	events     EventFeed
	reports    ReportFeed
}

// NewDashboard creates a new Dashboard handler.
func NewDashboard(users, categories Counter, events EventFeed, reports ReportFeed) *Dashboard {
	return &Dashboard{
		users:      users,
		categories: categories,
		events:     events,
		reports:    reports,
	}
}

// Stats returns document counts per collection plus the latest events and
// reports.
func (h *Dashboard) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	counts := map[string]int64{}
	for name, c := range map[string]Counter{
		"users":      h.users,
		"categories": h.categories,
		"events":     h.events,
		"reports":    h.reports,
	} {
		n, err := c.Count(ctx)
		if err != nil {
			writeError(w, apperr.StoreRead("count "+name, err))
			return
		}
		counts[name] = n
	}

	upcoming, err := h.events.CountUpcoming(ctx, time.Now())
	if err != nil {
		writeError(w, apperr.StoreRead("count upcoming events", err))
		return
	}
	counts["upcomingEvents"] = upcoming

	recentEvents, err := h.events.Recent(ctx, recentFeedCount)
	if err != nil {
		writeError(w, apperr.StoreRead("recent events", err))
		return
	}
	if recentEvents == nil {
		recentEvents = []models.Event{}
	}

	recentReports, err := h.reports.Recent(ctx, recentFeedCount)
	if err != nil {
		writeError(w, apperr.StoreRead("recent reports", err))
		return
	}
	if recentReports == nil {
		recentReports = []models.Report{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"counts":        counts,
		"recentEvents":  recentEvents,
		"recentReports": recentReports,
	})
}
