// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// EventDate holds the start and end of an event's date range. End may be
// zero for single-moment events; visibility filtering falls back to Start.
type EventDate struct {
	Start time.Time `json:"start" bson:"start"`
	End   time.Time `json:"end,omitempty" bson:"end,omitempty"`
}

// EventTime holds the display times as entered by the organizer ("19:30").
type EventTime struct {
	StartTime string `json:"startTime" bson:"startTime"`
	EndTime   string `json:"endTime" bson:"endTime"`
}

// Location is the event venue.
type Location struct {
	City      string  `json:"city" bson:"city"`
	Country   string  `json:"country" bson:"country"`
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// Price is the ticket price in the organizer's currency.
type Price struct {
	Amount   float64 `json:"amount" bson:"amount"`
	Currency string  `json:"currency" bson:"currency"`
}

// EventCategory is a category assignment denormalized into the event at
// creation time. Renaming a Category later does not rewrite past events.
type EventCategory struct {
	Title         string   `json:"title" bson:"title"`
	SubCategories []string `json:"subCategories" bson:"subCategories"`
}

// Event is a platform event as stored in the Events collection.
type Event struct {
	ID           string          `json:"id" bson:"id"`
	Title        string          `json:"title" bson:"title"`
	Description  string          `json:"description" bson:"description"`
	EventDate    EventDate       `json:"eventDate" bson:"eventDate"`
	Time         EventTime       `json:"time" bson:"time"`
	Location     Location        `json:"location" bson:"location"`
	Price        Price           `json:"price" bson:"price"`
	Images       []string        `json:"images" bson:"images"`
	Category     []EventCategory `json:"category" bson:"category"`
	CreatedBy    string          `json:"createdBy" bson:"createdBy"`
	TicketLink   string          `json:"ticketLink" bson:"ticketLink"`
	MoreInfoLink string          `json:"moreInfoLink" bson:"moreInfoLink"`
	CreatedAt    time.Time       `json:"createdAt" bson:"createdAt"`
}
