// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"eventdeck/internal/models"
)

// EventStore persists events.
type EventStore struct {
	col *mongo.Collection
}

// NewEventStore creates a store over the Events collection.
func NewEventStore(col *mongo.Collection) *EventStore {
	return &EventStore{col: col}
}

// List returns all events.
func (s *EventStore) List(ctx context.Context) ([]models.Event, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find events: %w", err)
	}
	var out []models.Event
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return out, nil
}

// Recent returns the n latest events by start date.
func (s *EventStore) Recent(ctx context.Context, n int64) ([]models.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "eventDate.start", Value: -1}}).SetLimit(n)
	cur, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find recent events: %w", err)
	}
	var out []models.Event
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode recent events: %w", err)
	}
	return out, nil
}

// Get fetches an event by id. A missing document is ErrNotFound so
// callers can answer with a client error instead of an outage.
func (s *EventStore) Get(ctx context.Context, id string) (models.Event, error) {
	var e models.Event
	err := s.col.FindOne(ctx, bson.M{"id": id}).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Event{}, fmt.Errorf("get event %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return models.Event{}, fmt.Errorf("get event %s: %w", id, err)
	}
	return e, nil
}

// Create inserts an event, assigning a uuid when none is set.
func (s *EventStore) Create(ctx context.Context, e models.Event) (models.Event, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if _, err := s.col.InsertOne(ctx, e); err != nil {
		return models.Event{}, fmt.Errorf("insert event: %w", err)
	}
	return e, nil
}

// Update applies a partial update to the identified event.
func (s *EventStore) Update(ctx context.Context, id string, fields map[string]any) error {
	res, err := s.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("update event %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("update event %s: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes the identified event.
func (s *EventStore) Delete(ctx context.Context, id string) error {
	if _, err := s.col.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("delete event %s: %w", id, err)
	}
	return nil
}

// Count returns the number of event documents.
func (s *EventStore) Count(ctx context.Context) (int64, error) {
	n, err := s.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return n, nil
}

// CountUpcoming returns the number of events starting at or after now.
func (s *EventStore) CountUpcoming(ctx context.Context, now time.Time) (int64, error) {
	n, err := s.col.CountDocuments(ctx, bson.M{"eventDate.start": bson.M{"$gte": now}})
	if err != nil {
		return 0, fmt.Errorf("count upcoming events: %w", err)
	}
	return n, nil
}
