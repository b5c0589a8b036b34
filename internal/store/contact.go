// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"eventdeck/internal/models"
)

// ContactStore reads and updates contact-form messages.
type ContactStore struct {
	col *mongo.Collection
}

// NewContactStore creates a store over the contactMessages collection.
func NewContactStore(col *mongo.Collection) *ContactStore {
	return &ContactStore{col: col}
}

// List returns all contact messages, newest first.
func (s *ContactStore) List(ctx context.Context) ([]models.ContactMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find contact messages: %w", err)
	}
	var out []models.ContactMessage
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode contact messages: %w", err)
	}
	return out, nil
}

// SetStatus updates a message's review status.
func (s *ContactStore) SetStatus(ctx context.Context, id string, status models.ContactStatus) error {
	res, err := s.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("update contact message %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("update contact message %s: %w", id, mongo.ErrNoDocuments)
	}
	return nil
}

// Delete removes a contact message.
func (s *ContactStore) Delete(ctx context.Context, id string) error {
	if _, err := s.col.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("delete contact message %s: %w", id, err)
	}
	return nil
}
