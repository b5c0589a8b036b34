// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"eventdeck/internal/models"
)

// UserStore reads and updates end-user accounts. Account creation happens
// in the mobile apps; the dashboard only lists, searches, and blocks.
type UserStore struct {
	col *mongo.Collection
}

// NewUserStore creates a store over the Users collection.
func NewUserStore(col *mongo.Collection) *UserStore {
	return &UserStore{col: col}
}

// List returns all user accounts.
func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	var out []models.User
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return out, nil
}

// UpdateStatus sets a user's status and bumps updatedAt.
func (s *UserStore) UpdateStatus(ctx context.Context, id string, status models.UserStatus) error {
	res, err := s.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now().UTC(),
	}})
	if err != nil {
		return fmt.Errorf("update user status %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("update user status %s: %w", id, mongo.ErrNoDocuments)
	}
	return nil
}

// Count returns the number of user documents.
func (s *UserStore) Count(ctx context.Context) (int64, error) {
	n, err := s.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
