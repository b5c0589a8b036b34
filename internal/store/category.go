// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store implements the MongoDB-backed document stores. Documents
// are keyed by a string uuid in the "id" field rather than the native
// ObjectID; the collections are shared with the mobile clients and that is
// the key they use.
package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"eventdeck/internal/models"
)

// CategoryStore persists categories.
type CategoryStore struct {
	col *mongo.Collection
}

// NewCategoryStore creates a store over the categories collection.
func NewCategoryStore(col *mongo.Collection) *CategoryStore {
	return &CategoryStore{col: col}
}

// List returns all categories in unspecified order.
func (s *CategoryStore) List(ctx context.Context) ([]models.Category, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find categories: %w", err)
	}
	var out []models.Category
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	return out, nil
}

// Create inserts a category, assigning a uuid when none is set, and
// returns the stored document.
func (s *CategoryStore) Create(ctx context.Context, c models.Category) (models.Category, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if _, err := s.col.InsertOne(ctx, c); err != nil {
		return models.Category{}, fmt.Errorf("insert category: %w", err)
	}
	return c, nil
}

// Update applies a partial update to the identified category.
func (s *CategoryStore) Update(ctx context.Context, id string, fields map[string]any) error {
	res, err := s.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("update category %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("update category %s: %w", id, mongo.ErrNoDocuments)
	}
	return nil
}

// Delete removes the identified category.
func (s *CategoryStore) Delete(ctx context.Context, id string) error {
	if _, err := s.col.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("delete category %s: %w", id, err)
	}
	return nil
}

// Count returns the number of category documents.
func (s *CategoryStore) Count(ctx context.Context) (int64, error) {
	n, err := s.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return n, nil
}
