// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"eventdeck/internal/models"
)

// SubCategoryStore persists subcategories.
type SubCategoryStore struct {
	col *mongo.Collection
}

// NewSubCategoryStore creates a store over the subCategories collection.
func NewSubCategoryStore(col *mongo.Collection) *SubCategoryStore {
	return &SubCategoryStore{col: col}
}

// List returns all subcategories in insertion order.
func (s *SubCategoryStore) List(ctx context.Context) ([]models.SubCategory, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find subcategories: %w", err)
	}
	var out []models.SubCategory
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode subcategories: %w", err)
	}
	return out, nil
}

// Create inserts a subcategory, assigning a uuid when none is set.
func (s *SubCategoryStore) Create(ctx context.Context, sc models.SubCategory) (models.SubCategory, error) {
	if sc.ID == "" {
		sc.ID = uuid.NewString()
	}
	if _, err := s.col.InsertOne(ctx, sc); err != nil {
		return models.SubCategory{}, fmt.Errorf("insert subcategory: %w", err)
	}
	return sc, nil
}

// Update applies a partial update to the identified subcategory.
func (s *SubCategoryStore) Update(ctx context.Context, id string, fields map[string]any) error {
	res, err := s.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("update subcategory %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("update subcategory %s: %w", id, mongo.ErrNoDocuments)
	}
	return nil
}

// Delete removes the identified subcategory.
func (s *SubCategoryStore) Delete(ctx context.Context, id string) error {
	if _, err := s.col.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("delete subcategory %s: %w", id, err)
	}
	return nil
}
