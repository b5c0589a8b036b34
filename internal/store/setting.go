// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"eventdeck/internal/models"
)

// SettingStore persists the static-content settings documents (terms,
// privacy, about). Each setting is a single document keyed by name.
type SettingStore struct {
	col *mongo.Collection
}

// NewSettingStore creates a store over the appSettings collection.
func NewSettingStore(col *mongo.Collection) *SettingStore {
	return &SettingStore{col: col}
}

// Get fetches a setting by name. A missing document yields a zero-valued
// setting, not an error; the section simply has no PDF yet.
func (s *SettingStore) Get(ctx context.Context, name string) (models.AppSetting, error) {
	var out models.AppSetting
	err := s.col.FindOne(ctx, bson.M{"id": name}).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.AppSetting{ID: name}, nil
	}
	if err != nil {
		return models.AppSetting{}, fmt.Errorf("get setting %s: %w", name, err)
	}
	return out, nil
}

// Upsert writes a setting's PDF URL, creating the document on first write.
// An empty URL clears the section.
func (s *SettingStore) Upsert(ctx context.Context, name, pdfURL string) error {
	_, err := s.col.UpdateOne(ctx,
		bson.M{"id": name},
		bson.M{"$set": bson.M{"pdfUrl": pdfURL, "updatedAt": time.Now().UTC()}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upsert setting %s: %w", name, err)
	}
	return nil
}
