// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"eventdeck/internal/models"
)

// ErrNotFound is returned when a looked-up document does not exist.
var ErrNotFound = errors.New("not found")

// AdminStore persists staff accounts.
type AdminStore struct {
	col *mongo.Collection
}

// NewAdminStore creates a store over the subAdmins collection.
func NewAdminStore(col *mongo.Collection) *AdminStore {
	return &AdminStore{col: col}
}

// List returns all staff accounts.
func (s *AdminStore) List(ctx context.Context) ([]models.Admin, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find admins: %w", err)
	}
	var out []models.Admin
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode admins: %w", err)
	}
	return out, nil
}

// GetByEmail looks a staff account up by email. Returns ErrNotFound when
// no account exists, so login can distinguish bad credentials from outages.
func (s *AdminStore) GetByEmail(ctx context.Context, email string) (models.Admin, error) {
	var a models.Admin
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Admin{}, ErrNotFound
	}
	if err != nil {
		return models.Admin{}, fmt.Errorf("get admin by email: %w", err)
	}
	return a, nil
}

// GetByID looks a staff account up by id.
func (s *AdminStore) GetByID(ctx context.Context, id string) (models.Admin, error) {
	var a models.Admin
	err := s.col.FindOne(ctx, bson.M{"id": id}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Admin{}, ErrNotFound
	}
	if err != nil {
		return models.Admin{}, fmt.Errorf("get admin %s: %w", id, err)
	}
	return a, nil
}

// Create inserts a staff account, assigning a uuid when none is set.
func (s *AdminStore) Create(ctx context.Context, a models.Admin) (models.Admin, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if _, err := s.col.InsertOne(ctx, a); err != nil {
		return models.Admin{}, fmt.Errorf("insert admin: %w", err)
	}
	return a, nil
}

// Delete removes a staff account.
func (s *AdminStore) Delete(ctx context.Context, id string) error {
	if _, err := s.col.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("delete admin %s: %w", id, err)
	}
	return nil
}

// SetTOTP stores a staff account's TOTP secret and enablement flag.
func (s *AdminStore) SetTOTP(ctx context.Context, id, secret string, enabled bool) error {
	res, err := s.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{
		"totpSecret":  secret,
		"totpEnabled": enabled,
	}})
	if err != nil {
		return fmt.Errorf("update admin totp %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("update admin totp %s: %w", id, mongo.ErrNoDocuments)
	}
	return nil
}
