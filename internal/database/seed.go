// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"eventdeck/internal/models"
)

// SeedAdmin creates the initial staff account if the subAdmins collection is
// empty. No-op when any account already exists, so it is safe to run on
// every startup.
func SeedAdmin(ctx context.Context, cols *Collections, email, password string) error {
	count, err := cols.SubAdmins.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("seed: count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed: hash password: %w", err)
	}

	admin := models.Admin{
		ID:           uuid.NewString(),
		Name:         "Administrator",
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := cols.SubAdmins.InsertOne(ctx, admin); err != nil {
		return fmt.Errorf("seed: insert admin: %w", err)
	}

	slog.Info("seeded initial admin account", "email", email)
	return nil
}
