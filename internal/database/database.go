// Package database handles the MongoDB connection and exposes the named
// collections the application works with. Collection names are fixed by the
// mobile/web clients that share this database, so they are defined once here.
package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// connectTimeout bounds the initial connection and ping.
const connectTimeout = 10 * time.Second

// Connect opens a MongoDB client for the given URI and verifies the
// connection with a ping before returning.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	slog.Info("database connected")
	return client, nil
}

// Collections groups the typed collection handles. The mixed-case names
// (Events, Users, Reports vs. categories, subCategories) are historical and
// must not be normalized; existing documents live under these exact names.
type Collections struct {
	Categories      *mongo.Collection
	SubCategories   *mongo.Collection
	Events          *mongo.Collection
	Users           *mongo.Collection
	Reports         *mongo.Collection
	ContactMessages *mongo.Collection
	AppSettings     *mongo.Collection
	SubAdmins       *mongo.Collection
}

// NewCollections resolves every collection handle on the named database.
func NewCollections(client *mongo.Client, name string) *Collections {
	db := client.Database(name)
	return &Collections{
		Categories:      db.Collection("categories"),
		SubCategories:   db.Collection("subCategories"),
		Events:          db.Collection("Events"),
		Users:           db.Collection("Users"),
		Reports:         db.Collection("Reports"),
		ContactMessages: db.Collection("contactMessages"),
		AppSettings:     db.Collection("appSettings"),
		SubAdmins:       db.Collection("subAdmins"),
	}
}
