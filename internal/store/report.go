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

// ReportStore reads user-submitted reports. Reports originate in the
// mobile apps; the dashboard lists and dismisses them.
type ReportStore struct {
	col *mongo.Collection
}

// NewReportStore creates a store over the Reports collection.
func NewReportStore(col *mongo.Collection) *ReportStore {
	return &ReportStore{col: col}
}

// List returns all reports, newest first.
func (s *ReportStore) List(ctx context.Context) ([]models.Report, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find reports: %w", err)
	}
	var out []models.Report
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode reports: %w", err)
	}
	return out, nil
}

// Recent returns the n newest reports.
func (s *ReportStore) Recent(ctx context.Context, n int64) ([]models.Report, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(n)
	cur, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find recent reports: %w", err)
	}
	var out []models.Report
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode recent reports: %w", err)
	}
	return out, nil
}

// Delete dismisses a report.
func (s *ReportStore) Delete(ctx context.Context, id string) error {
	if _, err := s.col.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("delete report %s: %w", id, err)
	}
	return nil
}

// Count returns the number of report documents.
func (s *ReportStore) Count(ctx context.Context) (int64, error) {
	n, err := s.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count reports: %w", err)
	}
	return n, nil
}
