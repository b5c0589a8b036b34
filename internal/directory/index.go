// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package directory maintains the in-memory index of end-user accounts that
// backs the staff user list: wholesale refreshes from the store, substring
// search over profile fields, and status toggling.
package directory

import (
	"context"
	"strings"
	"sync"

	"eventdeck/internal/apperr"
	"eventdeck/internal/models"
)

// UserStore is the document store contract for the users collection.
type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	UpdateStatus(ctx context.Context, id string, status models.UserStatus) error
}

// Index holds the full user list in memory. The slice is replaced wholesale
// on refresh and never mutated in place, so callers may hold results across
// refreshes.
type Index struct {
	mu    sync.RWMutex
	store UserStore
	users []models.User
}

// NewIndex creates an empty index over the given store.
func NewIndex(store UserStore) *Index {
	return &Index{store: store}
}

// Refresh replaces the index contents with the store's current user list.
func (x *Index) Refresh(ctx context.Context) error {
	users, err := x.store.List(ctx)
	if err != nil {
		return apperr.StoreRead("list users", err)
	}

	x.mu.Lock()
	x.users = users
	x.mu.Unlock()
	return nil
}

// All returns every indexed user.
func (x *Index) All() []models.User {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.users
}

// Search returns users whose name, email, organization, or location contains
// the query, case-insensitively. An empty or all-whitespace query matches
// everyone.
func (x *Index) Search(query string) []models.User {
	q := strings.ToLower(strings.TrimSpace(query))

	x.mu.RLock()
	defer x.mu.RUnlock()

	if q == "" {
		return x.users
	}

	out := []models.User{}
	for _, u := range x.users {
		if matches(u, q) {
			out = append(out, u)
		}
	}
	return out
}

// Get looks a user up by id.
func (x *Index) Get(id string) (models.User, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	for _, u := range x.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// SetStatus persists a user's status and then mirrors it in the index. The
// index is untouched when the remote write fails.
func (x *Index) SetStatus(ctx context.Context, id string, status models.UserStatus) error {
	if status != models.UserActive && status != models.UserBlocked {
		return apperr.Validation("unknown user status %q", status)
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	i := -1
	for j, u := range x.users {
		if u.ID == id {
			i = j
			break
		}
	}
	if i == -1 {
		return apperr.Validation("unknown user %q", id)
	}

	if err := x.store.UpdateStatus(ctx, id, status); err != nil {
		return apperr.StoreWrite("update user status", err)
	}

	users := make([]models.User, len(x.users))
	copy(users, x.users)
	users[i].Status = status
	x.users = users
	return nil
}

func matches(u models.User, q string) bool {
	location := strings.Join([]string{u.Location.City, u.Location.State, u.Location.Country}, " ")
	for _, field := range []string{u.FullName, u.Email, u.OrganizationName, location} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
