// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Category is an event category with a manually maintained display order.
// Order values are assigned at creation (current list length) and are only
// ever changed by the pairwise reorder operation, which keeps them unique.
type Category struct {
	ID       string `json:"id" bson:"id"`
	Name     string `json:"name" bson:"name"`
	ImageURL string `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	ThumbURL string `json:"thumbUrl,omitempty" bson:"thumbUrl,omitempty"`
	Order    int    `json:"order" bson:"order"`
}

// SubCategory belongs to exactly one Category via CategoryID. The reference
// is a soft foreign key: the store does not enforce it, the application
// cascades deletes and filters by it.
type SubCategory struct {
	ID         string `json:"id" bson:"id"`
	Name       string `json:"name" bson:"name"`
	CategoryID string `json:"categoryId" bson:"categoryId"`
}
