// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// ContactStatus tracks whether staff has handled a contact query.
type ContactStatus string

const (
	ContactPending  ContactStatus = "pending"
	ContactApproved ContactStatus = "approved"
)

// ContactMessage is a query submitted through the platform's contact form.
type ContactMessage struct {
	ID        string        `json:"id" bson:"id"`
	Name      string        `json:"name" bson:"name"`
	Email     string        `json:"email" bson:"email"`
	Message   string        `json:"message" bson:"message"`
	Status    ContactStatus `json:"status,omitempty" bson:"status,omitempty"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
}
