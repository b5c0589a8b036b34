// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the document structures stored in the platform's
// collections and the core types used throughout the application.
package models

import "time"

// UserStatus is the moderation state of a platform account.
type UserStatus string

const (
	UserActive  UserStatus = "active"
	UserBlocked UserStatus = "block"
)

// UserLocation is the free-form location a user entered at signup.
type UserLocation struct {
	City    string `json:"city" bson:"city"`
	State   string `json:"state" bson:"state"`
	Country string `json:"country" bson:"country"`
}

// User is a platform end user (event organizer or attendee). Admin staff
// accounts are a separate type, see Admin.
type User struct {
	ID               string       `json:"id" bson:"id"`
	FullName         string       `json:"fullName" bson:"fullName"`
	Email            string       `json:"email" bson:"email"`
	OrganizationName string       `json:"organizationName" bson:"organizationName"`
	Bio              string       `json:"bio,omitempty" bson:"bio,omitempty"`
	ProfileImage     string       `json:"profileImage,omitempty" bson:"profileImage,omitempty"`
	Location         UserLocation `json:"location" bson:"location"`
	Status           UserStatus   `json:"status" bson:"status"`
	CreatedAt        time.Time    `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt" bson:"updatedAt"`
}

// Blocked returns true if the account has been blocked by staff.
func (u *User) Blocked() bool {
	return u.Status == UserBlocked
}
