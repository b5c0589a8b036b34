// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Role represents a staff account's permission level.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleSubAdmin Role = "subAdmin"
)

// Admin is a staff account stored in the subAdmins collection. It carries
// its own credentials and 2FA fields; platform Users never log in here.
type Admin struct {
	ID           string    `json:"id" bson:"id"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"passwordHash"`
	Role         Role      `json:"role" bson:"role"`
	TOTPSecret   string    `json:"-" bson:"totpSecret,omitempty"`
	TOTPEnabled  bool      `json:"totpEnabled" bson:"totpEnabled"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}

// IsAdmin returns true if the account has the full admin role.
func (a *Admin) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Needs2FASetup returns true if the account has not completed 2FA enrollment.
func (a *Admin) Needs2FASetup() bool {
	return !a.TOTPEnabled
}
