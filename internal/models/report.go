// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Report is a user-submitted abuse report.
type Report struct {
	ID         string    `json:"id" bson:"id"`
	Email      string    `json:"email" bson:"email"`
	Report     string    `json:"report" bson:"report"`
	ReportedBy []string  `json:"reportedBy" bson:"reportedBy"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
}
