// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Setting keys for the static content PDFs served by the mobile app.
const (
	SettingTerms   = "terms"
	SettingPrivacy = "privacy"
	SettingAbout   = "about"
)

// AppSetting is one static-content document in the appSettings collection,
// keyed by a well-known name rather than a generated id.
type AppSetting struct {
	ID        string    `json:"id" bson:"id"`
	PDFURL    string    `json:"pdfUrl" bson:"pdfUrl"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// KnownSettingKey reports whether name is one of the supported setting keys.
func KnownSettingKey(name string) bool {
	switch name {
	case SettingTerms, SettingPrivacy, SettingAbout:
		return true
	}
	return false
}
