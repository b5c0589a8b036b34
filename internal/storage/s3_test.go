// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package storage

import "testing"

func TestNewReturnsNilWithoutCredentials(t *testing.T) {
	tests := []struct {
		name      string
		endpoint  string
		accessKey string
		secretKey string
	}{
		{name: "all empty"},
		{name: "no endpoint", accessKey: "k", secretKey: "s"},
		{name: "no access key", endpoint: "https://s3.example.com", secretKey: "s"},
		{name: "no secret key", endpoint: "https://s3.example.com", accessKey: "k"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.endpoint, "fsn1", tt.accessKey, tt.secretKey, "media", "")
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if c != nil {
				t.Error("New() should return nil client when storage is unconfigured")
			}
		})
	}
}

func TestFileURL(t *testing.T) {
	tests := []struct {
		name      string
		publicURL string
		key       string
		want      string
	}{
		{
			name: "path style",
			key:  "categories/abc/banner.png",
			want: "https://s3.example.com/media/categories/abc/banner.png",
		},
		{
			name:      "cdn url",
			publicURL: "https://cdn.example.com",
			key:       "terms/terms.pdf",
			want:      "https://cdn.example.com/terms/terms.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New("https://s3.example.com/", "fsn1", "key", "secret", "media", tt.publicURL)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if got := c.FileURL(tt.key); got != tt.want {
				t.Errorf("FileURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractKey(t *testing.T) {
	c, err := New("https://s3.example.com", "fsn1", "key", "secret", "media", "https://cdn.example.com")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		name    string
		url     string
		wantKey string
		wantOK  bool
	}{
		{
			name:    "cdn prefix",
			url:     "https://cdn.example.com/events/e1/poster.jpg",
			wantKey: "events/e1/poster.jpg",
			wantOK:  true,
		},
		{
			name:    "path style prefix",
			url:     "https://s3.example.com/media/events/e1/poster.jpg",
			wantKey: "events/e1/poster.jpg",
			wantOK:  true,
		},
		{
			name:   "foreign url",
			url:    "https://elsewhere.example.com/poster.jpg",
			wantOK: false,
		},
		{
			name:   "empty",
			url:    "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := c.ExtractKey(tt.url)
			if ok != tt.wantOK {
				t.Fatalf("ExtractKey ok = %v, want %v", ok, tt.wantOK)
			}
			if key != tt.wantKey {
				t.Errorf("ExtractKey key = %q, want %q", key, tt.wantKey)
			}
		})
	}
}
