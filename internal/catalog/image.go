// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"eventdeck/internal/apperr"
	"eventdeck/internal/models"
)

// BlobStore is the slice of the blob storage contract the manager needs.
type BlobStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
	DeleteURL(ctx context.Context, rawURL string) error
}

// thumbWidth is the width category thumbnails are resized to. Height
// follows the source aspect ratio.
const thumbWidth = 400

// AttachImage uploads an image for a category and persists its URL on the
// record. A downscaled JPEG thumbnail is generated and uploaded alongside;
// thumbnail failures are logged and the original URL is kept regardless.
// The previous image, if any, is deleted from blob storage best-effort.
func (m *Manager) AttachImage(ctx context.Context, categoryID, filename, contentType string, data []byte) (models.Category, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return models.Category{}, apperr.Validation("file must be an image, got %q", contentType)
	}
	if len(data) == 0 {
		return models.Category{}, apperr.Validation("empty image file")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	i := findCategory(m.snap.Categories, categoryID)
	if i == -1 {
		return models.Category{}, apperr.Validation("unknown category %q", categoryID)
	}
	if m.blobs == nil {
		return models.Category{}, apperr.Upload("blob storage not configured", nil)
	}

	filename = path.Base(filename)
	key := "categories/" + categoryID + "/" + filename

	imageURL, err := m.blobs.Upload(ctx, key, contentType, bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return models.Category{}, apperr.Upload("upload category image", err)
	}

	thumbURL := m.uploadThumb(ctx, categoryID, filename, data)
	if thumbURL == "" {
		thumbURL = imageURL
	}

	if err := m.cats.Update(ctx, categoryID, map[string]any{
		"imageUrl": imageURL,
		"thumbUrl": thumbURL,
	}); err != nil {
		return models.Category{}, apperr.StoreWrite("persist category image", err)
	}

	prev := m.snap.Categories[i]
	if prev.ImageURL != "" && prev.ImageURL != imageURL {
		if err := m.blobs.DeleteURL(ctx, prev.ImageURL); err != nil {
			slog.Warn("could not delete replaced category image", "url", prev.ImageURL, "error", err)
		}
	}
	if prev.ThumbURL != "" && prev.ThumbURL != prev.ImageURL && prev.ThumbURL != thumbURL {
		if err := m.blobs.DeleteURL(ctx, prev.ThumbURL); err != nil {
			slog.Warn("could not delete replaced category thumbnail", "url", prev.ThumbURL, "error", err)
		}
	}

	cats := copyCategories(m.snap.Categories)
	cats[i].ImageURL = imageURL
	cats[i].ThumbURL = thumbURL
	m.install(cats, m.snap.SubCategories, m.snap.SelectedID)
	return cats[i], nil
}

// uploadThumb builds and uploads the thumbnail, returning its URL or ""
// when the image cannot be decoded or the upload fails.
func (m *Manager) uploadThumb(ctx context.Context, categoryID, filename string, data []byte) string {
	src, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		slog.Warn("could not decode category image for thumbnail", "category", categoryID, "error", err)
		return ""
	}

	thumb := imaging.Resize(src, thumbWidth, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(80)); err != nil {
		slog.Warn("could not encode category thumbnail", "category", categoryID, "error", err)
		return ""
	}

	base := strings.TrimSuffix(filename, path.Ext(filename))
	key := "categories/" + categoryID + "/thumb_" + base + ".jpg"

	url, err := m.blobs.Upload(ctx, key, "image/jpeg", &buf, int64(buf.Len()))
	if err != nil {
		slog.Warn("could not upload category thumbnail", "category", categoryID, "error", err)
		return ""
	}
	return url
}
