// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"eventdeck/internal/apperr"
	"eventdeck/internal/catalog"
)

// maxImageUpload bounds category and event image uploads.
const maxImageUpload = 10 << 20

// Categories groups the category and subcategory HTTP handlers. All
// mutations go through the catalog manager, which owns ordering and the
// delete cascade.
type Categories struct {
	manager *catalog.Manager
}

// NewCategories creates a new Categories handler group.
func NewCategories(manager *catalog.Manager) *Categories {
	return &Categories{manager: manager}
}

// List returns the current catalog snapshot after refreshing it from the
// store, so the dashboard always sees edits from other staff.
func (h *Categories) List(w http.ResponseWriter, r *http.Request) {
	snap, err := h.manager.Refresh(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"categories":    snap.Categories,
		"subCategories": snap.SubCategories,
	})
}

type categoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// Create adds a category at the end of the ordered list.
func (h *Categories) Create(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := checkStruct(req); err != nil {
		writeError(w, err)
		return
	}

	created, err := h.manager.AddCategory(r.Context(), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Rename updates a category's name.
func (h *Categories) Rename(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := checkStruct(req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.manager.RenameCategory(r.Context(), chi.URLParam(r, "id"), req.Name); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete removes a category and cascades to its subcategories.
func (h *Categories) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.manager.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type moveRequest struct {
	Direction string `json:"direction" validate:"required,oneof=up down"`
}

// Move swaps the category with its neighbor in the given direction.
func (h *Categories) Move(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := checkStruct(req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.manager.MoveCategory(r.Context(), chi.URLParam(r, "id"), catalog.Direction(req.Direction)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.manager.Categories())
}

// UploadImage attaches an image to a category from a multipart form.
func (h *Categories) UploadImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageUpload); err != nil {
		writeError(w, apperr.Validation("invalid multipart form: %v", err))
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, apperr.Validation("image file is required"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, apperr.Validation("could not read uploaded file: %v", err))
		return
	}

	// Sniff the content type; client-sent headers are not trusted.
	contentType := http.DetectContentType(data)

	updated, err := h.manager.AttachImage(r.Context(), chi.URLParam(r, "id"), header.Filename, contentType, data)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// ListSubCategories returns the subcategories of one category.
func (h *Categories) ListSubCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.manager.SubCategoriesOf(chi.URLParam(r, "id")))
}

type subCategoryRequest struct {
	Name       string `json:"name" validate:"required,max=100"`
	CategoryID string `json:"categoryId" validate:"required"`
}

// CreateSubCategory adds a subcategory under an existing category.
func (h *Categories) CreateSubCategory(w http.ResponseWriter, r *http.Request) {
	var req subCategoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := checkStruct(req); err != nil {
		writeError(w, err)
		return
	}

	created, err := h.manager.AddSubCategory(r.Context(), req.Name, req.CategoryID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

type subCategoryUpdateRequest struct {
	Name       string `json:"name" validate:"required,max=100"`
	CategoryID string `json:"categoryId"`
}

// UpdateSubCategory renames a subcategory and optionally reparents it.
func (h *Categories) UpdateSubCategory(w http.ResponseWriter, r *http.Request) {
	var req subCategoryUpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := checkStruct(req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.manager.RenameSubCategory(r.Context(), chi.URLParam(r, "id"), req.Name, req.CategoryID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteSubCategory removes a single subcategory.
func (h *Categories) DeleteSubCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.manager.DeleteSubCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
