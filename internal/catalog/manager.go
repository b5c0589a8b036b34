// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog implements the category relationship manager: the ordered
// category list, the category→subcategory relation, and the app-level
// cascade that keeps them consistent. Local state is a versioned immutable
// snapshot replaced wholesale on every successful fetch or mutation, so
// references handed out earlier remain safe to read. All mutations are
// serialized through a single mutex; two reorder clicks can never interleave
// their order swaps.
package catalog

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"eventdeck/internal/apperr"
	"eventdeck/internal/models"
)

// CategoryStore is the slice of the document store contract the manager
// needs for the categories collection.
type CategoryStore interface {
	List(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, c models.Category) (models.Category, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

// SubCategoryStore is the document store contract for the subCategories
// collection.
type SubCategoryStore interface {
	List(ctx context.Context) ([]models.SubCategory, error)
	Create(ctx context.Context, s models.SubCategory) (models.SubCategory, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

// Direction selects which neighbor a category swaps order values with.
type Direction string

const (
	MoveUp   Direction = "up"
	MoveDown Direction = "down"
)

// ValidDirection reports whether d is a known direction.
func ValidDirection(d Direction) bool {
	return d == MoveUp || d == MoveDown
}

// Snapshot is the manager's local view of the remote collections. It is
// never mutated in place: every successful operation installs a fresh
// snapshot with a bumped version. Categories are sorted ascending by order.
type Snapshot struct {
	Version       uint64
	Categories    []models.Category
	SubCategories []models.SubCategory
	SelectedID    string
}

// Manager mediates all category and subcategory mutations. Reads come from
// the snapshot; writes go remote-first and only touch the snapshot after
// the store confirms them.
type Manager struct {
	mu    sync.Mutex
	cats  CategoryStore
	subs  SubCategoryStore
	blobs BlobStore
	snap  Snapshot
}

// New creates a Manager over the given stores. blobs may be nil when no
// blob storage is configured; AttachImage then fails with an upload error.
func New(cats CategoryStore, subs SubCategoryStore, blobs BlobStore) *Manager {
	return &Manager{cats: cats, subs: subs, blobs: blobs}
}

// Refresh replaces the snapshot with the store's current contents. This is
// the only way edits made by other clients become visible.
func (m *Manager) Refresh(ctx context.Context) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cats, err := m.cats.List(ctx)
	if err != nil {
		return m.snap, apperr.StoreRead("list categories", err)
	}
	subs, err := m.subs.List(ctx)
	if err != nil {
		return m.snap, apperr.StoreRead("list subcategories", err)
	}

	sortByOrder(cats)

	// Selection survives a refresh only if the category still exists.
	selected := m.snap.SelectedID
	if selected != "" && findCategory(cats, selected) == -1 {
		selected = ""
	}

	m.install(cats, subs, selected)
	return m.snap, nil
}

// Snapshot returns the current local view.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap
}

// Categories returns the category list sorted ascending by order.
func (m *Manager) Categories() []models.Category {
	return m.Snapshot().Categories
}

// AddCategory creates a category at the end of the list: its order is the
// current list length. The snapshot is untouched if the create fails.
func (m *Manager) AddCategory(ctx context.Context, name string) (models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Category{}, apperr.Validation("category name is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	created, err := m.cats.Create(ctx, models.Category{
		Name:  name,
		Order: len(m.snap.Categories),
	})
	if err != nil {
		return models.Category{}, apperr.StoreWrite("create category", err)
	}

	cats := append(copyCategories(m.snap.Categories), created)
	sortByOrder(cats)
	m.install(cats, m.snap.SubCategories, m.snap.SelectedID)
	return created, nil
}

// RenameCategory updates a category's name, remote first.
func (m *Manager) RenameCategory(ctx context.Context, id, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return apperr.Validation("category name is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	i := findCategory(m.snap.Categories, id)
	if i == -1 {
		return apperr.Validation("unknown category %q", id)
	}

	if err := m.cats.Update(ctx, id, map[string]any{"name": newName}); err != nil {
		return apperr.StoreWrite("rename category", err)
	}

	cats := copyCategories(m.snap.Categories)
	cats[i].Name = newName
	m.install(cats, m.snap.SubCategories, m.snap.SelectedID)
	return nil
}

// DeleteCategory removes a category and cascades to its subcategories.
// The cascade is two-phase and not atomic: dependents are enumerated from
// the snapshot, the parent record is deleted, then each dependent is
// deleted in turn. A dependent that fails to delete is logged and left
// orphaned in the store; there is no compensating rollback. If the deleted
// category was selected, the selection is cleared.
func (m *Manager) DeleteCategory(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if findCategory(m.snap.Categories, id) == -1 {
		return apperr.Validation("unknown category %q", id)
	}

	// Phase 1: enumerate dependents before touching the store.
	var dependents []models.SubCategory
	for _, s := range m.snap.SubCategories {
		if s.CategoryID == id {
			dependents = append(dependents, s)
		}
	}

	// Phase 2: delete the parent record.
	if err := m.cats.Delete(ctx, id); err != nil {
		return apperr.StoreWrite("delete category", err)
	}

	// Phase 3: cascade. Failures orphan the subcategory, nothing more.
	deleted := make(map[string]bool, len(dependents))
	for _, s := range dependents {
		if err := m.subs.Delete(ctx, s.ID); err != nil {
			slog.Error("cascade delete left orphaned subcategory",
				"subCategoryId", s.ID,
				"categoryId", id,
				"error", err,
			)
			continue
		}
		deleted[s.ID] = true
	}

	cats := make([]models.Category, 0, len(m.snap.Categories)-1)
	for _, c := range m.snap.Categories {
		if c.ID != id {
			cats = append(cats, c)
		}
	}
	subs := make([]models.SubCategory, 0, len(m.snap.SubCategories))
	for _, s := range m.snap.SubCategories {
		if s.CategoryID == id && deleted[s.ID] {
			continue
		}
		subs = append(subs, s)
	}

	selected := m.snap.SelectedID
	if selected == id {
		selected = ""
	}
	m.install(cats, subs, selected)
	return nil
}

// MoveCategory swaps the order value of id's category with its immediate
// neighbor in the sorted sequence. Moving the first category up or the last
// one down is a no-op that leaves the snapshot untouched, version included.
// Repeated application therefore moves a category exactly one position per
// call, never skipping.
func (m *Manager) MoveCategory(ctx context.Context, id string, dir Direction) error {
	if !ValidDirection(dir) {
		return apperr.Validation("unknown direction %q", dir)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	i := findCategory(m.snap.Categories, id)
	if i == -1 {
		return apperr.Validation("unknown category %q", id)
	}

	if (dir == MoveUp && i == 0) || (dir == MoveDown && i == len(m.snap.Categories)-1) {
		return nil
	}

	j := i - 1
	if dir == MoveDown {
		j = i + 1
	}

	cats := copyCategories(m.snap.Categories)
	cats[i].Order, cats[j].Order = cats[j].Order, cats[i].Order

	// Two independent update calls, mirroring the store contract: there is
	// no multi-document transaction here. Concurrent swaps are prevented by
	// the manager's mutex, not by the store.
	if err := m.cats.Update(ctx, cats[i].ID, map[string]any{"order": cats[i].Order}); err != nil {
		return apperr.StoreWrite("persist order swap", err)
	}
	if err := m.cats.Update(ctx, cats[j].ID, map[string]any{"order": cats[j].Order}); err != nil {
		// The first update is already persisted; mirror it locally so the
		// cache matches what the store now holds.
		half := copyCategories(m.snap.Categories)
		half[i].Order = cats[i].Order
		sortByOrder(half)
		m.install(half, m.snap.SubCategories, m.snap.SelectedID)
		return apperr.StoreWrite("persist order swap", err)
	}

	sortByOrder(cats)
	m.install(cats, m.snap.SubCategories, m.snap.SelectedID)
	return nil
}

// AddSubCategory creates a subcategory under an existing category.
func (m *Manager) AddSubCategory(ctx context.Context, name, categoryID string) (models.SubCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.SubCategory{}, apperr.Validation("subcategory name is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if findCategory(m.snap.Categories, categoryID) == -1 {
		return models.SubCategory{}, apperr.Validation("unknown category %q", categoryID)
	}

	created, err := m.subs.Create(ctx, models.SubCategory{
		Name:       name,
		CategoryID: categoryID,
	})
	if err != nil {
		return models.SubCategory{}, apperr.StoreWrite("create subcategory", err)
	}

	subs := append(copySubCategories(m.snap.SubCategories), created)
	m.install(m.snap.Categories, subs, m.snap.SelectedID)
	return created, nil
}

// RenameSubCategory updates a subcategory's name and, optionally, moves it
// to another category. Passing an empty categoryID keeps the current parent.
func (m *Manager) RenameSubCategory(ctx context.Context, id, newName, categoryID string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return apperr.Validation("subcategory name is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	i := findSubCategory(m.snap.SubCategories, id)
	if i == -1 {
		return apperr.Validation("unknown subcategory %q", id)
	}
	if categoryID != "" && findCategory(m.snap.Categories, categoryID) == -1 {
		return apperr.Validation("unknown category %q", categoryID)
	}

	fields := map[string]any{"name": newName}
	if categoryID != "" {
		fields["categoryId"] = categoryID
	}
	if err := m.subs.Update(ctx, id, fields); err != nil {
		return apperr.StoreWrite("rename subcategory", err)
	}

	subs := copySubCategories(m.snap.SubCategories)
	subs[i].Name = newName
	if categoryID != "" {
		subs[i].CategoryID = categoryID
	}
	m.install(m.snap.Categories, subs, m.snap.SelectedID)
	return nil
}

// DeleteSubCategory removes a single subcategory.
func (m *Manager) DeleteSubCategory(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := findSubCategory(m.snap.SubCategories, id)
	if i == -1 {
		return apperr.Validation("unknown subcategory %q", id)
	}

	if err := m.subs.Delete(ctx, id); err != nil {
		return apperr.StoreWrite("delete subcategory", err)
	}

	subs := append(copySubCategories(m.snap.SubCategories[:i]), m.snap.SubCategories[i+1:]...)
	m.install(m.snap.Categories, subs, m.snap.SelectedID)
	return nil
}

// SubCategoriesOf returns the subcategories whose categoryId equals the
// argument, in store-return order. An unset or unknown id yields an empty
// sequence, not an error.
func (m *Manager) SubCategoriesOf(categoryID string) []models.SubCategory {
	snap := m.Snapshot()

	out := []models.SubCategory{}
	if categoryID == "" {
		return out
	}
	for _, s := range snap.SubCategories {
		if s.CategoryID == categoryID {
			out = append(out, s)
		}
	}
	return out
}

// Select marks a category as the current selection. An empty id clears it.
func (m *Manager) Select(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id != "" && findCategory(m.snap.Categories, id) == -1 {
		return apperr.Validation("unknown category %q", id)
	}

	m.install(m.snap.Categories, m.snap.SubCategories, id)
	return nil
}

// Selected returns the currently selected category id, or "".
func (m *Manager) Selected() string {
	return m.Snapshot().SelectedID
}

// install replaces the snapshot and bumps the version. Callers hold m.mu.
func (m *Manager) install(cats []models.Category, subs []models.SubCategory, selected string) {
	m.snap = Snapshot{
		Version:       m.snap.Version + 1,
		Categories:    cats,
		SubCategories: subs,
		SelectedID:    selected,
	}
}

func sortByOrder(cats []models.Category) {
	sort.SliceStable(cats, func(i, j int) bool { return cats[i].Order < cats[j].Order })
}

func findCategory(cats []models.Category, id string) int {
	for i, c := range cats {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func findSubCategory(subs []models.SubCategory, id string) int {
	for i, s := range subs {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func copyCategories(cats []models.Category) []models.Category {
	out := make([]models.Category, len(cats))
	copy(out, cats)
	return out
}

func copySubCategories(subs []models.SubCategory) []models.SubCategory {
	out := make([]models.SubCategory, len(subs))
	copy(out, subs)
	return out
}
