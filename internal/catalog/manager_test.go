// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"reflect"
	"strings"
	"testing"

	"eventdeck/internal/apperr"
	"eventdeck/internal/models"
)

type fakeCategoryStore struct {
	cats       []models.Category
	nextID     int
	createErr  error
	updateErr  error
	deleteErr  error
	updateLog  []string
	failOnID   string // update fails only for this id
	createSeen int
}

func (f *fakeCategoryStore) List(ctx context.Context) ([]models.Category, error) {
	out := make([]models.Category, len(f.cats))
	copy(out, f.cats)
	return out, nil
}

func (f *fakeCategoryStore) Create(ctx context.Context, c models.Category) (models.Category, error) {
	f.createSeen++
	if f.createErr != nil {
		return models.Category{}, f.createErr
	}
	f.nextID++
	c.ID = fmt.Sprintf("cat-%d", f.nextID)
	f.cats = append(f.cats, c)
	return c, nil
}

func (f *fakeCategoryStore) Update(ctx context.Context, id string, fields map[string]any) error {
	if f.updateErr != nil && (f.failOnID == "" || f.failOnID == id) {
		return f.updateErr
	}
	f.updateLog = append(f.updateLog, id)
	for i := range f.cats {
		if f.cats[i].ID != id {
			continue
		}
		if v, ok := fields["name"].(string); ok {
			f.cats[i].Name = v
		}
		if v, ok := fields["order"].(int); ok {
			f.cats[i].Order = v
		}
		if v, ok := fields["imageUrl"].(string); ok {
			f.cats[i].ImageURL = v
		}
		if v, ok := fields["thumbUrl"].(string); ok {
			f.cats[i].ThumbURL = v
		}
		return nil
	}
	return errors.New("not found")
}

func (f *fakeCategoryStore) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i := range f.cats {
		if f.cats[i].ID == id {
			f.cats = append(f.cats[:i], f.cats[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

type fakeSubCategoryStore struct {
	subs      []models.SubCategory
	nextID    int
	deleteErr error
	failOnID  string
	deleted   []string
}

func (f *fakeSubCategoryStore) List(ctx context.Context) ([]models.SubCategory, error) {
	out := make([]models.SubCategory, len(f.subs))
	copy(out, f.subs)
	return out, nil
}

func (f *fakeSubCategoryStore) Create(ctx context.Context, s models.SubCategory) (models.SubCategory, error) {
	f.nextID++
	s.ID = fmt.Sprintf("sub-%d", f.nextID)
	f.subs = append(f.subs, s)
	return s, nil
}

func (f *fakeSubCategoryStore) Update(ctx context.Context, id string, fields map[string]any) error {
	for i := range f.subs {
		if f.subs[i].ID != id {
			continue
		}
		if v, ok := fields["name"].(string); ok {
			f.subs[i].Name = v
		}
		if v, ok := fields["categoryId"].(string); ok {
			f.subs[i].CategoryID = v
		}
		return nil
	}
	return errors.New("not found")
}

func (f *fakeSubCategoryStore) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil && (f.failOnID == "" || f.failOnID == id) {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	for i := range f.subs {
		if f.subs[i].ID == id {
			f.subs = append(f.subs[:i], f.subs[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeBlobStore struct {
	uploads   map[string][]byte
	deleted   []string
	uploadErr error
}

func (f *fakeBlobStore) Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	if f.uploads == nil {
		f.uploads = map[string][]byte{}
	}
	f.uploads[key] = data
	return "https://cdn.test/" + key, nil
}

func (f *fakeBlobStore) DeleteURL(ctx context.Context, rawURL string) error {
	f.deleted = append(f.deleted, rawURL)
	return nil
}

func newTestManager(t *testing.T, names ...string) (*Manager, *fakeCategoryStore, *fakeSubCategoryStore) {
	t.Helper()
	cats := &fakeCategoryStore{}
	subs := &fakeSubCategoryStore{}
	m := New(cats, subs, nil)
	for _, name := range names {
		if _, err := m.AddCategory(context.Background(), name); err != nil {
			t.Fatalf("AddCategory(%q) error = %v", name, err)
		}
	}
	return m, cats, subs
}

func categoryNames(cats []models.Category) []string {
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.Name
	}
	return names
}

func TestAddCategoryAssignsIncreasingOrder(t *testing.T) {
	m, _, _ := newTestManager(t, "Music", "Sports", "Theatre")

	cats := m.Categories()
	for i, c := range cats {
		if c.Order != i {
			t.Errorf("category %q order = %d, want %d", c.Name, c.Order, i)
		}
	}
}

func TestAddCategoryValidatesBeforeRemote(t *testing.T) {
	cats := &fakeCategoryStore{}
	m := New(cats, &fakeSubCategoryStore{}, nil)

	_, err := m.AddCategory(context.Background(), "   ")
	if !apperr.IsValidation(err) {
		t.Fatalf("AddCategory error = %v, want validation", err)
	}
	if cats.createSeen != 0 {
		t.Error("store Create was called for invalid input")
	}
}

func TestAddCategorySnapshotUntouchedOnFailure(t *testing.T) {
	m, cats, _ := newTestManager(t, "Music")
	before := m.Snapshot()

	cats.createErr = errors.New("boom")
	_, err := m.AddCategory(context.Background(), "Sports")
	if err == nil {
		t.Fatal("AddCategory should fail when the store fails")
	}
	if kind, _ := apperr.KindOf(err); kind != apperr.KindStoreWrite {
		t.Errorf("error kind = %v, want store_write", kind)
	}
	if got := m.Snapshot(); !reflect.DeepEqual(got, before) {
		t.Errorf("snapshot changed on failed create: %+v", got)
	}
}

func TestMoveCategorySwapsNeighbors(t *testing.T) {
	m, _, _ := newTestManager(t, "A", "B", "C")
	snap := m.Snapshot()
	bID := snap.Categories[1].ID

	if err := m.MoveCategory(context.Background(), bID, MoveUp); err != nil {
		t.Fatalf("MoveCategory up error = %v", err)
	}
	if got := categoryNames(m.Categories()); !reflect.DeepEqual(got, []string{"B", "A", "C"}) {
		t.Fatalf("after move up: %v", got)
	}

	// Moving back down restores the original sequence.
	if err := m.MoveCategory(context.Background(), bID, MoveDown); err != nil {
		t.Fatalf("MoveCategory down error = %v", err)
	}
	if got := categoryNames(m.Categories()); !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Fatalf("after move back down: %v", got)
	}
}

func TestMoveCategoryBoundaryIsNoOp(t *testing.T) {
	m, cats, _ := newTestManager(t, "A", "B")
	before := m.Snapshot()

	tests := []struct {
		name string
		id   string
		dir  Direction
	}{
		{"first up", before.Categories[0].ID, MoveUp},
		{"last down", before.Categories[1].ID, MoveDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updates := len(cats.updateLog)
			if err := m.MoveCategory(context.Background(), tt.id, tt.dir); err != nil {
				t.Fatalf("MoveCategory error = %v", err)
			}
			if got := m.Snapshot(); !reflect.DeepEqual(got, before) {
				t.Errorf("boundary move changed the snapshot: %+v", got)
			}
			if len(cats.updateLog) != updates {
				t.Error("boundary move issued store updates")
			}
		})
	}
}

func TestMoveCategoryMovesOnePositionPerCall(t *testing.T) {
	m, _, _ := newTestManager(t, "A", "B", "C", "D")
	dID := m.Categories()[3].ID

	want := [][]string{
		{"A", "B", "D", "C"},
		{"A", "D", "B", "C"},
		{"D", "A", "B", "C"},
		{"D", "A", "B", "C"}, // already first, no-op
	}
	for i, w := range want {
		if err := m.MoveCategory(context.Background(), dID, MoveUp); err != nil {
			t.Fatalf("move %d error = %v", i, err)
		}
		if got := categoryNames(m.Categories()); !reflect.DeepEqual(got, w) {
			t.Fatalf("after move %d: got %v, want %v", i, got, w)
		}
	}
}

func TestMoveCategoryPartialFailureMirrorsStore(t *testing.T) {
	m, cats, _ := newTestManager(t, "A", "B")
	snap := m.Snapshot()
	aID := snap.Categories[0].ID
	bID := snap.Categories[1].ID

	// First update (for B) succeeds, second (for A) fails.
	cats.updateErr = errors.New("boom")
	cats.failOnID = aID

	err := m.MoveCategory(context.Background(), bID, MoveUp)
	if err == nil {
		t.Fatal("MoveCategory should surface the failed update")
	}

	// B's new order was persisted before the failure, so the local cache
	// must reflect it even though the swap is incomplete.
	got := m.Categories()
	for _, c := range got {
		if c.ID == bID && c.Order != 0 {
			t.Errorf("B order = %d, want 0 (persisted half of the swap)", c.Order)
		}
		if c.ID == aID && c.Order != 0 {
			t.Errorf("A order = %d, want 0 (its update never reached the store)", c.Order)
		}
	}
}

func TestSubCategoriesOf(t *testing.T) {
	m, _, _ := newTestManager(t, "Music", "Sports")
	snap := m.Snapshot()
	musicID := snap.Categories[0].ID
	sportsID := snap.Categories[1].ID

	for _, name := range []string{"Rock", "Jazz"} {
		if _, err := m.AddSubCategory(context.Background(), name, musicID); err != nil {
			t.Fatalf("AddSubCategory(%q) error = %v", name, err)
		}
	}
	if _, err := m.AddSubCategory(context.Background(), "Football", sportsID); err != nil {
		t.Fatalf("AddSubCategory error = %v", err)
	}

	got := m.SubCategoriesOf(musicID)
	if len(got) != 2 || got[0].Name != "Rock" || got[1].Name != "Jazz" {
		t.Errorf("SubCategoriesOf(music) = %+v", got)
	}
	for _, s := range got {
		if s.CategoryID != musicID {
			t.Errorf("subcategory %q has categoryId %q", s.Name, s.CategoryID)
		}
	}

	if got := m.SubCategoriesOf(""); len(got) != 0 {
		t.Errorf("SubCategoriesOf(empty) = %+v, want empty", got)
	}
	if got := m.SubCategoriesOf("nope"); len(got) != 0 {
		t.Errorf("SubCategoriesOf(unknown) = %+v, want empty", got)
	}
}

func TestDeleteCategoryCascades(t *testing.T) {
	m, cats, subs := newTestManager(t, "A", "B")
	snap := m.Snapshot()
	aID := snap.Categories[0].ID
	bID := snap.Categories[1].ID

	s1, _ := m.AddSubCategory(context.Background(), "S1", aID)
	s2, _ := m.AddSubCategory(context.Background(), "S2", aID)
	keep, _ := m.AddSubCategory(context.Background(), "S3", bID)

	if err := m.Select(aID); err != nil {
		t.Fatalf("Select error = %v", err)
	}

	if err := m.DeleteCategory(context.Background(), aID); err != nil {
		t.Fatalf("DeleteCategory error = %v", err)
	}

	if got := categoryNames(m.Categories()); !reflect.DeepEqual(got, []string{"B"}) {
		t.Errorf("categories after delete: %v", got)
	}
	for _, id := range []string{s1.ID, s2.ID} {
		found := false
		for _, d := range subs.deleted {
			if d == id {
				found = true
			}
		}
		if !found {
			t.Errorf("subcategory %s was not cascade-deleted", id)
		}
	}
	if got := m.SubCategoriesOf(bID); len(got) != 1 || got[0].ID != keep.ID {
		t.Errorf("B's subcategories after cascade: %+v", got)
	}
	if sel := m.Selected(); sel != "" {
		t.Errorf("selection = %q after deleting the selected category, want empty", sel)
	}
	if len(cats.cats) != 1 {
		t.Errorf("store still holds %d categories", len(cats.cats))
	}
}

func TestDeleteCategoryKeepsFailedCascadeLocally(t *testing.T) {
	m, _, subs := newTestManager(t, "A")
	aID := m.Categories()[0].ID

	s1, _ := m.AddSubCategory(context.Background(), "S1", aID)
	s2, _ := m.AddSubCategory(context.Background(), "S2", aID)

	subs.deleteErr = errors.New("boom")
	subs.failOnID = s1.ID

	if err := m.DeleteCategory(context.Background(), aID); err != nil {
		t.Fatalf("DeleteCategory error = %v", err)
	}

	// S2 was deleted remotely and evicted; S1's delete failed, so it stays
	// in the cache as a visible orphan until the next refresh.
	var ids []string
	for _, s := range m.Snapshot().SubCategories {
		ids = append(ids, s.ID)
	}
	if !reflect.DeepEqual(ids, []string{s1.ID}) {
		t.Errorf("remaining subcategories = %v, want [%s]", ids, s1.ID)
	}
	_ = s2
}

func TestRenameSubCategoryMovesParent(t *testing.T) {
	m, _, _ := newTestManager(t, "A", "B")
	snap := m.Snapshot()
	aID := snap.Categories[0].ID
	bID := snap.Categories[1].ID

	s, _ := m.AddSubCategory(context.Background(), "S", aID)

	if err := m.RenameSubCategory(context.Background(), s.ID, "S renamed", bID); err != nil {
		t.Fatalf("RenameSubCategory error = %v", err)
	}

	if got := m.SubCategoriesOf(aID); len(got) != 0 {
		t.Errorf("A still has subcategories: %+v", got)
	}
	got := m.SubCategoriesOf(bID)
	if len(got) != 1 || got[0].Name != "S renamed" {
		t.Errorf("B's subcategories = %+v", got)
	}
}

func TestSelectUnknownCategory(t *testing.T) {
	m, _, _ := newTestManager(t, "A")
	if err := m.Select("nope"); !apperr.IsValidation(err) {
		t.Errorf("Select(unknown) error = %v, want validation", err)
	}
}

func TestVersionBumpsOnMutation(t *testing.T) {
	m, _, _ := newTestManager(t, "A", "B")
	v := m.Snapshot().Version

	if err := m.MoveCategory(context.Background(), m.Categories()[1].ID, MoveUp); err != nil {
		t.Fatalf("MoveCategory error = %v", err)
	}
	if got := m.Snapshot().Version; got != v+1 {
		t.Errorf("version = %d, want %d", got, v+1)
	}
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	return buf.Bytes()
}

func TestAttachImageRejectsNonImage(t *testing.T) {
	cats := &fakeCategoryStore{}
	blobs := &fakeBlobStore{}
	m := New(cats, &fakeSubCategoryStore{}, blobs)
	created, _ := m.AddCategory(context.Background(), "A")

	_, err := m.AttachImage(context.Background(), created.ID, "doc.pdf", "application/pdf", []byte("%PDF"))
	if !apperr.IsValidation(err) {
		t.Fatalf("AttachImage error = %v, want validation", err)
	}
	if len(blobs.uploads) != 0 {
		t.Error("blob upload happened for a rejected file")
	}
}

func TestAttachImageUploadsOriginalAndThumbnail(t *testing.T) {
	cats := &fakeCategoryStore{}
	blobs := &fakeBlobStore{}
	m := New(cats, &fakeSubCategoryStore{}, blobs)
	created, _ := m.AddCategory(context.Background(), "A")

	got, err := m.AttachImage(context.Background(), created.ID, "banner.png", "image/png", pngBytes(t))
	if err != nil {
		t.Fatalf("AttachImage error = %v", err)
	}

	wantKey := "categories/" + created.ID + "/banner.png"
	if _, ok := blobs.uploads[wantKey]; !ok {
		t.Errorf("original not uploaded under %q, uploads: %v", wantKey, keysOf(blobs.uploads))
	}
	thumbKey := "categories/" + created.ID + "/thumb_banner.jpg"
	if _, ok := blobs.uploads[thumbKey]; !ok {
		t.Errorf("thumbnail not uploaded under %q, uploads: %v", thumbKey, keysOf(blobs.uploads))
	}
	if got.ImageURL == "" || got.ThumbURL == "" {
		t.Errorf("category URLs not set: %+v", got)
	}
	if got.ImageURL == got.ThumbURL {
		t.Error("thumbnail URL should differ from the original for a decodable image")
	}
}

func TestAttachImageUndecodableFallsBackToOriginal(t *testing.T) {
	cats := &fakeCategoryStore{}
	blobs := &fakeBlobStore{}
	m := New(cats, &fakeSubCategoryStore{}, blobs)
	created, _ := m.AddCategory(context.Background(), "A")

	got, err := m.AttachImage(context.Background(), created.ID, "weird.img", "image/x-unknown", []byte("not an image"))
	if err != nil {
		t.Fatalf("AttachImage error = %v", err)
	}
	if got.ThumbURL != got.ImageURL {
		t.Errorf("thumb = %q, want fallback to original %q", got.ThumbURL, got.ImageURL)
	}
}

func TestAttachImageDeletesReplacedBlob(t *testing.T) {
	cats := &fakeCategoryStore{}
	blobs := &fakeBlobStore{}
	m := New(cats, &fakeSubCategoryStore{}, blobs)
	created, _ := m.AddCategory(context.Background(), "A")

	img := pngBytes(t)
	first, err := m.AttachImage(context.Background(), created.ID, "one.png", "image/png", img)
	if err != nil {
		t.Fatalf("first AttachImage error = %v", err)
	}
	if _, err := m.AttachImage(context.Background(), created.ID, "two.png", "image/png", img); err != nil {
		t.Fatalf("second AttachImage error = %v", err)
	}

	found := false
	for _, d := range blobs.deleted {
		if d == first.ImageURL {
			found = true
		}
	}
	if !found {
		t.Errorf("replaced image %q not deleted, deletions: %v", first.ImageURL, blobs.deleted)
	}
}

func TestRefreshDropsStaleSelection(t *testing.T) {
	m, cats, _ := newTestManager(t, "A", "B")
	aID := m.Categories()[0].ID
	if err := m.Select(aID); err != nil {
		t.Fatalf("Select error = %v", err)
	}

	// Another client deletes A directly in the store.
	if err := cats.Delete(context.Background(), aID); err != nil {
		t.Fatalf("store delete: %v", err)
	}

	if _, err := m.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh error = %v", err)
	}
	if sel := m.Selected(); sel != "" {
		t.Errorf("selection = %q after refresh removed the category", sel)
	}
}

func TestRefreshSortsByOrder(t *testing.T) {
	cats := &fakeCategoryStore{cats: []models.Category{
		{ID: "c", Name: "C", Order: 2},
		{ID: "a", Name: "A", Order: 0},
		{ID: "b", Name: "B", Order: 1},
	}}
	m := New(cats, &fakeSubCategoryStore{}, nil)

	if _, err := m.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh error = %v", err)
	}
	if got := categoryNames(m.Categories()); !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Errorf("categories = %v, want sorted by order", got)
	}
}

func keysOf(m map[string][]byte) string {
	var keys []string
	for k := range m {
		keys = append(keys, k)
	}
	return strings.Join(keys, ", ")
}
