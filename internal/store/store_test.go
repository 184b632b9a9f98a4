package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/budget-bites/budgetbites/internal/localstore"
	"github.com/budget-bites/budgetbites/internal/log"
	"github.com/budget-bites/budgetbites/internal/recipe"
)

func newTestStore(t *testing.T, opts ...localstore.Option) (*Store, *localstore.Store) {
	t.Helper()
	kv, err := localstore.Open(filepath.Join(t.TempDir(), "store.db"), opts...)
	if err != nil {
		t.Fatalf("localstore.Open() error = %v", err)
	}
	t.Cleanup(func() { _ = kv.Close() })
	return New(kv, log.Null()), kv
}

func testRecipe(id, title string) recipe.Recipe {
	return recipe.Recipe{
		ID:              id,
		Title:           title,
		PrimaryCategory: "budget-basics",
		SecondaryTags:   []string{"quick"},
		Ingredients:     []recipe.Ingredient{{Name: "rice", Amount: "1", Unit: "cup", Cost: 0.25}},
		Instructions: []recipe.InstructionLevel{
			{Level: recipe.LevelBase, Steps: []string{"Cook the rice."}},
		},
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

func TestGetAll_Empty(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	got := s.GetAll(ctx)
	if got == nil {
		t.Fatal("GetAll() = nil, want empty slice")
	}
	if len(got) != 0 {
		t.Errorf("GetAll() = %v, want empty", got)
	}
}

func TestGetAll_CorruptCollection(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t)

	if err := kv.Set(ctx, "budget-bites-enhanced-recipes", []byte("{not json")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got := s.GetAll(ctx)
	if len(got) != 0 {
		t.Errorf("GetAll() with corrupt data = %v, want empty", got)
	}
}

func TestSaveAndGetByID(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	r := testRecipe("recipe_a", "First")
	if err := s.Save(ctx, r); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, ok := s.GetByID(ctx, "recipe_a")
	if !ok {
		t.Fatal("GetByID() ok = false, want true")
	}
	if got.Title != "First" {
		t.Errorf("Title = %q, want First", got.Title)
	}

	if _, ok := s.GetByID(ctx, "recipe_missing"); ok {
		t.Error("GetByID(missing) ok = true, want false")
	}
}

func TestSave_RequiresID(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	if err := s.Save(ctx, recipe.Recipe{Title: "No ID"}); err == nil {
		t.Error("Save() without id = nil, want error")
	}
}

func TestSave_UpsertsByID(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	created := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	r := testRecipe("recipe_a", "Original")
	r.CreatedAt = created
	r.UpdatedAt = created
	if err := s.Save(ctx, r); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	r.Title = "Renamed"
	r.CreatedAt = time.Time{}
	if err := s.Save(ctx, r); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}

	all := s.GetAll(ctx)
	if len(all) != 1 {
		t.Fatalf("len(GetAll()) = %d, want 1 after upsert", len(all))
	}
	got := all[0]
	if got.Title != "Renamed" {
		t.Errorf("Title = %q, want Renamed", got.Title)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want preserved %v", got.CreatedAt, created)
	}
	if !got.UpdatedAt.After(created) {
		t.Errorf("UpdatedAt = %v, want bumped past %v", got.UpdatedAt, created)
	}
}

func TestSave_PreservesOrder(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	for _, id := range []string{"recipe_1", "recipe_2", "recipe_3"} {
		if err := s.Save(ctx, testRecipe(id, id)); err != nil {
			t.Fatalf("Save(%s) error = %v", id, err)
		}
	}
	if err := s.Save(ctx, testRecipe("recipe_2", "updated")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	all := s.GetAll(ctx)
	ids := []string{all[0].ID, all[1].ID, all[2].ID}
	want := []string{"recipe_1", "recipe_2", "recipe_3"}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("order = %v, want %v", ids, want)
		}
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	if err := s.Save(ctx, testRecipe("recipe_a", "Before")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	title := "After"
	updated, err := s.Update(ctx, "recipe_a", recipe.Patch{Title: &title})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Title != "After" {
		t.Errorf("Title = %q, want After", updated.Title)
	}

	got, _ := s.GetByID(ctx, "recipe_a")
	if got.Title != "After" {
		t.Errorf("persisted Title = %q, want After", got.Title)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	title := "x"
	if _, err := s.Update(ctx, "recipe_ghost", recipe.Patch{Title: &title}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	if err := s.Save(ctx, testRecipe("recipe_a", "A")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := s.Delete(ctx, "recipe_a"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok := s.GetByID(ctx, "recipe_a"); ok {
		t.Error("recipe still present after delete")
	}

	if err := s.Delete(ctx, "recipe_a"); err != nil {
		t.Errorf("Delete(absent) error = %v, want nil", err)
	}
}

func TestImportMany(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	if err := s.Save(ctx, testRecipe("recipe_a", "Existing")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	batch := []recipe.Recipe{
		testRecipe("recipe_a", "Replaced"),
		testRecipe("recipe_b", "New"),
	}
	if err := s.ImportMany(ctx, batch); err != nil {
		t.Fatalf("ImportMany() error = %v", err)
	}

	all := s.GetAll(ctx)
	if len(all) != 2 {
		t.Fatalf("len(GetAll()) = %d, want 2", len(all))
	}
	if all[0].ID != "recipe_a" || all[0].Title != "Replaced" {
		t.Errorf("all[0] = %q/%q, want recipe_a/Replaced", all[0].ID, all[0].Title)
	}
	if all[1].ID != "recipe_b" {
		t.Errorf("all[1].ID = %q, want recipe_b", all[1].ID)
	}

	// Importing the same batch again must not duplicate.
	if err := s.ImportMany(ctx, batch); err != nil {
		t.Fatalf("second ImportMany() error = %v", err)
	}
	if got := len(s.GetAll(ctx)); got != 2 {
		t.Errorf("len(GetAll()) after reimport = %d, want 2", got)
	}
}

func TestImportMany_QuotaFailureLeavesStoreIntact(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t, localstore.WithQuota(2048))

	if err := s.Save(ctx, testRecipe("recipe_a", "Fits")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	big := testRecipe("recipe_big", "Too big")
	for range 200 {
		big.Tips = append(big.Tips, "padding to push the encoded collection past the quota")
	}
	if err := s.ImportMany(ctx, []recipe.Recipe{big}); !errors.Is(err, localstore.ErrQuotaExceeded) {
		t.Fatalf("ImportMany() error = %v, want ErrQuotaExceeded", err)
	}

	all := s.GetAll(ctx)
	if len(all) != 1 || all[0].ID != "recipe_a" {
		t.Errorf("GetAll() after failed import = %v, want the original recipe only", all)
	}
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	a := testRecipe("recipe_a", "Honey Garlic Salmon")
	b := testRecipe("recipe_b", "Ramen Upgrade")
	for _, r := range []recipe.Recipe{a, b} {
		if err := s.Save(ctx, r); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	got := s.Search(ctx, "salmon")
	if len(got) != 1 || got[0].ID != "recipe_a" {
		t.Errorf("Search(salmon) = %v, want recipe_a only", got)
	}

	if got := s.Search(ctx, ""); len(got) != 2 {
		t.Errorf("Search(empty) returned %d recipes, want 2", len(got))
	}
}

func TestMigrateLegacyIfEmpty(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	n, err := s.MigrateLegacyIfEmpty(ctx, recipe.SeedLegacy)
	if err != nil {
		t.Fatalf("MigrateLegacyIfEmpty() error = %v", err)
	}
	if n != len(recipe.SeedLegacy) {
		t.Errorf("migrated = %d, want %d", n, len(recipe.SeedLegacy))
	}

	// A populated store is never reseeded.
	n, err = s.MigrateLegacyIfEmpty(ctx, recipe.SeedLegacy)
	if err != nil {
		t.Fatalf("second MigrateLegacyIfEmpty() error = %v", err)
	}
	if n != 0 {
		t.Errorf("second migration = %d, want 0", n)
	}
	if got := len(s.GetAll(ctx)); got != len(recipe.SeedLegacy) {
		t.Errorf("len(GetAll()) = %d, want %d", got, len(recipe.SeedLegacy))
	}
}

func TestIndex_TracksCollection(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	r := testRecipe("recipe_a", "Indexed")
	if err := s.Save(ctx, r); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	index := s.Index(ctx)
	if len(index) != 1 {
		t.Fatalf("len(Index()) = %d, want 1", len(index))
	}
	entry := index[0]
	if entry.ID != "recipe_a" || entry.Title != "Indexed" {
		t.Errorf("entry = %+v, want recipe_a/Indexed", entry)
	}
	if len(entry.Ingredients) != 1 || entry.Ingredients[0] != "rice" {
		t.Errorf("entry.Ingredients = %v, want [rice]", entry.Ingredients)
	}

	if err := s.Delete(ctx, "recipe_a"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if got := len(s.Index(ctx)); got != 0 {
		t.Errorf("len(Index()) after delete = %d, want 0", got)
	}
}

func TestRebuildIndex(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t)

	if err := s.Save(ctx, testRecipe("recipe_a", "A")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// Corrupt the index; the primary store must be enough to rebuild it.
	if err := kv.Set(ctx, "budget-bites-recipe-index", []byte("garbage")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got := len(s.Index(ctx)); got != 0 {
		t.Fatalf("corrupt index length = %d, want 0", got)
	}

	if err := s.RebuildIndex(ctx); err != nil {
		t.Fatalf("RebuildIndex() error = %v", err)
	}
	index := s.Index(ctx)
	if len(index) != 1 || index[0].ID != "recipe_a" {
		t.Errorf("rebuilt index = %v, want one entry for recipe_a", index)
	}
}
