// Package store persists the recipe catalog and its derived search index.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/goccy/go-json"

	"github.com/budget-bites/budgetbites/internal/localstore"
	"github.com/budget-bites/budgetbites/internal/recipe"
)

// Storage keys. Fixed names, one JSON document per key.
const (
	recipesKey = "budget-bites-enhanced-recipes"
	indexKey   = "budget-bites-recipe-index"
)

// ErrNotFound is returned by Update when the target recipe does not exist.
// Reads and deletes treat absence as routine and never return it.
var ErrNotFound = errors.New("recipe not found")

// IndexEntry is a denormalized search-index record. The index is a read
// accelerator only and is fully reconstructible from the primary store.
type IndexEntry struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	Ingredients []string  `json:"ingredients"`
	LastUpdated time.Time `json:"lastUpdated"`
}

type Store struct {
	kv  *localstore.Store
	log *slog.Logger
}

func New(kv *localstore.Store, logger *slog.Logger) *Store {
	return &Store{
		kv:  kv,
		log: logger,
	}
}

// GetAll returns every recipe in insertion order. A missing or corrupt
// collection degrades to an empty slice, never an error.
func (s *Store) GetAll(ctx context.Context) []recipe.Recipe {
	data, ok, err := s.kv.Get(ctx, recipesKey)
	if err != nil {
		s.log.WarnContext(ctx, "failed to read recipe collection", slog.Any("error", err))
		return []recipe.Recipe{}
	}
	if !ok {
		return []recipe.Recipe{}
	}

	var recipes []recipe.Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		s.log.WarnContext(ctx, "corrupt recipe collection, treating as empty", slog.Any("error", err))
		return []recipe.Recipe{}
	}
	return recipes
}

// GetByID returns the recipe with the given id. Absence is routine, not an
// error.
func (s *Store) GetByID(ctx context.Context, id string) (recipe.Recipe, bool) {
	for _, r := range s.GetAll(ctx) {
		if r.ID == id {
			return r, true
		}
	}
	return recipe.Recipe{}, false
}

// Save upserts a recipe by id. The caller must have assigned the id already.
// Updating sets updatedAt to now; createdAt is never touched.
func (s *Store) Save(ctx context.Context, r recipe.Recipe) error {
	if r.ID == "" {
		return errors.New("recipe id must be assigned before saving")
	}

	recipes := s.GetAll(ctx)
	recipes = upsert(recipes, r)
	return s.persist(ctx, recipes)
}

// Update applies a partial update to an existing recipe. Updating a
// nonexistent recipe is a caller logic error and returns ErrNotFound.
func (s *Store) Update(ctx context.Context, id string, patch recipe.Patch) (recipe.Recipe, error) {
	recipes := s.GetAll(ctx)
	for i, r := range recipes {
		if r.ID != id {
			continue
		}
		updated := patch.Apply(r)
		updated.ID = id
		recipes[i] = updated
		if err := s.persist(ctx, recipes); err != nil {
			return recipe.Recipe{}, err
		}
		return updated, nil
	}
	return recipe.Recipe{}, fmt.Errorf("updating recipe %q: %w", id, ErrNotFound)
}

// Delete removes a recipe and its index entry. Deleting an absent id is a
// no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	recipes := s.GetAll(ctx)
	filtered := recipes[:0:0]
	for _, r := range recipes {
		if r.ID != id {
			filtered = append(filtered, r)
		}
	}
	if len(filtered) == len(recipes) {
		return nil
	}
	return s.persist(ctx, filtered)
}

// ImportMany upserts a batch of recipes with a single write. Existing ids
// are replaced with updatedAt set to now; new ids are appended in input
// order.
func (s *Store) ImportMany(ctx context.Context, batch []recipe.Recipe) error {
	recipes := s.GetAll(ctx)
	now := time.Now().UTC()
	for _, r := range batch {
		r.UpdatedAt = now
		recipes = upsert(recipes, r)
	}
	return s.persist(ctx, recipes)
}

// ExportAll returns the full catalog, identical to GetAll.
func (s *Store) ExportAll(ctx context.Context) []recipe.Recipe {
	return s.GetAll(ctx)
}

// Search returns recipes whose searchable text contains the query,
// case-insensitively.
func (s *Store) Search(ctx context.Context, query string) []recipe.Recipe {
	return recipe.Match(s.GetAll(ctx), query, recipe.Filter{}, "")
}

// MigrateLegacyIfEmpty seeds the store from a bundled legacy catalog when no
// enhanced recipes exist yet. Returns the number of migrated recipes.
func (s *Store) MigrateLegacyIfEmpty(ctx context.Context, legacy []recipe.Legacy) (int, error) {
	if len(s.GetAll(ctx)) > 0 {
		return 0, nil
	}

	migrated := recipe.MigrateLegacy(legacy)
	if err := s.ImportMany(ctx, migrated); err != nil {
		return 0, fmt.Errorf("migrating legacy recipes: %w", err)
	}
	return len(migrated), nil
}

// Index returns the persisted search index.
func (s *Store) Index(ctx context.Context) []IndexEntry {
	data, ok, err := s.kv.Get(ctx, indexKey)
	if err != nil || !ok {
		return []IndexEntry{}
	}

	var index []IndexEntry
	if err := json.Unmarshal(data, &index); err != nil {
		s.log.WarnContext(ctx, "corrupt search index, treating as empty", slog.Any("error", err))
		return []IndexEntry{}
	}
	return index
}

// RebuildIndex reconstructs the search index from the primary store.
func (s *Store) RebuildIndex(ctx context.Context) error {
	return s.writeIndex(ctx, s.GetAll(ctx))
}

// persist writes the collection and refreshes the derived index. The
// collection write happens first so a failed index write never strands the
// primary data; the index can always be rebuilt.
func (s *Store) persist(ctx context.Context, recipes []recipe.Recipe) error {
	data, err := json.Marshal(recipes)
	if err != nil {
		return fmt.Errorf("encoding recipe collection: %w", err)
	}
	if err := s.kv.Set(ctx, recipesKey, data); err != nil {
		return fmt.Errorf("persisting recipe collection: %w", err)
	}
	return s.writeIndex(ctx, recipes)
}

func (s *Store) writeIndex(ctx context.Context, recipes []recipe.Recipe) error {
	index := make([]IndexEntry, 0, len(recipes))
	for _, r := range recipes {
		names := make([]string, 0, len(r.Ingredients))
		for _, ing := range r.Ingredients {
			names = append(names, ing.Name)
		}
		index = append(index, IndexEntry{
			ID:          r.ID,
			Title:       r.Title,
			Category:    r.PrimaryCategory,
			Tags:        r.SecondaryTags,
			Ingredients: names,
			LastUpdated: r.UpdatedAt,
		})
	}

	data, err := json.Marshal(index)
	if err != nil {
		return fmt.Errorf("encoding search index: %w", err)
	}
	if err := s.kv.Set(ctx, indexKey, data); err != nil {
		return fmt.Errorf("persisting search index: %w", err)
	}
	return nil
}

func upsert(recipes []recipe.Recipe, r recipe.Recipe) []recipe.Recipe {
	for i, existing := range recipes {
		if existing.ID == r.ID {
			r.UpdatedAt = time.Now().UTC()
			if r.CreatedAt.IsZero() {
				r.CreatedAt = existing.CreatedAt
			}
			recipes[i] = r
			return recipes
		}
	}
	return append(recipes, r)
}
