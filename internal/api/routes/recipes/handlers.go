// Package recipes contains handlers for the recipes endpoint.
package recipes

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	apiError "github.com/budget-bites/budgetbites/internal/api/error"
	"github.com/budget-bites/budgetbites/internal/api/requestid"
	"github.com/budget-bites/budgetbites/internal/env"
	bbJson "github.com/budget-bites/budgetbites/internal/json"
	"github.com/budget-bites/budgetbites/internal/recipe"
	"github.com/budget-bites/budgetbites/internal/store"
)

const maxBodySize = 20 << 20 // ~ 20 MB, import batches carry inline data

// HandleListRecipes returns the catalog filtered by the query parameters.
func HandleListRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	query, err := parseListQuery(r.URL.Query())
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to parse list query", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "bad request", requestID)
		return
	}

	matched := recipe.Match(env.Store.GetAll(ctx), query.Query, query.filter(), query.Category)
	writeJSON(w, env, ctx, requestID, ListRecipesResponse{Recipes: matched})
}

// HandleListLegacyRecipes returns the filtered catalog in the legacy shape.
func HandleListLegacyRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	query, err := parseListQuery(r.URL.Query())
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to parse list query", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "bad request", requestID)
		return
	}

	matched := recipe.Match(env.Store.GetAll(ctx), query.Query, query.filter(), query.Category)
	legacy := make([]recipe.Legacy, 0, len(matched))
	for _, enhanced := range matched {
		l, err := recipe.ToLegacy(enhanced)
		if err != nil {
			env.Logger.ErrorContext(ctx, "failed to convert recipe",
				slog.String("recipe-id", enhanced.ID), slog.Any("error", err))
			_ = apiError.EncodeInternalError(w, requestID)
			return
		}
		legacy = append(legacy, l)
	}
	writeJSON(w, env, ctx, requestID, ListLegacyRecipesResponse{Recipes: legacy})
}

// HandleCreateRecipe creates a recipe from a submitted template. Validation
// failures report every violated rule at once.
func HandleCreateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	var template recipe.Template
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := bbJson.Decode(&template, json.NewDecoder(r.Body)); err != nil {
		env.Logger.ErrorContext(ctx, "failed to decode template", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "bad request", requestID)
		return
	}

	if verr := recipe.ValidateTemplate(template); verr != nil {
		env.Logger.DebugContext(ctx, "template failed validation", slog.Any("error", verr))
		_ = apiError.EncodeValidationError(w, verr.Messages, requestID)
		return
	}

	created := recipe.FromTemplate(template)
	if err := env.Store.Save(ctx, created); err != nil {
		encodeStorageError(w, env, ctx, requestID, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, env, ctx, requestID, CreateRecipeResponse{RecipeID: created.ID})
}

// HandleUploadRecipe creates a recipe from an upload: a template plus
// optional extra instruction levels, equipment variations, and media.
func HandleUploadRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	var upload recipe.Upload
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := bbJson.Decode(&upload, json.NewDecoder(r.Body)); err != nil {
		env.Logger.ErrorContext(ctx, "failed to decode upload", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "bad request", requestID)
		return
	}

	if verr := recipe.ValidateTemplate(upload.Recipe); verr != nil {
		env.Logger.DebugContext(ctx, "upload failed validation", slog.Any("error", verr))
		_ = apiError.EncodeValidationError(w, verr.Messages, requestID)
		return
	}

	created := recipe.FromUpload(upload)
	if err := env.Store.Save(ctx, created); err != nil {
		encodeStorageError(w, env, ctx, requestID, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, env, ctx, requestID, CreateRecipeResponse{RecipeID: created.ID})
}

// HandleGetRecipe returns a single recipe by id.
func HandleGetRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	id := chi.URLParam(r, "recipeID")
	found, ok := env.Store.GetByID(ctx, id)
	if !ok {
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, "recipe not found", requestID)
		return
	}
	writeJSON(w, env, ctx, requestID, found)
}

// HandleUpdateRecipe applies a partial update. Unlike delete, updating a
// nonexistent recipe is an error.
func HandleUpdateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	var patch recipe.Patch
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := bbJson.Decode(&patch, json.NewDecoder(r.Body)); err != nil {
		env.Logger.ErrorContext(ctx, "failed to decode patch", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "bad request", requestID)
		return
	}

	id := chi.URLParam(r, "recipeID")
	updated, err := env.Store.Update(ctx, id, patch)
	if errors.Is(err, store.ErrNotFound) {
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, "recipe not found", requestID)
		return
	} else if err != nil {
		encodeStorageError(w, env, ctx, requestID, err)
		return
	}
	writeJSON(w, env, ctx, requestID, updated)
}

// HandleDeleteRecipe removes a recipe. Deleting an absent id succeeds.
func HandleDeleteRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	if err := env.Store.Delete(ctx, chi.URLParam(r, "recipeID")); err != nil {
		encodeStorageError(w, env, ctx, requestID, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleExportRecipes downloads the full catalog as a JSON array. The
// filename embeds the current date.
func HandleExportRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	exported := env.Store.ExportAll(ctx)
	data, err := json.MarshalIndent(exported, "", "  ")
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to marshal export", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	filename := fmt.Sprintf("budget-bites-recipes-%s.json", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := w.Write(data); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleImportRecipes upserts a batch of enhanced recipes.
func HandleImportRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	var batch []recipe.Recipe
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := bbJson.Decode(&batch, json.NewDecoder(r.Body)); err != nil {
		env.Logger.ErrorContext(ctx, "failed to decode import batch", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "bad request", requestID)
		return
	}

	var messages []string
	for _, imported := range batch {
		if verr := recipe.ValidateRecipe(imported); verr != nil {
			for _, msg := range verr.Messages {
				messages = append(messages, fmt.Sprintf("recipe %q: %s", imported.ID, msg))
			}
		}
	}
	if len(messages) > 0 {
		env.Logger.DebugContext(ctx, "import batch failed validation")
		_ = apiError.EncodeValidationError(w, messages, requestID)
		return
	}

	if err := env.Store.ImportMany(ctx, batch); err != nil {
		encodeStorageError(w, env, ctx, requestID, err)
		return
	}
	writeJSON(w, env, ctx, requestID, ImportRecipesResponse{Imported: len(batch)})
}

// HandleRecipeStats summarizes the catalog.
func HandleRecipeStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	writeJSON(w, env, ctx, requestID, recipe.ComputeStats(env.Store.GetAll(ctx)))
}

// HandleListCategories returns the category vocabulary.
func HandleListCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	writeJSON(w, env, ctx, requestID, ListCategoriesResponse{Categories: recipe.Categories})
}
