// Package images contains handlers for the image cache endpoints.
package images

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	apiError "github.com/budget-bites/budgetbites/internal/api/error"
	"github.com/budget-bites/budgetbites/internal/api/requestid"
	"github.com/budget-bites/budgetbites/internal/env"
	bbJson "github.com/budget-bites/budgetbites/internal/json"
)

type CacheImageRequest struct {
	URL string `json:"url"`
}

type CacheImageResponse struct {
	// DataURL is null when the image could not be cached right now.
	DataURL *string `json:"dataUrl"`
	Cached  bool    `json:"cached"`
}

type PrefetchRequest struct {
	URLs []string `json:"urls"`
}

type PrefetchResponse struct {
	Cached int `json:"cached"`
	Failed int `json:"failed"`
}

// HandleCacheImage fetches and inlines one image. A fetch failure is
// routine and reported as a null payload, not an error status.
func HandleCacheImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	var request CacheImageRequest
	if err := bbJson.Decode(&request, json.NewDecoder(r.Body)); err != nil {
		env.Logger.ErrorContext(ctx, "failed to decode request", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "bad request", requestID)
		return
	}
	if request.URL == "" {
		_ = apiError.EncodeError(w, apiError.BadRequest, "url is required", requestID)
		return
	}

	response := CacheImageResponse{}
	if dataURL, ok := env.ImageCache.Cache(ctx, request.URL); ok {
		response.DataURL = &dataURL
		response.Cached = true
	}
	writeJSON(w, env, ctx, requestID, response)
}

// HandlePrefetch bulk-caches recipe images, one URL at a time. Prefetching
// is an online-only operation gated on the connectivity monitor.
func HandlePrefetch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	if !env.Connectivity.Online() {
		env.Logger.DebugContext(ctx, "prefetch rejected while offline")
		_ = apiError.EncodeError(w, apiError.Offline, "prefetch requires an internet connection", requestID)
		return
	}

	var request PrefetchRequest
	if err := bbJson.Decode(&request, json.NewDecoder(r.Body)); err != nil {
		env.Logger.ErrorContext(ctx, "failed to decode request", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "bad request", requestID)
		return
	}

	cached, failed := env.ImageCache.Prefetch(ctx, request.URLs, func(n, total int) {
		env.Logger.InfoContext(ctx, "caching image",
			slog.Int("n", n), slog.Int("total", total))
	})
	writeJSON(w, env, ctx, requestID, PrefetchResponse{Cached: cached, Failed: failed})
}

// HandleStats reports cache usage.
func HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	writeJSON(w, env, ctx, requestID, env.ImageCache.Stats(ctx))
}

// HandleClear drops every cached image.
func HandleClear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)

	env.ImageCache.Clear(ctx)
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, e *env.Env, ctx context.Context, requestID string, body any) {
	resp, err := json.Marshal(body)
	if err != nil {
		e.Logger.ErrorContext(ctx, "failed to marshal response", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(resp); err != nil {
		e.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}
