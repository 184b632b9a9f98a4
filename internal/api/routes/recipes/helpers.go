package recipes

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"

	apiError "github.com/budget-bites/budgetbites/internal/api/error"
	"github.com/budget-bites/budgetbites/internal/env"
	"github.com/budget-bites/budgetbites/internal/localstore"
)

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

// encodeStorageError distinguishes quota rejections from other persistence
// failures so data loss is never silent.
func encodeStorageError(w http.ResponseWriter, e *env.Env, ctx context.Context, requestID string, err error) {
	e.Logger.ErrorContext(ctx, "storage operation failed", slog.Any("error", err))
	if errors.Is(err, localstore.ErrQuotaExceeded) {
		_ = apiError.EncodeError(w, apiError.StorageQuotaExceeded, "storage quota exceeded", requestID)
		return
	}
	_ = apiError.EncodeError(w, apiError.StorageFailure, "failed to persist changes, please retry", requestID)
}
