// Package status contains handlers for the connectivity status endpoint.
package status

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	apiError "github.com/budget-bites/budgetbites/internal/api/error"
	"github.com/budget-bites/budgetbites/internal/api/requestid"
	"github.com/budget-bites/budgetbites/internal/env"
)

// HandleStatus reports the connectivity monitor's current state.
func HandleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	resp, err := json.Marshal(env.Connectivity.State())
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to marshal response", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(resp); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}
