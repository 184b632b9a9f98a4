// Package requestid carries the per-request correlation id through the
// request context. The same id appears in the structured logs (as log_id)
// and in error payloads (as error_id), tying the two together.
package requestid

import "context"

type requestIDKeyType struct{}

var requestIDKey requestIDKeyType

// InjectRequestID stores requestID in the context.
func InjectRequestID(ctx context.Context, requestID uint64) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// ExtractRequestID returns the id stored by InjectRequestID, or 0 when the
// context carries none.
func ExtractRequestID(ctx context.Context) uint64 {
	if v, ok := ctx.Value(requestIDKey).(uint64); ok {
		return v
	}
	return 0
}
