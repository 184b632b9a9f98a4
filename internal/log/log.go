// Package log provides a context-aware logging utility using slog.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
)

type ctxAttrsKey struct{}

var ctxAttrs ctxAttrsKey

// ContextHandler copies attributes stored in the context onto every record
// before handing it to the underlying handler.
type ContextHandler struct {
	slog.Handler
}

func (h ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(ctxAttrs).([]slog.Attr); ok {
		for _, a := range attrs {
			r.AddAttrs(a)
		}
	}
	return h.Handler.Handle(ctx, r)
}

// AppendCtx adds an slog attribute to the provided context so that it will be
// included in any record created with such context.
func AppendCtx(parent context.Context, attr slog.Attr) context.Context {
	if parent == nil {
		parent = context.Background()
	}

	if v, ok := parent.Value(ctxAttrs).([]slog.Attr); ok {
		v = append(v, attr)
		return context.WithValue(parent, ctxAttrs, v)
	}
	return context.WithValue(parent, ctxAttrs, []slog.Attr{attr})
}

type nullWriter struct {
	io.Writer
}

func (nullWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}

func New(options *slog.HandlerOptions) *slog.Logger {
	if options == nil {
		options = &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}
	}

	return slog.New(&ContextHandler{
		Handler: slog.NewJSONHandler(os.Stderr, options),
	})
}

// Null returns a logger that discards everything. Used in tests and as the
// fallback when no logger is supplied.
func Null() *slog.Logger {
	return slog.New(&ContextHandler{
		Handler: slog.NewJSONHandler(nullWriter{}, &slog.HandlerOptions{}),
	})
}
