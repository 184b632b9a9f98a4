// Package env provides a structure for managing application-wide dependencies.
package env

import (
	"context"
	"log/slog"

	"github.com/budget-bites/budgetbites/internal/config"
	"github.com/budget-bites/budgetbites/internal/connectivity"
	"github.com/budget-bites/budgetbites/internal/imagecache"
	"github.com/budget-bites/budgetbites/internal/log"
	"github.com/budget-bites/budgetbites/internal/store"
)

type Env struct {
	Logger       *slog.Logger
	Store        *store.Store
	ImageCache   *imagecache.Cache
	Connectivity *connectivity.Monitor
	Config       *config.Config
}

type envKeyType struct{}

var envKey envKeyType

// WithCtx injects the environment into a context.
func WithCtx(ctx context.Context, e *Env) context.Context {
	return context.WithValue(ctx, envKey, e)
}

// EnvFromCtx extracts the environment from a context. A context without one
// yields a null environment so handlers never dereference nil.
func EnvFromCtx(ctx context.Context) *Env {
	if e, ok := ctx.Value(envKey).(*Env); ok {
		return e
	}
	return Null()
}

func Null() *Env {
	return &Env{
		Logger: log.Null(),
	}
}
