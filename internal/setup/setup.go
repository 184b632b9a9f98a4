// Package setup wires the application components together from config.
package setup

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/budget-bites/budgetbites/internal/config"
	"github.com/budget-bites/budgetbites/internal/connectivity"
	"github.com/budget-bites/budgetbites/internal/env"
	"github.com/budget-bites/budgetbites/internal/http"
	"github.com/budget-bites/budgetbites/internal/imagecache"
	"github.com/budget-bites/budgetbites/internal/localstore"
	"github.com/budget-bites/budgetbites/internal/recipe"
	"github.com/budget-bites/budgetbites/internal/store"
)

const storageDirPerms = 0o755

// Storage opens the embedded key-value store, creating its directory if
// needed.
func Storage(conf *config.Config) (*localstore.Store, error) {
	if dir := filepath.Dir(conf.Storage.Path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, storageDirPerms); err != nil {
			return nil, fmt.Errorf("creating storage directory: %w", err)
		}
	}

	var opts []localstore.Option
	if conf.Storage.QuotaBytes > 0 {
		opts = append(opts, localstore.WithQuota(conf.Storage.QuotaBytes))
	}

	kv, err := localstore.Open(conf.Storage.Path, opts...)
	if err != nil {
		return nil, fmt.Errorf("opening local store: %w", err)
	}
	return kv, nil
}

// ImageCache builds the bounded image cache from config.
func ImageCache(kv *localstore.Store, client *http.HTTP, logger *slog.Logger, conf *config.Config) *imagecache.Cache {
	var opts []imagecache.Option
	if conf.ImageCache.MaxSizeBytes > 0 {
		opts = append(opts, imagecache.WithMaxSize(conf.ImageCache.MaxSizeBytes))
	}
	return imagecache.New(kv, client, logger, opts...)
}

// Connectivity builds the connectivity monitor from config.
func Connectivity(client *http.HTTP, logger *slog.Logger, conf *config.Config) *connectivity.Monitor {
	var opts []connectivity.Option
	if conf.Connectivity.ProbeURL != "" {
		opts = append(opts, connectivity.WithProbeURL(conf.Connectivity.ProbeURL))
	}
	if conf.Connectivity.IntervalSeconds > 0 {
		opts = append(opts, connectivity.WithInterval(time.Duration(conf.Connectivity.IntervalSeconds)*time.Second))
	}
	return connectivity.New(client, logger, opts...)
}

// Environment assembles the full dependency container. The returned cleanup
// closes the underlying store.
func Environment(logger *slog.Logger, conf *config.Config) (*env.Env, func(), error) {
	kv, err := Storage(conf)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { _ = kv.Close() }

	client := http.New(http.DefaultConfig())
	e := &env.Env{
		Logger:       logger,
		Store:        store.New(kv, logger),
		ImageCache:   ImageCache(kv, client, logger, conf),
		Connectivity: Connectivity(client, logger, conf),
		Config:       conf,
	}
	return e, cleanup, nil
}

// Seed migrates the bundled legacy catalog into an empty store.
func Seed(ctx context.Context, e *env.Env) error {
	migrated, err := e.Store.MigrateLegacyIfEmpty(ctx, recipe.SeedLegacy)
	if err != nil {
		return fmt.Errorf("seeding recipe catalog: %w", err)
	}
	if migrated > 0 {
		e.Logger.InfoContext(ctx, "migrated legacy recipes to enhanced format",
			slog.Int("count", migrated))
	}
	return nil
}
