// Package api sets up and starts the API server with routing and middleware.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/budget-bites/budgetbites/internal/api/middleware"
	"github.com/budget-bites/budgetbites/internal/api/routes/images"
	"github.com/budget-bites/budgetbites/internal/api/routes/ping"
	"github.com/budget-bites/budgetbites/internal/api/routes/recipes"
	"github.com/budget-bites/budgetbites/internal/api/routes/status"
	"github.com/budget-bites/budgetbites/internal/env"
)

func addRoutes(router *chi.Mux) {
	router.Route("/api", func(r chi.Router) {
		r.Get("/ping", ping.HandlePing)
		r.Get("/status", status.HandleStatus)
		r.Get("/categories", recipes.HandleListCategories)

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", recipes.HandleListRecipes)
			r.Post("/", recipes.HandleCreateRecipe)
			r.Post("/upload", recipes.HandleUploadRecipe)
			r.Get("/legacy", recipes.HandleListLegacyRecipes)
			r.Get("/export", recipes.HandleExportRecipes)
			r.Post("/import", recipes.HandleImportRecipes)
			r.Get("/stats", recipes.HandleRecipeStats)

			r.Get("/{recipeID}", recipes.HandleGetRecipe)
			r.Patch("/{recipeID}", recipes.HandleUpdateRecipe)
			r.Delete("/{recipeID}", recipes.HandleDeleteRecipe)
		})

		r.Route("/images", func(r chi.Router) {
			r.Post("/cache", images.HandleCacheImage)
			r.Post("/prefetch", images.HandlePrefetch)
			r.Get("/stats", images.HandleStats)
			r.Delete("/", images.HandleClear)
		})
	})
}

// Router builds the full API router with middleware applied.
func Router(environment *env.Env) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.AddRequestID)
	router.Use(middleware.LogRequest(environment.Logger))
	router.Use(middleware.InjectEnv(environment))
	router.Use(middleware.AddCors)

	addRoutes(router)
	return router
}

const shutdownTimeout = 10 * time.Second

// Start listens on the configured address and serves the API until ctx is
// cancelled, then drains in-flight requests before returning.
func Start(ctx context.Context, environment *env.Env) error {
	addr := fmt.Sprintf("%s:%d", environment.Config.Server.Host, environment.Config.Server.Port)
	server := &http.Server{Addr: addr, Handler: Router(environment)}

	errc := make(chan error, 1)
	go func() {
		environment.Logger.Info(fmt.Sprintf("Listening at %s", addr))
		errc <- server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		environment.Logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}
