package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/budget-bites/budgetbites/internal/api"
	"github.com/budget-bites/budgetbites/internal/config"
	"github.com/budget-bites/budgetbites/internal/setup"
)

func newServeCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			conf, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			environment, cleanup, err := setup.Environment(logger, conf)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := setup.Seed(ctx, environment); err != nil {
				return err
			}

			go environment.Connectivity.Run(ctx)

			return api.Start(ctx, environment)
		},
	}
}
