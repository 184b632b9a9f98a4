package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/budget-bites/budgetbites/internal/config"
	"github.com/budget-bites/budgetbites/internal/recipe"
	"github.com/budget-bites/budgetbites/internal/setup"
)

func newImportCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a JSON recipe catalog into the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading import file: %w", err)
			}

			var batch []recipe.Recipe
			if err := json.Unmarshal(data, &batch); err != nil {
				return fmt.Errorf("parsing import file: %w", err)
			}
			for _, imported := range batch {
				if verr := recipe.ValidateRecipe(imported); verr != nil {
					return fmt.Errorf("recipe %q: %w", imported.ID, verr)
				}
			}

			conf, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			environment, cleanup, err := setup.Environment(logger, conf)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := environment.Store.ImportMany(ctx, batch); err != nil {
				return fmt.Errorf("importing recipes: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %d recipes\n", len(batch))
			return nil
		},
	}
}
