package commands

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/budget-bites/budgetbites/internal/config"
	"github.com/budget-bites/budgetbites/internal/setup"
)

const exportFilePerms = 0o644

func newExportCmd(logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the recipe catalog to a JSON file",
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

			output, _ := cmd.Flags().GetString("output")
			if output == "" {
				output = fmt.Sprintf("budget-bites-recipes-%s.json", time.Now().Format("2006-01-02"))
			}

			exported := environment.Store.ExportAll(ctx)
			data, err := json.MarshalIndent(exported, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding export: %w", err)
			}
			if err := os.WriteFile(output, data, exportFilePerms); err != nil {
				return fmt.Errorf("writing export file: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %d recipes to %s\n", len(exported), output)
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "", "Output file (default budget-bites-recipes-<date>.json)")
	return cmd
}
