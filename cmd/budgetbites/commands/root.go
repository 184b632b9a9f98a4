// Package commands implements the budgetbites CLI commands.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// New builds the root command with every subcommand attached.
func New(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "budgetbites",
		Short:         "Budget-friendly recipe catalog with offline support",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(logger),
		newImportCmd(logger),
		newExportCmd(logger),
		newVersionCmd(),
	)
	return root
}
