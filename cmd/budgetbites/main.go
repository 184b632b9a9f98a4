package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/budget-bites/budgetbites/cmd/budgetbites/commands"
	"github.com/budget-bites/budgetbites/internal/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := log.New(nil)

	cli := commands.New(logger)
	if err := cli.ExecuteContext(ctx); err != nil {
		logger.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}
