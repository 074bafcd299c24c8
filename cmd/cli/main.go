// Package main is the entry point for pouch-cost CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"

	"pouch-cost/cmd/cli/cmd"
	"pouch-cost/internal/logging"
)

func main() {
	// Money goes out as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cmd.Execute(ctx)
	stop()
	logging.Sync()
	if err != nil {
		os.Exit(1)
	}
}
