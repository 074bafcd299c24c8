// Package main - Entry point for the pouch cost estimation server
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pouch-cost/api"
	"pouch-cost/internal/config"
	"pouch-cost/internal/logging"
)

const version = "1.0.0"

func main() {
	addr := flag.String("addr", "", "Server address (overrides config)")
	cfgFile := flag.String("config", "", "Config file (.json, .toml or .yaml)")
	flag.Parse()

	// Money goes out as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true

	cfg := config.Default()
	if *cfgFile != "" {
		loaded, err := config.Load(*cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	defer logging.Sync()

	// Create API server
	apiServer := api.NewServer(cfg, version, logging.Logger)

	// Create main mux
	mux := http.NewServeMux()

	// API routes
	mux.Handle("/api/", http.StripPrefix("/api", apiServer))

	logging.Info("pouch cost estimation server",
		zap.String("version", version),
		zap.String("api", "http://localhost"+cfg.Server.Addr+"/api"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := api.Serve(ctx, cfg.Server, mux, logging.Logger); err != nil {
		logging.Error("server stopped", zap.Error(err))
		logging.Sync()
		os.Exit(1)
	}
}
