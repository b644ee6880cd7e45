// Package main runs the interactive farm shop session.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/greenacre/farmshop/internal/app"
	"github.com/greenacre/farmshop/internal/config"
	"github.com/greenacre/farmshop/pkg/bootstrap"
	"github.com/greenacre/farmshop/pkg/config/configloader"
)

func main() {
	// Load configuration
	cfg, cfgErr := configloader.Load[*config.Config]("farmshop", config.Defaults())
	if cfgErr != nil {
		log.Fatalf("Error loading configuration: %v", cfgErr)
	}
	log.Printf("Configuration loaded: %v", cfg)

	// Set up structured logging
	logger := bootstrap.NewLogger(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	logger.Info("Farm shop starting...", "inventory_type", cfg.Inventory.Type, "log_level", cfg.Log.Level)

	// Run the interactive loop until the user quits or the process is interrupted
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := app.SetupDependencies(cfg, os.Stdin, os.Stdout, logger)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return deps.ShopFront.Run(gCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Session ended with error", "error", err)
		os.Exit(1)
	}
	logger.Info("Farm shop closed")
}
