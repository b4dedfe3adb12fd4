package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/Enryuk3/kash-app/docs"
	"github.com/Enryuk3/kash-app/infra/initializer"
	"github.com/Enryuk3/kash-app/pkg/app"
	"github.com/Enryuk3/kash-app/pkg/config"
	"github.com/Enryuk3/kash-app/webapi"
	log "github.com/charmbracelet/log"
)

// @title kash API
// @version 1.0.0
// @description Personal finance API: categories, savings goals and transactions
// @contact.name API Support
// @license.name MIT
// @host localhost:3000
// @BasePath /
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description "Enter your Bearer token in the format: `Bearer {token}`"
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	logger := deps.Logger

	fiberApp := webapi.SetupApp(app.New(deps, cfg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server",
			"env", cfg.Env,
			"address", cfg.Server.Addr(),
			"scheme", cfg.Server.Scheme,
		)
		errCh <- fiberApp.Listen(cfg.Server.Addr())
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	if err := fiberApp.ShutdownWithTimeout(10 * time.Second); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if closer, ok := deps.LimiterStorage.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil && !errors.Is(err, context.Canceled) {
			logger.Warn("Closing limiter storage failed", "error", err)
		}
	}
	slog.Info("Server stopped")
	return nil
}
