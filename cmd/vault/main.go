package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pass-vault/internal/client"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
	"github.com/MKhiriev/go-pass-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		bootstrap := logger.NewLogger("go-pass-vault")
		bootstrap.Fatal().Err(err).Msg("error getting configs")
	}

	// The terminal belongs to the TUI from here on.
	log := logger.NewFileLogger("go-pass-vault", cfg.Log.FilePath, cfg.Log.Level)
	log.Debug().
		Str("dsn", cfg.Storage.DB.DSN).
		Int("max_sign_in_attempts", cfg.App.MaxSignInAttempts).
		Bool("clipboard_disabled", cfg.App.DisableClipboard).
		Dur("clipboard_ttl", cfg.App.ClipboardTTL).
		Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, buildInfo, log); err != nil {
		stop()
		log.Fatal().Err(err).Msg("vault run error")
	}
}

func run(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) error {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create storages: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	services := service.NewServices(storages, log)

	ui, err := tui.New(services.VaultService, cfg.App, buildInfo, log)
	if err != nil {
		return fmt.Errorf("create ui: %w", err)
	}

	app, err := client.NewApp(services.VaultService, ui, log)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}

	return app.Run(ctx)
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version())
	fmt.Printf("Build date: %s\n", info.Date())
	fmt.Printf("Build commit: %s\n", info.Commit())
}
