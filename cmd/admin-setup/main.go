package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-forms-auth/internal/config"
	"github.com/MKhiriev/go-forms-auth/internal/logger"
	"github.com/MKhiriev/go-forms-auth/internal/service"
	"github.com/MKhiriev/go-forms-auth/internal/setup"
	"github.com/MKhiriev/go-forms-auth/internal/store"
	"github.com/MKhiriev/go-forms-auth/internal/utils"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, err := setup.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "usage: admin-setup [config-path] [--password P] [--no-pause]")
		return setup.ExitError
	}

	// stdout belongs to the console dialog
	log := logger.NewLoggerTo("forms-auth-admin-setup", os.Stderr, zerolog.InfoLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	code := setup.Report(os.Stdout, execute(ctx, opts, log))

	if !opts.NoPause {
		setup.Pause(os.Stdin, os.Stdout)
	}
	return code
}

func execute(ctx context.Context, opts setup.Options, log *logger.Logger) error {
	cfg, err := config.GetAdminSetupConfig(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	zerolog.SetGlobalLevel(logger.ParseLevel(cfg.App.LogLevel))

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("error connecting database: %w", err)
	}
	defer db.Close()

	storages := store.NewStorages(db, utils.NewUUIDGenerator(), log)

	// a shared claim cache must see the claims granted by the bootstrap
	var infra service.Infrastructure
	redisClient, err := store.NewRedisClient(ctx, cfg.Storage.Redis, log)
	if err != nil {
		return fmt.Errorf("error connecting redis: %w", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
		infra.Redis = redisClient
	}

	services, err := service.NewServices(storages, cfg, infra, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	prompt := setup.NewPasswordPrompt(os.Stdin, os.Stdout, cfg.Auth.AdminUserName)

	return setup.New(db, services.AdminBootstrap, prompt, log).Run(ctx, opts.Password)
}
