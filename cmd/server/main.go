package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-forms-auth/internal/config"
	"github.com/MKhiriev/go-forms-auth/internal/handler"
	"github.com/MKhiriev/go-forms-auth/internal/logger"
	"github.com/MKhiriev/go-forms-auth/internal/metrics"
	"github.com/MKhiriev/go-forms-auth/internal/server"
	"github.com/MKhiriev/go-forms-auth/internal/service"
	"github.com/MKhiriev/go-forms-auth/internal/store"
	"github.com/MKhiriev/go-forms-auth/internal/utils"
	"github.com/MKhiriev/go-forms-auth/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("forms-auth-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	zerolog.SetGlobalLevel(logger.ParseLevel(cfg.App.LogLevel))

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	infra := service.Infrastructure{Metrics: metrics.New(), Build: buildInfo}

	redisClient, err := store.NewRedisClient(ctx, cfg.Storage.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting redis")
	}
	if redisClient != nil {
		defer redisClient.Close()
		infra.Redis = redisClient
	}

	storages := store.NewStorages(db, utils.NewUUIDGenerator(), log)

	services, err := service.NewServices(storages, cfg, infra, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, storages.Transactor, infra.Metrics, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
