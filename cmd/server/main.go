package main

import (
	"context"
	"fmt"

	"github.com/itsarev/bitquest-server/internal/config"
	"github.com/itsarev/bitquest-server/internal/crypto"
	"github.com/itsarev/bitquest-server/internal/handler"
	"github.com/itsarev/bitquest-server/internal/logger"
	"github.com/itsarev/bitquest-server/internal/server"
	"github.com/itsarev/bitquest-server/internal/service"
	"github.com/itsarev/bitquest-server/internal/session"
	"github.com/itsarev/bitquest-server/internal/store"
	"github.com/itsarev/bitquest-server/internal/workers"
	"github.com/joho/godotenv"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// a local .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	log := logger.NewLogger("bitquest-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer func() { _ = db.Close() }()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	hasher := crypto.NewBcryptHasher(cfg.App.BcryptCost)
	sessions := session.NewManager(cfg.App, log)
	services := service.NewServices(storages, hasher, log)

	backgroundWorkers := workers.NewWorkers(
		workers.NewSessionSweeper(sessions, cfg.App.SessionTTL, log),
	)
	backgroundWorkers.Run()

	handlers, err := handler.NewHandlers(services, sessions, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
