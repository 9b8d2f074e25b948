package main

import (
	"context"
	"fmt"

	"recipekeep/internal/blob"
	"recipekeep/internal/config"
	handler "recipekeep/internal/handler/http"
	"recipekeep/internal/logger"
	"recipekeep/internal/server"
	"recipekeep/internal/service"
	"recipekeep/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("recipe-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	repositories, err := store.NewRepositories(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating repositories")
	}

	blobStorage, err := blob.NewStorage(ctx, cfg.Storage.Blob, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating blob storage")
	}

	services := service.NewServices(repositories, blobStorage, *cfg, log)
	handlers := handler.NewHandler(services, log)

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
