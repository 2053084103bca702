package main

import (
	"fmt"

	"github.com/cardstream/decksync/internal/adapter"
	"github.com/cardstream/decksync/internal/client"
	"github.com/cardstream/decksync/internal/config"
	"github.com/cardstream/decksync/internal/logger"
	"github.com/cardstream/decksync/internal/service"
	"github.com/cardstream/decksync/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("decksync")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	tokenStore := client.NewFileTokenStore(cfg.Storage.TokenPath)
	creds := adapter.NewRefreshingCredentials(cfg.Adapter.ServerURL, cfg.Adapter.RequestTimeout, tokenStore)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, creds, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewServices(serverAdapter, storages, cfg.Sync, cfg.Storage.MediaDir, log)

	app, err := client.NewApp(services, cfg.Sync, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
