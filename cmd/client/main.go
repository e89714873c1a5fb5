package main

import (
	"context"
	"fmt"

	"github.com/juju/clock"

	"github.com/prembandhan/matchclient/internal/adapter"
	"github.com/prembandhan/matchclient/internal/cache"
	"github.com/prembandhan/matchclient/internal/client"
	"github.com/prembandhan/matchclient/internal/config"
	"github.com/prembandhan/matchclient/internal/logger"
	"github.com/prembandhan/matchclient/internal/service"
	"github.com/prembandhan/matchclient/internal/session"
	"github.com/prembandhan/matchclient/internal/store"
	"github.com/prembandhan/matchclient/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("matchclient")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	sess, err := session.NewFileSession(cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("restore session")
	}

	source, err := adapter.NewHTTPProfileSource(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create profile source")
	}

	db, err := store.NewConnectSQLite(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("open favorites database")
	}
	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("migrate favorites database")
	}
	storages := store.NewStorages(db, log)

	resultCache, err := cache.NewFileCache(cfg.Cache, clock.WallClock, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create result cache")
	}

	services := service.NewServices(source, sess, resultCache, storages, log)

	ui, err := tui.New(services, sess, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, source, sess, ui, cfg, log)
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
