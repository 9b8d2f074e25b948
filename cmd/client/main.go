// The client binary is a demo driver for the sync controller: it loads one
// recipe, optionally applies a few edits from flags, and can stay attached
// with a periodic background refresh.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recipekeep/internal/adapter"
	"recipekeep/internal/config"
	"recipekeep/internal/logger"
	"recipekeep/internal/store"
	"recipekeep/internal/syncer"
	"recipekeep/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	recipeID := flag.Int64("recipe", 0, "recipe id to open")
	rating := flag.Float64("rate", -1, "set the recipe rating (0..5)")
	ingredient := flag.String("add-ingredient", "", "add an ingredient to the checklist")
	link := flag.String("add-link", "", "add a link to the recipe")
	watch := flag.Bool("watch", false, "stay attached and refresh periodically")
	interval := flag.Duration("interval", 30*time.Second, "refresh trigger interval in watch mode")
	flag.Parse()

	log := logger.NewLogger("recipe-client")

	if *recipeID <= 0 {
		log.Fatal().Msg("a positive -recipe id is required")
	}

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	gateway, err := adapter.NewHTTPServerGateway(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server gateway")
	}

	ctx := context.Background()

	local, err := store.NewClientRepositories(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	controller, err := syncer.NewController(ctx, *recipeID, gateway, local.PendingUploads, log)
	if err != nil {
		log.Fatal().Err(err).Msg("open recipe")
	}

	if *rating >= 0 {
		if err = controller.SetRating(ctx, *rating); err != nil {
			log.Error().Err(err).Msg("set rating")
		}
	}
	if *ingredient != "" {
		if err = controller.AddIngredient(ctx, *ingredient); err != nil {
			log.Error().Err(err).Msg("add ingredient")
		}
	}
	if *link != "" {
		if err = controller.AddLink(ctx, *link); err != nil {
			log.Error().Err(err).Msg("add link")
		}
	}

	printRecipe(controller, log)

	if !*watch {
		return
	}

	refresh := workers.NewRefreshJob(controller, cfg.Workers.RefreshThrottle, log)
	workers.NewWorkers(refresh).Run()
	defer refresh.Stop()

	notifyCtx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for {
		select {
		case <-notifyCtx.Done():
			log.Info().Msg("client shutting down")
			return
		case <-ticker.C:
			refresh.Trigger()
			printRecipe(controller, log)
		}
	}
}

func printRecipe(controller *syncer.Controller, log *logger.Logger) {
	recipe := controller.Recipe()
	data, err := json.MarshalIndent(recipe, "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("encode recipe")
		return
	}
	fmt.Fprintln(os.Stdout, string(data))
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
