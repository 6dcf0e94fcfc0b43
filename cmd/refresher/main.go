// The refresher runs one full refresh pass from the command line against a
// throwaway store: both feed categories plus live market quotes. It exercises
// the configured API keys and the whole scrape pipeline, which makes it a
// cheap smoke test before deploying a config change.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/rahmasleam/Neux-Mena-V5/internal/config"
	"github.com/rahmasleam/Neux-Mena-V5/internal/model"
	"github.com/rahmasleam/Neux-Mena-V5/internal/pipeline"
	"github.com/rahmasleam/Neux-Mena-V5/internal/repository"
	"github.com/rahmasleam/Neux-Mena-V5/pkg/llm"
	"github.com/rahmasleam/Neux-Mena-V5/pkg/market"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()
	ctx := context.Background()

	store := repository.New(cfg.Auth.AdminEmail, &repository.MemoryFallbackStore{})

	gateway := llm.NewGateway(cfg.AI.APIKey, cfg.AI.Model, cfg.AI.TTSModel, cfg.AI.Voice)
	if !gateway.Available() {
		slog.Error("no Gemini API key configured, nothing to refresh")
		return
	}

	refresher := pipeline.NewRefresher(store, gateway, gateway, cfg.Refresh)

	for _, category := range []string{model.CategoryLatest, model.CategoryStartup} {
		accepted, err := refresher.Refresh(ctx, category)
		if err != nil && !errors.Is(err, pipeline.ErrInFlight) {
			slog.Error("refresh failed", "category", category, "error", err)
			continue
		}
		slog.Info("refresh finished", "category", category, "accepted", accepted)
	}

	if cfg.Market.FinnhubAPIKey == "" {
		slog.Info("no Finnhub API key configured, skipping market quotes")
		return
	}

	quotes := market.NewFinnhubClient(cfg.Market.FinnhubAPIKey)
	updated := pipeline.NewMarketRefresher(store, quotes, nil).Refresh(ctx)
	slog.Info("market quotes refreshed", "updated", updated)
}
