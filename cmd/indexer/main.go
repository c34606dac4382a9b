package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/winnipegconnect/backend/internal/adapters/database"
	"github.com/winnipegconnect/backend/internal/adapters/memory"
	"github.com/winnipegconnect/backend/internal/adapters/search"
	"github.com/winnipegconnect/backend/internal/domain/repositories"
	"github.com/winnipegconnect/backend/internal/fixtures"
	"github.com/winnipegconnect/backend/internal/infrastructure/clients/postgres"
	"github.com/winnipegconnect/backend/internal/infrastructure/clients/typesense"
	"github.com/winnipegconnect/backend/internal/infrastructure/observability"
	"github.com/winnipegconnect/backend/pkg/config"
)

func main() {
	var reset bool
	var intervalFlag string
	flag.BoolVar(&reset, "reset", false, "delete existing Typesense collection before reindexing")
	flag.StringVar(&intervalFlag, "interval", "", "repeat interval for reindexing (e.g. 6h, 30m)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	observability.InitLogger("provider-indexer", cfg.Env)

	intervalValue := strings.TrimSpace(intervalFlag)
	if intervalValue == "" {
		intervalValue = strings.TrimSpace(os.Getenv("REINDEX_INTERVAL"))
	}

	var interval time.Duration
	if intervalValue != "" {
		interval, err = time.ParseDuration(intervalValue)
		if err != nil {
			log.Fatal().Err(err).Str("interval", intervalValue).Msg("invalid interval")
		}
		if interval <= 0 {
			log.Fatal().Msg("interval must be greater than zero")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	for {
		if err := indexOnce(ctx, cfg, reset); err != nil {
			log.Error().Err(err).Msg("reindex failed")
		}

		if interval <= 0 {
			break
		}

		reset = false
		log.Info().Dur("next_run_in", interval).Msg("reindex complete")

		select {
		case <-ctx.Done():
			log.Info().Msg("reindexer shutting down")
			return
		case <-time.After(interval):
		}
	}
}

func indexOnce(ctx context.Context, cfg *config.Config, reset bool) error {
	repo, closeRepo, err := openProviders(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	tsClient, err := typesense.NewClient(ctx, &cfg.Typesense)
	if err != nil {
		return err
	}

	if reset || os.Getenv("RESET_TYPESENSE") == "true" {
		log.Warn().Str("collection", typesense.ProvidersCollection).Msg("deleting collection before reindex")
		if _, err := tsClient.Client().Collection(typesense.ProvidersCollection).Delete(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to delete collection")
		}
	}

	index := search.NewTypesenseAdapter(tsClient)
	if err := index.InitSchema(ctx); err != nil {
		return err
	}

	providers, err := repo.List(ctx)
	if err != nil {
		return err
	}

	log.Info().Int("providers", len(providers)).Msg("indexing providers")

	indexed := 0
	for _, p := range providers {
		if err := index.Index(ctx, p); err != nil {
			log.Warn().Err(err).Int("provider_id", p.ID).Msg("failed to index provider")
			continue
		}
		indexed++
	}

	log.Info().Int("indexed", indexed).Int("total", len(providers)).Msg("indexing finished")
	return nil
}

// openProviders returns the configured provider catalog and a func releasing it
func openProviders(ctx context.Context, cfg *config.Config) (repositories.ProviderRepository, func(), error) {
	if cfg.Catalog.Source == config.CatalogSourcePostgres {
		pgClient, err := postgres.NewClient(ctx, &cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		return database.NewProviderAdapter(pgClient), func() { pgClient.Close() }, nil
	}

	catalog, err := fixtures.Load(cfg.Catalog.FixturePath)
	if err != nil {
		return nil, nil, err
	}
	return memory.NewProviderAdapter(catalog.Providers), func() {}, nil
}
