package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/winnipegconnect/backend/internal/adapters/database"
	"github.com/winnipegconnect/backend/internal/fixtures"
	"github.com/winnipegconnect/backend/internal/infrastructure/clients/postgres"
	"github.com/winnipegconnect/backend/internal/infrastructure/observability"
	"github.com/winnipegconnect/backend/pkg/config"
	apperrors "github.com/winnipegconnect/backend/pkg/errors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	observability.InitLogger("catalog-seed", cfg.Env)

	ctx := context.Background()

	pgClient, err := postgres.NewClient(ctx, &cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pgClient.Close()

	for _, stmt := range database.Schema {
		if _, err := pgClient.DB().ExecContext(ctx, stmt); err != nil {
			log.Fatal().Err(err).Msg("failed to create schema")
		}
	}

	if os.Getenv("RESET_DB") == "true" {
		log.Warn().Msg("RESET_DB=true detected, truncating tables before seeding")
		_, err := pgClient.DB().ExecContext(ctx, `TRUNCATE TABLE providers, jobs, search_analytics`)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to reset tables")
		}
	}

	catalog, err := fixtures.Load(cfg.Catalog.FixturePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load catalog")
	}

	providerRepo := database.NewProviderAdapter(pgClient)
	jobRepo := database.NewJobAdapter(pgClient)

	// 1. Seed providers
	created, skipped := 0, 0
	for _, p := range catalog.Providers {
		err := providerRepo.Create(ctx, p)
		switch {
		case err == nil:
			created++
		case apperrors.IsType(err, apperrors.ErrorTypeConflict):
			skipped++
		default:
			log.Error().Err(err).Str("provider", p.Name).Msg("failed to create provider")
		}
	}
	log.Info().Int("created", created).Int("existing", skipped).Msg("seeded providers")

	// 2. Seed jobs
	created, skipped = 0, 0
	for _, j := range catalog.Jobs {
		err := jobRepo.Create(ctx, j)
		switch {
		case err == nil:
			created++
		case apperrors.IsType(err, apperrors.ErrorTypeConflict):
			skipped++
		default:
			log.Error().Err(err).Str("job", j.Title).Msg("failed to create job")
		}
	}
	log.Info().Int("created", created).Int("existing", skipped).Msg("seeded jobs")
}
