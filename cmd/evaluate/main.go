package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/winnipegconnect/backend/internal/adapters/database"
	"github.com/winnipegconnect/backend/internal/adapters/memory"
	"github.com/winnipegconnect/backend/internal/application/services"
	"github.com/winnipegconnect/backend/internal/domain/repositories"
	"github.com/winnipegconnect/backend/internal/evaluation"
	"github.com/winnipegconnect/backend/internal/fixtures"
	"github.com/winnipegconnect/backend/internal/infrastructure/clients/postgres"
	"github.com/winnipegconnect/backend/internal/infrastructure/observability"
	"github.com/winnipegconnect/backend/pkg/config"
)

func main() {
	var goldenPath string
	var minRecall, minMRR float64
	flag.StringVar(&goldenPath, "golden", "", "golden query file, YAML or JSON (default: embedded set)")
	flag.Float64Var(&minRecall, "min-recall", 1.0, "minimum average recall@10")
	flag.Float64Var(&minMRR, "min-mrr", 1.0, "minimum average MRR@10")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	observability.InitLogger("search-evaluate", cfg.Env)

	ctx := context.Background()

	repo, closeRepo, err := openProviders(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open provider catalog")
	}
	defer closeRepo()

	// Load Golden Queries
	var queries []evaluation.GoldenQuery
	if goldenPath != "" {
		queries, err = evaluation.LoadGoldenQueries(goldenPath)
	} else {
		queries, err = evaluation.DefaultGoldenQueries()
	}
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load golden queries")
	}
	if err := evaluation.ValidateGoldenQueries(queries); err != nil {
		log.Fatal().Err(err).Msg("invalid golden queries")
	}

	providerService := services.NewProviderService(repo, nil, nil, nil)
	runner := evaluation.NewRunner(providerService)
	summary, err := runner.Run(ctx, queries)
	if err != nil {
		log.Fatal().Err(err).Msg("evaluation failed")
	}

	// Output results as JSON
	out, _ := json.MarshalIndent(summary, "", "  ")
	fmt.Println(string(out))

	guardrails := evaluation.NewGuardrails(evaluation.GuardrailConfig{
		MinAvgRecall: minRecall,
		MinAvgMRR:    minMRR,
	})
	if violations := guardrails.Check(summary); len(violations) > 0 {
		for _, v := range violations {
			log.Error().Msg(v)
		}
		os.Exit(1)
	}
}

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
