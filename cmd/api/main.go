package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/winnipegconnect/backend/internal/adapters/cache"
	"github.com/winnipegconnect/backend/internal/adapters/database"
	"github.com/winnipegconnect/backend/internal/adapters/events"
	"github.com/winnipegconnect/backend/internal/adapters/maps"
	"github.com/winnipegconnect/backend/internal/adapters/memory"
	"github.com/winnipegconnect/backend/internal/adapters/search"
	"github.com/winnipegconnect/backend/internal/api/handlers"
	"github.com/winnipegconnect/backend/internal/api/middleware"
	"github.com/winnipegconnect/backend/internal/api/routes"
	"github.com/winnipegconnect/backend/internal/application/services"
	"github.com/winnipegconnect/backend/internal/domain/providers"
	"github.com/winnipegconnect/backend/internal/domain/repositories"
	"github.com/winnipegconnect/backend/internal/fixtures"
	"github.com/winnipegconnect/backend/internal/infrastructure/clients/postgres"
	"github.com/winnipegconnect/backend/internal/infrastructure/clients/redis"
	"github.com/winnipegconnect/backend/internal/infrastructure/clients/typesense"
	"github.com/winnipegconnect/backend/internal/infrastructure/observability"
	"github.com/winnipegconnect/backend/pkg/config"
)

// catalogStores are the repositories backing the provider catalog
type catalogStores struct {
	providers repositories.ProviderRepository
	jobs      repositories.JobRepository
	analytics repositories.SearchAnalyticsRepository
	pg        *postgres.Client
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("server exited with error")
	}
	log.Info().Msg("server stopped")
}

func run(ctx context.Context, cfg *config.Config) error {
	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			log.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(shutdownCtx); err != nil {
					log.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			log.Info().Str("endpoint", cfg.OTEL.Endpoint).Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		return err
	}

	stores, err := openCatalog(ctx, cfg)
	if err != nil {
		return err
	}
	if stores.pg != nil {
		defer stores.pg.Close()
	}

	// Redis is optional; the process falls back to in-memory state without it
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = redis.NewClient(ctx, &cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("Redis unavailable, using in-memory cache and sessions")
		} else {
			defer redisClient.Close()
		}
	}

	var cacheProvider providers.CacheProvider
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient, "wc:")
	} else {
		// sessions must be able to outlive the default ceiling
		cacheProvider = memory.NewCacheAdapterWithLimits(memory.DefaultCacheSize, max(cfg.Session.TTL, memory.DefaultCacheTTL))
	}

	// Postgres reads go through the cache; fixtures are already in memory
	providerRepo := stores.providers
	var refresher services.CatalogRefresher
	if stores.pg != nil {
		cached := database.NewCachedProviderAdapter(stores.providers, cacheProvider, metrics)
		providerRepo = cached
		refresher = cached
	}

	var searchRepo repositories.ProviderSearchRepository
	var indexer *search.TypesenseAdapter
	if cfg.Typesense.Enabled {
		tsClient, err := typesense.NewClient(ctx, &cfg.Typesense)
		if err != nil {
			log.Warn().Err(err).Msg("Typesense unavailable, suggestions scan the catalog")
		} else {
			indexer = search.NewTypesenseAdapter(tsClient)
			if err := indexer.InitSchema(ctx); err != nil {
				log.Warn().Err(err).Msg("failed to init Typesense schema")
			}
			searchRepo = indexer
		}
	}

	sink := newAnalyticsSink(cfg, redisClient)

	// Initialize services
	analyticsService := services.NewSearchAnalyticsService(stores.analytics, sink)
	defer func() {
		if err := analyticsService.Close(); err != nil {
			log.Error().Err(err).Msg("error closing analytics sink")
		}
	}()

	providerService := services.NewProviderService(providerRepo, searchRepo, analyticsService, metrics)
	jobService := services.NewJobService(stores.jobs)
	sessionService := services.NewSessionService(cache.NewSessionAdapter(cacheProvider, cfg.Session.TTL), stores.jobs)
	mapService := services.NewMapService(providerRepo, maps.NewPlaceholderRenderer())

	var warming *services.CatalogWarmingService
	if cfg.Warming.Enabled && refresher != nil {
		warming = services.NewCatalogWarmingService(refresher)
		if err := warming.Start(ctx, cfg.Warming.Schedule); err != nil {
			return err
		}
	}

	// Initialize handlers
	checks := map[string]handlers.Pinger{}
	if stores.pg != nil {
		checks["postgres"] = stores.pg
	}
	if redisClient != nil {
		checks["redis"] = redisClient
	}

	router := routes.NewRouter(
		handlers.NewHealthHandler(checks),
		handlers.NewProviderHandler(providerService),
		handlers.NewJobHandler(jobService),
		handlers.NewSessionHandler(sessionService),
		handlers.NewMapHandler(mapService),
		handlers.NewAnalyticsHandler(analyticsService),
		middleware.NewCacheMiddleware(cacheProvider, metrics),
		cfg.Server.AllowedOrigins,
		metrics,
	)

	server := &http.Server{
		Addr:         cfg.Server.ServerAddr(),
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", server.Addr).Str("catalog", cfg.Catalog.Source).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if indexer != nil {
		g.Go(func() error {
			indexCatalog(gctx, providerRepo, indexer)
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("server shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if warming != nil {
			warming.Stop(shutdownCtx)
		}
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// openCatalog selects the fixture or Postgres catalog
func openCatalog(ctx context.Context, cfg *config.Config) (*catalogStores, error) {
	if cfg.Catalog.Source == config.CatalogSourcePostgres {
		pgClient, err := postgres.NewClient(ctx, &cfg.Database)
		if err != nil {
			return nil, err
		}
		return &catalogStores{
			providers: database.NewProviderAdapter(pgClient),
			jobs:      database.NewJobAdapter(pgClient),
			analytics: database.NewSearchAnalyticsAdapter(pgClient),
			pg:        pgClient,
		}, nil
	}

	catalog, err := fixtures.Load(cfg.Catalog.FixturePath)
	if err != nil {
		return nil, err
	}

	log.Info().Int("providers", len(catalog.Providers)).Int("jobs", len(catalog.Jobs)).Msg("loaded fixture catalog")
	return &catalogStores{
		providers: memory.NewProviderAdapter(catalog.Providers),
		jobs:      memory.NewJobAdapter(catalog.Jobs),
		analytics: memory.NewSearchAnalyticsAdapter(memory.DefaultAnalyticsCapacity),
	}, nil
}

// newAnalyticsSink prefers Kafka, then Redis pub/sub. nil disables publishing.
func newAnalyticsSink(cfg *config.Config, redisClient *redis.Client) providers.AnalyticsSink {
	switch {
	case len(cfg.Kafka.Brokers) > 0:
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.AnalyticsTopic).Msg("publishing search events to Kafka")
		return events.NewKafkaAnalyticsSink(cfg.Kafka.Brokers, cfg.Kafka.AnalyticsTopic)
	case redisClient != nil:
		log.Info().Msg("publishing search events to Redis")
		return events.NewRedisAnalyticsSink(redisClient)
	default:
		return nil
	}
}

// indexCatalog loads every provider into the suggestion index
func indexCatalog(ctx context.Context, repo repositories.ProviderRepository, index repositories.ProviderSearchRepository) {
	catalog, err := repo.List(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load catalog for indexing")
		return
	}

	indexed := 0
	for _, p := range catalog {
		if err := index.Index(ctx, p); err != nil {
			log.Warn().Err(err).Int("provider_id", p.ID).Msg("failed to index provider")
			continue
		}
		indexed++
	}
	log.Info().Int("indexed", indexed).Int("total", len(catalog)).Msg("indexed provider catalog")
}
