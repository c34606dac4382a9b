package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// CatalogRefresher reloads the catalog into a cache
type CatalogRefresher interface {
	Refresh(ctx context.Context) (int, error)
}

const warmTimeout = 30 * time.Second

// CatalogWarmingService keeps the cached catalog warm on a cron schedule
type CatalogWarmingService struct {
	refresher CatalogRefresher
	cron      *cron.Cron
}

// NewCatalogWarmingService creates a new warming service
func NewCatalogWarmingService(refresher CatalogRefresher) *CatalogWarmingService {
	return &CatalogWarmingService{
		refresher: refresher,
		cron:      cron.New(),
	}
}

// WarmCache reloads the catalog once
func (s *CatalogWarmingService) WarmCache(ctx context.Context) error {
	start := time.Now()
	n, err := s.refresher.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("failed to warm catalog cache: %w", err)
	}
	log.Info().Int("providers", n).Dur("took", time.Since(start)).Msg("catalog cache warmed")
	return nil
}

// Start warms the cache immediately and then on schedule, a cron expression such
// as "@every 5m" or "*/10 * * * *"
func (s *CatalogWarmingService) Start(ctx context.Context, schedule string) error {
	if err := s.WarmCache(ctx); err != nil {
		log.Warn().Err(err).Msg("initial cache warming failed")
	}

	if _, err := s.cron.AddFunc(schedule, func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), warmTimeout)
		defer cancel()
		if err := s.WarmCache(jobCtx); err != nil {
			log.Warn().Err(err).Msg("periodic cache warming failed")
		}
	}); err != nil {
		return fmt.Errorf("invalid warming schedule %q: %w", schedule, err)
	}

	s.cron.Start()
	log.Info().Str("schedule", schedule).Msg("started catalog cache warming")
	return nil
}

// Stop halts the schedule and waits for a running job to finish or ctx to end
func (s *CatalogWarmingService) Stop(ctx context.Context) {
	done := s.cron.Stop().Done()
	select {
	case <-done:
	case <-ctx.Done():
	}
}
