package services

import (
	"context"
	"strings"
	"time"

	"github.com/winnipegconnect/backend/internal/domain/entities"
	"github.com/winnipegconnect/backend/internal/domain/repositories"
	"github.com/winnipegconnect/backend/internal/infrastructure/observability"
	queryservices "github.com/winnipegconnect/backend/internal/query/services"
	apperrors "github.com/winnipegconnect/backend/pkg/errors"
)

const (
	defaultSuggestLimit = 5
	maxSuggestLimit     = 50
)

// ProviderService answers provider catalog queries
type ProviderService struct {
	repo      repositories.ProviderRepository
	search    repositories.ProviderSearchRepository
	analytics *SearchAnalyticsService
	metrics   *observability.Metrics
}

// NewProviderService creates a new provider service. search, analytics and
// metrics are optional.
func NewProviderService(
	repo repositories.ProviderRepository,
	search repositories.ProviderSearchRepository,
	analytics *SearchAnalyticsService,
	metrics *observability.Metrics,
) *ProviderService {
	return &ProviderService{
		repo:      repo,
		search:    search,
		analytics: analytics,
		metrics:   metrics,
	}
}

// Query filters and sorts the catalog and records the search
func (s *ProviderService) Query(ctx context.Context, query entities.ProviderQuery) (*entities.ProviderQueryResult, error) {
	ctx, span := observability.StartSpan(ctx, "ProviderService.Query")
	defer span.End()

	start := time.Now()

	catalog, err := s.repo.List(ctx)
	if err != nil {
		observability.RecordError(span, err)
		return nil, err
	}

	providers := queryservices.FilterAndSort(catalog, query)
	observability.RecordQueryResults(ctx, s.metrics, string(query.SortKey), len(providers))

	if s.analytics != nil {
		s.analytics.Track(&entities.SearchEvent{
			SearchTerm:  query.SearchTerm,
			Category:    query.Category,
			MinRating:   query.MinRating,
			SortKey:     string(query.SortKey),
			ResultCount: len(providers),
			LatencyMs:   int(time.Since(start).Milliseconds()),
			SessionID:   SessionIDFromContext(ctx),
		})
	}

	return &entities.ProviderQueryResult{
		Providers: providers,
		Count:     len(providers),
	}, nil
}

// GetByID retrieves a single provider
func (s *ProviderService) GetByID(ctx context.Context, id int) (*entities.Provider, error) {
	return s.repo.GetByID(ctx, id)
}

// Suggest returns providers whose name starts with prefix. The search index
// is used when configured; the catalog is scanned otherwise or when the
// index fails.
func (s *ProviderService) Suggest(ctx context.Context, prefix string, limit int) ([]*entities.Provider, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return nil, apperrors.NewValidationError("q is required")
	}
	if limit <= 0 {
		limit = defaultSuggestLimit
	}
	if limit > maxSuggestLimit {
		limit = maxSuggestLimit
	}

	if s.search != nil {
		suggestions, err := s.suggestFromIndex(ctx, prefix, limit)
		if err == nil {
			return suggestions, nil
		}
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("prefix", prefix).Msg("search index unavailable, scanning catalog")
	}

	catalog, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	lower := strings.ToLower(prefix)
	out := make([]*entities.Provider, 0, limit)
	for _, p := range catalog {
		if strings.HasPrefix(strings.ToLower(p.Name), lower) {
			out = append(out, p)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (s *ProviderService) suggestFromIndex(ctx context.Context, prefix string, limit int) ([]*entities.Provider, error) {
	ids, err := s.search.Suggest(ctx, prefix, limit)
	if err != nil {
		return nil, err
	}

	out := make([]*entities.Provider, 0, len(ids))
	for _, id := range ids {
		p, err := s.repo.GetByID(ctx, id)
		if apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
			// index is ahead of or behind the catalog
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Categories returns the category options of the search page: the
// "All Categories" entry followed by every distinct category in catalog order
func (s *ProviderService) Categories(ctx context.Context) ([]string, error) {
	catalog, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{entities.AllCategories: true}
	out := []string{entities.AllCategories}
	add := func(c string) {
		if c != "" && !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	for _, p := range catalog {
		add(p.BusinessType)
		for _, c := range p.Categories {
			add(c)
		}
	}
	return out, nil
}
