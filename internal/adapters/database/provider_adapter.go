package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/lib/pq"

	"github.com/winnipegconnect/backend/internal/domain/entities"
	"github.com/winnipegconnect/backend/internal/domain/repositories"
	"github.com/winnipegconnect/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/winnipegconnect/backend/pkg/errors"
)

const providersTable = "providers"

var providerColumns = []interface{}{
	"id", "name", "business_type", "categories", "rating", "review_count",
	"location", "price_range", "experience", "availability", "description",
	"services", "latitude", "longitude",
}

// ProviderAdapter implements ProviderRepository over PostgreSQL
type ProviderAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewProviderAdapter creates a new provider adapter
func NewProviderAdapter(client *postgres.Client) repositories.ProviderRepository {
	return &ProviderAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// List returns every provider ordered by ID
func (a *ProviderAdapter) List(ctx context.Context) ([]*entities.Provider, error) {
	query, args, err := a.db.Select(providerColumns...).
		From(providersTable).
		Order(goqu.I("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list providers", err)
	}
	defer rows.Close()

	providers := make([]*entities.Provider, 0)
	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan provider", err)
		}
		providers = append(providers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate providers", err)
	}

	return providers, nil
}

// GetByID retrieves a provider by ID
func (a *ProviderAdapter) GetByID(ctx context.Context, id int) (*entities.Provider, error) {
	query, args, err := a.db.Select(providerColumns...).
		From(providersTable).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	p, err := scanProvider(a.client.DB().QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("provider %d not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get provider", err)
	}
	return p, nil
}

// Create inserts a provider
func (a *ProviderAdapter) Create(ctx context.Context, p *entities.Provider) error {
	record := goqu.Record{
		"id":            p.ID,
		"name":          p.Name,
		"business_type": p.BusinessType,
		"categories":    pq.Array(orEmpty(p.Categories)),
		"rating":        p.Rating,
		"review_count":  p.ReviewCount,
		"location":      p.Location,
		"price_range":   p.PriceRange,
		"experience":    p.Experience,
		"availability":  p.Availability,
		"description":   p.Description,
		"services":      pq.Array(orEmpty(p.Services)),
		"latitude":      p.Coordinates.Latitude,
		"longitude":     p.Coordinates.Longitude,
	}

	query, args, err := a.db.Insert(providersTable).Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return apperrors.NewConflictError(fmt.Sprintf("provider %d already exists", p.ID))
		}
		return apperrors.NewInternalError("failed to create provider", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProvider(row rowScanner) (*entities.Provider, error) {
	p := &entities.Provider{}
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.BusinessType,
		pq.Array(&p.Categories),
		&p.Rating,
		&p.ReviewCount,
		&p.Location,
		&p.PriceRange,
		&p.Experience,
		&p.Availability,
		&p.Description,
		pq.Array(&p.Services),
		&p.Coordinates.Latitude,
		&p.Coordinates.Longitude,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
