package search

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"

	"github.com/winnipegconnect/backend/internal/domain/entities"
	"github.com/winnipegconnect/backend/internal/domain/repositories"
	tsclient "github.com/winnipegconnect/backend/internal/infrastructure/clients/typesense"
	apperrors "github.com/winnipegconnect/backend/pkg/errors"
)

const collectionName = tsclient.ProvidersCollection

// TypesenseAdapter implements provider name search using Typesense
type TypesenseAdapter struct {
	client *tsclient.Client
}

// Ensure TypesenseAdapter implements ProviderSearchRepository
var _ repositories.ProviderSearchRepository = (*TypesenseAdapter)(nil)

// NewTypesenseAdapter creates a new Typesense adapter
func NewTypesenseAdapter(client *tsclient.Client) *TypesenseAdapter {
	return &TypesenseAdapter{client: client}
}

// InitSchema ensures the collection exists
func (a *TypesenseAdapter) InitSchema(ctx context.Context) error {
	if _, err := a.client.Client().Collection(collectionName).Retrieve(ctx); err == nil {
		return nil
	}

	if _, err := a.client.Client().Collections().Create(ctx, tsclient.ProviderSchema()); err != nil {
		return apperrors.NewExternalError("failed to create typesense collection", err)
	}
	return nil
}

// Index adds or replaces a provider document
func (a *TypesenseAdapter) Index(ctx context.Context, provider *entities.Provider) error {
	if _, err := a.client.Client().Collection(collectionName).Documents().Upsert(ctx, buildProviderDocument(provider)); err != nil {
		return apperrors.NewExternalError(fmt.Sprintf("failed to index provider %d", provider.ID), err)
	}
	return nil
}

// Delete removes a provider from the index
func (a *TypesenseAdapter) Delete(ctx context.Context, id int) error {
	if _, err := a.client.Client().Collection(collectionName).Document(strconv.Itoa(id)).Delete(ctx); err != nil {
		return apperrors.NewExternalError(fmt.Sprintf("failed to delete provider %d from index", id), err)
	}
	return nil
}

// Suggest returns the IDs of providers whose name matches prefix
func (a *TypesenseAdapter) Suggest(ctx context.Context, prefix string, limit int) ([]int, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return []int{}, nil
	}

	params := &api.SearchCollectionParams{
		Q:             pointer.String(prefix),
		QueryBy:       pointer.String("name"),
		IncludeFields: pointer.String("id"),
		PerPage:       pointer.Int(limit),
	}

	result, err := a.client.Client().Collection(collectionName).Documents().Search(ctx, params)
	if err != nil {
		return nil, apperrors.NewExternalError("failed to search providers", err)
	}
	if result.Hits == nil {
		return []int{}, nil
	}

	ids := make([]int, 0, len(*result.Hits))
	for _, hit := range *result.Hits {
		if hit.Document == nil {
			continue
		}
		if id, ok := documentID(*hit.Document); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func buildProviderDocument(p *entities.Provider) map[string]interface{} {
	doc := map[string]interface{}{
		"id":            strconv.Itoa(p.ID),
		"name":          p.Name,
		"business_type": p.BusinessType,
		"categories":    nonNil(p.Categories),
		"services":      nonNil(p.Services),
		"rating":        p.Rating,
		"review_count":  p.ReviewCount,
	}
	if p.Coordinates.Latitude != 0 || p.Coordinates.Longitude != 0 {
		doc["location"] = []float64{p.Coordinates.Latitude, p.Coordinates.Longitude}
	}
	return doc
}

func documentID(doc map[string]interface{}) (int, bool) {
	raw, ok := doc["id"].(string)
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return id, true
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
