//go:build integration

package search_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winnipegconnect/backend/internal/adapters/search"
	"github.com/winnipegconnect/backend/internal/fixtures"
	"github.com/winnipegconnect/backend/internal/infrastructure/clients/typesense"
	"github.com/winnipegconnect/backend/pkg/config"
)

func TestTypesenseAdapter_Integration(t *testing.T) {
	url := os.Getenv("TEST_TYPESENSE_URL")
	if url == "" {
		t.Skip("Skipping integration test: TEST_TYPESENSE_URL not set")
	}

	cfg := &config.TypesenseConfig{
		Enabled: true,
		URL:     url,
		APIKey:  os.Getenv("TEST_TYPESENSE_API_KEY"),
	}

	ctx := context.Background()
	client, err := typesense.NewClient(ctx, cfg)
	require.NoError(t, err)

	adapter := search.NewTypesenseAdapter(client)
	require.NoError(t, adapter.InitSchema(ctx))

	cat, err := fixtures.Default()
	require.NoError(t, err)
	for _, p := range cat.Providers {
		require.NoError(t, adapter.Index(ctx, p))
	}

	// Allow Typesense to index
	time.Sleep(1 * time.Second)

	ids, err := adapter.Suggest(ctx, "Pet", 5)
	require.NoError(t, err)
	require.NotEmpty(t, ids)
	assert.Equal(t, 6, ids[0])

	require.NoError(t, adapter.Delete(ctx, 6))
	time.Sleep(500 * time.Millisecond)

	ids, err = adapter.Suggest(ctx, "Pet", 5)
	require.NoError(t, err)
	assert.NotContains(t, ids, 6)
}
