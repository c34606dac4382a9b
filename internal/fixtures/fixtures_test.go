package fixtures

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_SampleCatalog(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	assert.Len(t, cat.Providers, 6)
	assert.Len(t, cat.Jobs, 3)

	ratings := make([]float64, 0, len(cat.Providers))
	for _, p := range cat.Providers {
		ratings = append(ratings, p.Rating)
		assert.NotEmpty(t, p.Services, "provider %d has no services", p.ID)
		assert.GreaterOrEqual(t, p.Rating, 0.0)
		assert.LessOrEqual(t, p.Rating, 5.0)
	}
	assert.Equal(t, []float64{4.8, 4.2, 4.9, 4.6, 4.7, 4.9}, ratings)
	assert.Equal(t, "Pet Care Plus", cat.Providers[5].Name)
	assert.Equal(t, "$100-500/project", cat.Providers[2].PriceRange)
}

func TestParse_RejectsDuplicateIDs(t *testing.T) {
	data := []byte(`
providers:
  - id: 1
    name: A
  - id: 1
    name: B
`)
	_, err := Parse(data)
	assert.ErrorContains(t, err, "duplicate provider id 1")
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
providers:
  - id: 9
    name: Solo Movers
    businessType: Moving
    rating: 3.5
jobs: []
`), 0o600))

	cat, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cat.Providers, 1)
	assert.Equal(t, "Solo Movers", cat.Providers[0].Name)
	assert.Empty(t, cat.Jobs)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
