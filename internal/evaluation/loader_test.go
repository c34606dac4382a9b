package evaluation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winnipegconnect/backend/internal/domain/entities"
)

func TestDefaultGoldenQueries_AreValid(t *testing.T) {
	queries, err := DefaultGoldenQueries()
	require.NoError(t, err)
	require.NotEmpty(t, queries)

	assert.NoError(t, ValidateGoldenQueries(queries))

	kinds := map[Kind]bool{}
	for _, q := range queries {
		kinds[q.Kind] = true
	}
	for _, k := range ValidKinds() {
		assert.True(t, kinds[k], "no golden query of kind %s", k)
	}
}

func TestLoadGoldenQueries_YAML(t *testing.T) {
	path := writeTempFile(t, "golden.yaml", `
- id: q1
  kind: text
  query: {searchTerm: pet, sortKey: rating}
  expected_ids: [6]
  difficulty: easy
- id: q2
  kind: rating
  query: {minRating: 4.75}
  expected_ids: [3, 6, 1]
  strict_order: true
  difficulty: medium
`)

	queries, err := LoadGoldenQueries(path)
	require.NoError(t, err)
	require.Len(t, queries, 2)

	assert.Equal(t, "pet", queries[0].Query.SearchTerm)
	assert.Equal(t, entities.SortByRating, queries[0].Query.SortKey)
	assert.Equal(t, 4.75, queries[1].Query.MinRating)
	assert.True(t, queries[1].StrictOrder)
	assert.Equal(t, []int{3, 6, 1}, queries[1].ExpectedIDs)
}

func TestLoadGoldenQueries_JSON(t *testing.T) {
	path := writeTempFile(t, "golden.json", `[
		{"id": "q1", "kind": "category", "query": {"category": "Cleaning"}, "expected_ids": [2], "difficulty": "easy"}
	]`)

	queries, err := LoadGoldenQueries(path)
	require.NoError(t, err)
	require.Len(t, queries, 1)
	assert.Equal(t, "Cleaning", queries[0].Query.Category)
	assert.Equal(t, KindCategory, queries[0].Kind)
}

func TestLoadGoldenQueries_Errors(t *testing.T) {
	_, err := LoadGoldenQueries("/nonexistent/path.yaml")
	assert.Error(t, err)

	_, err = LoadGoldenQueries(writeTempFile(t, "bad.json", `not valid json`))
	assert.Error(t, err)
}

func TestKind_IsValid(t *testing.T) {
	for _, k := range ValidKinds() {
		assert.True(t, k.IsValid())
	}
	assert.False(t, Kind("intent").IsValid())
	assert.False(t, Kind("").IsValid())
}

func TestValidateGoldenQueries(t *testing.T) {
	valid := GoldenQuery{ID: "q1", Kind: KindText, Difficulty: "easy"}

	tests := []struct {
		name    string
		queries []GoldenQuery
		wantErr bool
	}{
		{"valid", []GoldenQuery{valid}, false},
		{"missing id", []GoldenQuery{{Kind: KindText, Difficulty: "easy"}}, true},
		{"duplicate id", []GoldenQuery{valid, valid}, true},
		{"invalid kind", []GoldenQuery{{ID: "q1", Kind: "bad", Difficulty: "easy"}}, true},
		{"invalid difficulty", []GoldenQuery{{ID: "q1", Kind: KindText, Difficulty: "impossible"}}, true},
		{"rating out of range", []GoldenQuery{{ID: "q1", Kind: KindRating, Difficulty: "easy", Query: entities.ProviderQuery{MinRating: 6}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGoldenQueries(tt.queries)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
