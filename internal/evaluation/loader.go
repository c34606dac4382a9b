package evaluation

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed golden_queries.yaml
var defaultGoldenQueries []byte

// DefaultGoldenQueries returns the golden set written against the sample catalog.
func DefaultGoldenQueries() ([]GoldenQuery, error) {
	var queries []GoldenQuery
	if err := yaml.Unmarshal(defaultGoldenQueries, &queries); err != nil {
		return nil, fmt.Errorf("failed to parse embedded golden queries: %w", err)
	}
	return queries, nil
}

// LoadGoldenQueries reads and parses a golden query set from a YAML or JSON file.
func LoadGoldenQueries(path string) ([]GoldenQuery, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read golden queries file: %w", err)
	}

	var queries []GoldenQuery
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &queries)
	} else {
		err = yaml.Unmarshal(data, &queries)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse golden queries: %w", err)
	}

	return queries, nil
}

var validDifficulties = map[string]bool{
	"easy":   true,
	"medium": true,
	"hard":   true,
}

// ValidateGoldenQueries checks that all golden queries have required fields and valid values.
func ValidateGoldenQueries(queries []GoldenQuery) error {
	seen := make(map[string]struct{}, len(queries))

	for i, q := range queries {
		if q.ID == "" {
			return fmt.Errorf("query at index %d: missing id", i)
		}
		if _, dup := seen[q.ID]; dup {
			return fmt.Errorf("query at index %d: duplicate id %q", i, q.ID)
		}
		seen[q.ID] = struct{}{}

		if !q.Kind.IsValid() {
			return fmt.Errorf("query %q: invalid kind %q", q.ID, q.Kind)
		}
		if !validDifficulties[q.Difficulty] {
			return fmt.Errorf("query %q: invalid difficulty %q (must be easy/medium/hard)", q.ID, q.Difficulty)
		}
		if q.Query.MinRating < 0 || q.Query.MinRating > 5 {
			return fmt.Errorf("query %q: minRating %.2f outside 0..5", q.ID, q.Query.MinRating)
		}
	}

	return nil
}
