// Package fixtures holds the sample marketplace catalog shipped with the service.
package fixtures

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/winnipegconnect/backend/internal/domain/entities"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Catalog is the full set of fixture records
type Catalog struct {
	Providers []*entities.Provider `yaml:"providers"`
	Jobs      []*entities.Job      `yaml:"jobs"`
}

// Default parses the embedded sample catalog
func Default() (*Catalog, error) {
	return Parse(catalogYAML)
}

// LoadFile parses a catalog from a YAML file on disk
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file %s: %w", path, err)
	}
	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog file %s: %w", path, err)
	}
	return cat, nil
}

// Load returns the catalog at path, or the embedded one when path is empty
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// Parse decodes a YAML catalog and checks that record IDs are unique
func Parse(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, err
	}

	seen := make(map[int]bool, len(cat.Providers))
	for _, p := range cat.Providers {
		if seen[p.ID] {
			return nil, fmt.Errorf("duplicate provider id %d", p.ID)
		}
		seen[p.ID] = true
	}

	seenJobs := make(map[int]bool, len(cat.Jobs))
	for _, j := range cat.Jobs {
		if seenJobs[j.ID] {
			return nil, fmt.Errorf("duplicate job id %d", j.ID)
		}
		seenJobs[j.ID] = true
	}

	return &cat, nil
}
