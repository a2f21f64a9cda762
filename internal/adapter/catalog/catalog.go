// Package catalog loads the targeting values campaigns are validated against.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"campaign-desk/internal/core/domain"
)

//go:embed targeting.yaml
var defaultCatalog []byte

// Default returns the built-in targeting catalog.
func Default() (domain.Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog from path. An empty path returns the built-in catalog.
func Load(path string) (domain.Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog and checks that every list is populated and
// free of duplicates.
func Parse(data []byte) (domain.Catalog, error) {
	var c domain.Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return domain.Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	if err := errors.Join(
		checkList("age_ranges", c.AgeRanges),
		checkList("locations", c.Locations),
		checkList("interests", c.Interests),
	); err != nil {
		return domain.Catalog{}, err
	}
	return c, nil
}

func checkList(name string, values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("catalog %s is empty", name)
	}
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v == "" {
			return fmt.Errorf("catalog %s contains an empty value", name)
		}
		if _, dup := seen[v]; dup {
			return fmt.Errorf("catalog %s contains %q twice", name, v)
		}
		seen[v] = struct{}{}
	}
	return nil
}
