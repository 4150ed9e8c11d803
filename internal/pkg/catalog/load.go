package catalog

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

var (
	current   *Catalog
	currentMu sync.RWMutex
)

// LoadFile reads a catalog from a YAML file and validates it.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog and validates it.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if c.Currency == "" {
		c.Currency = "USD"
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return &c, nil
}

// Setup installs the catalog served by the site. An empty path keeps the built-in catalog.
func Setup(path string) error {
	c := Default()
	if path != "" {
		loaded, err := LoadFile(path)
		if err != nil {
			return err
		}
		c = loaded
	}

	currentMu.Lock()
	defer currentMu.Unlock()
	current = c
	return nil
}

// Get returns the installed catalog, falling back to the built-in one.
func Get() *Catalog {
	currentMu.RLock()
	c := current
	currentMu.RUnlock()
	if c == nil {
		return Default()
	}
	return c
}
