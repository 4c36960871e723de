package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadTemplates reads the template catalog from TEMPLATES_CONFIG_PATH
// (default configs/templates.yaml). A missing file is not an error: the
// compiled-in catalog is served instead.
func LoadTemplates() (*TemplateCatalog, error) {
	path := os.Getenv("TEMPLATES_CONFIG_PATH")
	if path == "" {
		path = "configs/templates.yaml"
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return defaultCatalog(), nil
	}
	if err != nil {
		return nil, err
	}

	var catalog TemplateCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid template catalog %s: %w", path, err)
	}

	return &catalog, nil
}
