package models

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigName is looked up in the project root when --config is not given.
const DefaultConfigName = ".iconcheck.yaml"

const (
	DefaultCatalogPath  = "lib/utils/main_feature_icon_catalog.dart"
	DefaultManifestPath = "assets/icons/metadata/icons.json"
)

// Config holds runtime configuration for both tools.
// Paths are relative to the project root unless absolute.
type Config struct {
	CatalogPath  string          `yaml:"catalog"`
	ManifestPath string          `yaml:"manifest"`
	Patterns     PatternConfig   `yaml:"patterns"`
	Manifest     ManifestOptions `yaml:"manifest_options"`
}

// PatternConfig overrides the catalog extraction regular expressions.
// Empty fields keep the built-in pattern.
type PatternConfig struct {
	PageStart       string `yaml:"page_start"`
	DefinitionStart string `yaml:"definition_start"`
	ID              string `yaml:"id"`
	Label           string `yaml:"label"`
	Route           string `yaml:"route"`
	BlockClose      string `yaml:"block_close"`
}

// ManifestOptions controls how strictly the manifest is loaded.
type ManifestOptions struct {
	// Lenient skips entries missing id or assetPath instead of failing.
	Lenient bool `yaml:"lenient"`
	// AllowDuplicates lets a later entry replace an earlier one with the same id.
	AllowDuplicates bool `yaml:"allow_duplicates"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		CatalogPath:  DefaultCatalogPath,
		ManifestPath: DefaultManifestPath,
	}
}

// LoadConfig reads a YAML config file on top of the defaults.
// A missing file is not an error when optional is true.
func LoadConfig(path string, optional bool) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.CatalogPath == "" {
		cfg.CatalogPath = DefaultCatalogPath
	}
	if cfg.ManifestPath == "" {
		cfg.ManifestPath = DefaultManifestPath
	}
	return cfg, nil
}
