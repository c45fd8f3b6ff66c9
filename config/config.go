// Package config provides configuration loading and management for ontomap.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete ontomap configuration.
type Config struct {
	Catalog  CatalogConfig  `yaml:"catalog"`
	Tissue   TissueConfig   `yaml:"tissue"`
	CellType CellTypeConfig `yaml:"cell_type"`
	Output   OutputConfig   `yaml:"output"`
	NATS     NATSConfig     `yaml:"nats"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Watch    WatchConfig    `yaml:"watch"`
}

// CatalogConfig configures the production catalog fetch.
type CatalogConfig struct {
	// BaseURL is the portal API base URL.
	BaseURL string `yaml:"base_url"`
	// Timeout is the maximum time to wait for the datasets index.
	Timeout time.Duration `yaml:"timeout"`
}

// TissueConfig configures the tissue domain (UBERON).
type TissueConfig struct {
	// Ontology is a glob resolving to exactly one pinned UBERON release.
	Ontology string `yaml:"ontology"`
	// Systems are the hand-curated system-level anchor terms.
	Systems []string `yaml:"systems"`
	// Organs are the hand-curated organ-level terms.
	Organs []string `yaml:"organs"`
	// Orphans are production tissues with no corresponding system; they are
	// added to the subgraph as their own roots.
	Orphans []string `yaml:"orphans"`
}

// CellTypeConfig configures the cell type domain (CL).
type CellTypeConfig struct {
	// Ontology is a glob resolving to exactly one pinned CL release.
	Ontology string `yaml:"ontology"`
	// Classes are the hand-curated cell class anchor terms.
	Classes []string `yaml:"classes"`
	// Subclasses are the hand-curated cell subclass terms.
	Subclasses []string `yaml:"subclasses"`
	// Orphans are production cell types with no corresponding cell class.
	Orphans []string `yaml:"orphans"`
}

// OutputConfig configures artifact persistence.
type OutputConfig struct {
	// Dir is the directory mapping files and the run manifest are written to.
	Dir string `yaml:"dir"`
}

// NATSConfig configures optional mapping publication.
type NATSConfig struct {
	// URL is the NATS server URL (empty = publishing disabled).
	URL string `yaml:"url"`
}

// MetricsConfig configures the optional metrics listener.
type MetricsConfig struct {
	// ListenAddr is the address the metrics endpoint binds to
	// (empty = metrics listener disabled).
	ListenAddr string `yaml:"listen_addr"`
}

// WatchConfig configures re-running the pipeline on input changes.
type WatchConfig struct {
	// Enabled controls whether file watching is active.
	Enabled bool `yaml:"enabled"`
	// DebounceDelay is how long to wait for more changes before re-running.
	DebounceDelay time.Duration `yaml:"debounce_delay"`
}

// DefaultConfig returns a Config with sensible defaults: the production
// portal API and the hand-curated anchor lists.
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			BaseURL: "https://api.cellxgene.cziscience.com",
			Timeout: 2 * time.Minute,
		},
		Tissue: TissueConfig{
			Ontology: "ontologies/uberon-*.owl",
			Systems:  defaultSystemTissues(),
			Organs:   defaultOrganTissues(),
			Orphans:  defaultOrphanTissues(),
		},
		CellType: CellTypeConfig{
			Ontology:   "ontologies/cl-*.owl",
			Classes:    defaultCellClasses(),
			Subclasses: defaultCellSubclasses(),
			Orphans:    defaultOrphanCellTypes(),
		},
		Output: OutputConfig{
			Dir: "mappings",
		},
		Watch: WatchConfig{
			Enabled:       false,
			DebounceDelay: 500 * time.Millisecond,
		},
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Catalog.BaseURL == "" {
		return fmt.Errorf("catalog.base_url is required")
	}
	if c.Catalog.Timeout <= 0 {
		return fmt.Errorf("catalog.timeout must be positive")
	}
	if c.Tissue.Ontology == "" {
		return fmt.Errorf("tissue.ontology is required")
	}
	if c.CellType.Ontology == "" {
		return fmt.Errorf("cell_type.ontology is required")
	}
	if len(c.Tissue.Systems) == 0 {
		return fmt.Errorf("tissue.systems must not be empty")
	}
	if len(c.CellType.Classes) == 0 {
		return fmt.Errorf("cell_type.classes must not be empty")
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir is required")
	}
	if c.Watch.Enabled && c.Watch.DebounceDelay <= 0 {
		return fmt.Errorf("watch.debounce_delay must be positive when watch is enabled")
	}
	for _, group := range [][]string{
		c.Tissue.Systems, c.Tissue.Organs, c.Tissue.Orphans,
		c.CellType.Classes, c.CellType.Subclasses, c.CellType.Orphans,
	} {
		for _, term := range group {
			if strings.Count(term, "_") != 1 {
				return fmt.Errorf("anchor term %q is not in internal form (PREFIX_NNNNNNN)", term)
			}
		}
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file, overlaying defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
