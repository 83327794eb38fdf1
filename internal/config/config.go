// Package config provides configuration file parsing for triage.
package config

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultReportsDir holds generated report files.
	DefaultReportsDir = "forensic_reports"

	// DefaultRecoveredDir is the recovery destination used when none is given.
	DefaultRecoveredDir = "recovered_files"

	// DefaultCatalogPath is the report catalog database. It lives beside the
	// reports directory, not inside it.
	DefaultCatalogPath = "triage_catalog.db"
)

// Config holds the settings of one triage run.
type Config struct {
	ReportsDir   string `yaml:"reports_dir"`
	RecoveredDir string `yaml:"recovered_dir"`
	Catalog      bool   `yaml:"catalog"`
	CatalogPath  string `yaml:"catalog_path"`
	LogLevel     string `yaml:"log_level"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		ReportsDir:   DefaultReportsDir,
		RecoveredDir: DefaultRecoveredDir,
		Catalog:      true,
		CatalogPath:  DefaultCatalogPath,
		LogLevel:     "warn",
	}
}

// LoadConfig reads the YAML file at path and merges it over the defaults.
// An empty path or a missing file yields the defaults without an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Pointer fields distinguish "catalog: false" from an absent key.
	var file struct {
		ReportsDir   string `yaml:"reports_dir"`
		RecoveredDir string `yaml:"recovered_dir"`
		Catalog      *bool  `yaml:"catalog"`
		CatalogPath  string `yaml:"catalog_path"`
		LogLevel     string `yaml:"log_level"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if file.ReportsDir != "" {
		cfg.ReportsDir = file.ReportsDir
	}
	if file.RecoveredDir != "" {
		cfg.RecoveredDir = file.RecoveredDir
	}
	if file.Catalog != nil {
		cfg.Catalog = *file.Catalog
	}
	if file.CatalogPath != "" {
		cfg.CatalogPath = file.CatalogPath
	}
	if file.LogLevel != "" {
		cfg.LogLevel = file.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.ReportsDir == "" {
		return fmt.Errorf("reports_dir cannot be empty")
	}
	if c.RecoveredDir == "" {
		return fmt.Errorf("recovered_dir cannot be empty")
	}
	if c.Catalog && c.CatalogPath == "" {
		return fmt.Errorf("catalog_path cannot be empty when catalog is enabled")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return nil
}

// Level returns the zerolog level named by LogLevel, defaulting to warn.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.WarnLevel
	}
	return level
}

// EnsureDirs creates the reports and recovery directories if they are missing.
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{c.ReportsDir, c.RecoveredDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
