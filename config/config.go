package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the complete diary configuration
type Config struct {
	Database DatabaseConfig `json:"database" yaml:"database"`
	Export   ExportConfig   `json:"export" yaml:"export"`
}

// DatabaseConfig locates the diary database file
type DatabaseConfig struct {
	Path string `json:"path" yaml:"path"`
}

// ExportConfig controls where CSV exports are written
type ExportConfig struct {
	Dir string `json:"dir" yaml:"dir"`
}

// Load returns the effective configuration: Default(), overlaid with the
// file at path when one is given, overlaid with .env / environment
// overrides (DIARY_DB, DIARY_EXPORT_DIR).
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		loaded, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	_ = godotenv.Load()
	if v := os.Getenv("DIARY_DB"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("DIARY_EXPORT_DIR"); v != "" {
		cfg.Export.Dir = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a file (JSON or YAML based on content)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if c.Export.Dir == "" {
		return fmt.Errorf("export.dir is required")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: "./trading_data.db",
		},
		Export: ExportConfig{
			Dir: ".",
		},
	}
}
