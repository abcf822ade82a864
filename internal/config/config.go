// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"wireless-quote/core/types"
	"wireless-quote/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// CatalogDir is the directory holding the HCL catalog files
	CatalogDir string `json:"catalog_dir"`

	// Defaults contains new-quote defaults
	Defaults QuoteDefaults `json:"defaults"`

	// Discounts overrides the catalog discount-rate settings when set
	Discounts *types.DiscountSettings `json:"discounts,omitempty"`

	// Server contains HTTP server settings
	Server ServerConfig `json:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// QuoteDefaults seed a freshly created quote
type QuoteDefaults struct {
	// CustomerType is the default customer segment
	CustomerType types.CustomerType `json:"customer_type"`

	// Plan is the default plan id ("" = none selected)
	Plan string `json:"plan,omitempty"`

	// TaxRate is the default tax rate in percent
	TaxRate float64 `json:"tax_rate"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Listen is the address the server binds to
	Listen string `json:"listen"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	catalogDir := filepath.Join(homeDir, ".wireless-quote", "catalog")

	return &Config{
		Version:    "1.0",
		CatalogDir: catalogDir,
		Defaults: QuoteDefaults{
			CustomerType: types.CustomerStandard,
			TaxRate:      8.0,
		},
		Server: ServerConfig{
			Listen: ":8080",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
