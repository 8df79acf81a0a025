// Package config reads and writes the workspace settings file.
package config

import (
	"fmt"
	"os"

	"github.com/felixgeelhaar/cowork/pkg/storage"
	"gopkg.in/yaml.v3"
)

// Config stores workspace presentation defaults outside the domain.
type Config struct {
	Currency          string `yaml:"currency"`
	LowStockThreshold int    `yaml:"low_stock_threshold"`
}

// Defaults applied when no config file exists.
const (
	DefaultCurrency          = "USD"
	DefaultLowStockThreshold = 10
)

// Load reads .cowork/config.yaml. A missing file returns the defaults.
func Load(root string) (*Config, error) {
	cfg := &Config{
		Currency:          DefaultCurrency,
		LowStockThreshold: DefaultLowStockThreshold,
	}

	repo := storage.NewFilesystemRepository(root)
	path, err := repo.ResolvePath(storage.ConfigFile)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.Currency == "" {
		cfg.Currency = DefaultCurrency
	}
	if cfg.LowStockThreshold <= 0 {
		cfg.LowStockThreshold = DefaultLowStockThreshold
	}

	return cfg, nil
}

// Save writes .cowork/config.yaml.
func Save(root string, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	repo := storage.NewFilesystemRepository(root)
	path, err := repo.ResolvePath(storage.ConfigFile)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}
