// Package config defines the farm shop's typed configuration.
package config

import (
	"fmt"
	"strings"

	"github.com/greenacre/farmshop/pkg/config/configloader"
)

var _ configloader.Validator = (*Config)(nil)

// Config is the full configuration of the farmshop binary.
type Config struct {
	Shop      ShopConfig      `koanf:"shop"`
	Inventory InventoryConfig `koanf:"inventory"`
	Log       LogConfig       `koanf:"log"`
}

// ShopConfig carries the shop's presentation settings.
type ShopConfig struct {
	Name string `koanf:"name"`
}

// InventoryConfig selects the inventory variant the shop runs with.
type InventoryConfig struct {
	// Type is either "basic" (single-item operations only) or "fancy"
	// (bulk operations, best quality served first).
	Type string `koanf:"type"`
}

// LogConfig carries the logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Defaults returns the built-in configuration values, used as the lowest
// priority layer of the loader.
func Defaults() map[string]any {
	return map[string]any{
		"shop.name":      "The Greenacre Farm Shop",
		"inventory.type": "basic",
		"log.level":      "info",
		"log.format":     "text",
	}
}

// String returns a printable dump of the configuration.
func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("\n--- Shop ---\n")
	b.WriteString(fmt.Sprintf("  shop.name: %s\n", c.Shop.Name))
	b.WriteString(fmt.Sprintf("  inventory.type: %s\n", c.Inventory.Type))
	b.WriteString("\n--- Logging ---\n")
	b.WriteString(fmt.Sprintf("  log.level: %s\n", c.Log.Level))
	b.WriteString(fmt.Sprintf("  log.format: %s\n", c.Log.Format))
	return b.String()
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if c.Shop.Name == "" {
		return fmt.Errorf("shop.name must not be empty")
	}
	switch c.Inventory.Type {
	case "basic", "fancy":
	default:
		return fmt.Errorf("inventory.type must be 'basic' or 'fancy', got %q", c.Inventory.Type)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be 'text' or 'json', got %q", c.Log.Format)
	}
	return nil
}
