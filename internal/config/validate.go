package config

import (
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateCatalog() error {
	known := make(map[string]struct{}, len(c.Catalog.Categories))
	for _, category := range c.Catalog.Categories {
		known[category] = struct{}{}
	}
	if len(c.Catalog.Categories) > 0 {
		for _, layered := range c.Catalog.Layered {
			if _, ok := known[layered]; !ok {
				return fmt.Errorf("catalog.layered entry %q is not one of catalog.categories", layered)
			}
		}
	}
	for _, ext := range c.Catalog.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("catalog.extensions entry %q must start with a dot", ext)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
