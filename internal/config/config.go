// Package config provides the configuration of the invoicer binaries, read
// from TOML files with environment-specific overlays and environment
// variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/pelletier/go-toml/v2"
)

const (
	// BaseConfigFile is the primary configuration file name.
	BaseConfigFile = "config.toml"

	// OverlayConfigPattern is the file name pattern for environment-specific overlays.
	OverlayConfigPattern = "config.%s.toml"

	// EnvInvoicerEnv selects the configuration overlay.
	EnvInvoicerEnv = "INVOICER_ENV"

	// EnvInvoicerTrace overrides the trace level.
	EnvInvoicerTrace = "INVOICER_TRACE"
)

// Config is the root configuration.
type Config struct {
	Fonts     FontsConfig    `toml:"fonts"`
	Page      PageConfig     `toml:"page"`
	Documents DocumentConfig `toml:"documents"`
	Server    ServerConfig   `toml:"server"`
	Trace     string         `toml:"trace"`
}

// Load reads the configuration file at path and applies the overlay for
// the environment named by INVOICER_ENV, searched next to it. An empty path
// yields an empty configuration, to be completed by Finalize.
func Load(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}
	cfg, err := load(path)
	if err != nil {
		return nil, err
	}
	if overlay := overlayPath(filepath.Dir(path)); overlay != "" {
		o, err := load(overlay)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", overlay, err)
		}
		cfg.Merge(o)
	}
	return cfg, nil
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Fonts.Finalize(); err != nil {
		return fmt.Errorf("fonts: %w", err)
	}
	if err := c.Page.Finalize(); err != nil {
		return fmt.Errorf("page: %w", err)
	}
	if err := c.Documents.Finalize(); err != nil {
		return fmt.Errorf("documents: %w", err)
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	if overlay.Trace != "" {
		c.Trace = overlay.Trace
	}
	c.Fonts.Merge(&overlay.Fonts)
	c.Page.Merge(&overlay.Page)
	c.Documents.Merge(&overlay.Documents)
	c.Server.Merge(&overlay.Server)
}

// TraceLevel returns the configured level for the core tracer.
func (c *Config) TraceLevel() tracing.TraceLevel {
	level, _ := parseLevel(c.Trace)
	return level
}

func (c *Config) loadDefaults() {
	if c.Trace == "" {
		c.Trace = "info"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvInvoicerTrace); v != "" {
		c.Trace = v
	}
}

func (c *Config) validate() error {
	if _, ok := parseLevel(c.Trace); !ok {
		return fmt.Errorf("invalid trace level %q", c.Trace)
	}
	return nil
}

func parseLevel(s string) (tracing.TraceLevel, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return tracing.LevelDebug, true
	case "info":
		return tracing.LevelInfo, true
	case "error":
		return tracing.LevelError, true
	}
	return tracing.LevelInfo, false
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath(dir string) string {
	if env := os.Getenv(EnvInvoicerEnv); env != "" {
		p := filepath.Join(dir, fmt.Sprintf(OverlayConfigPattern, env))
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
