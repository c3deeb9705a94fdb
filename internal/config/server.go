package config

import (
	"fmt"
	"os"
	"time"

	"github.com/docker/go-units"
)

// EnvInvoicerAddr overrides the listen address of the server.
const EnvInvoicerAddr = "INVOICER_ADDR"

// ServerConfig configures the HTTP download endpoint.
type ServerConfig struct {
	Addr            string `toml:"addr"`
	BodyLimit       string `toml:"body_limit"`
	ShutdownTimeout string `toml:"shutdown_timeout"`
}

// BodyLimitBytes returns the request body limit in bytes.
func (c *ServerConfig) BodyLimitBytes() int64 {
	n, _ := units.RAMInBytes(c.BodyLimit)
	return n
}

// ShutdownTimeoutDuration parses and returns the shutdown timeout as a time.Duration.
func (c *ServerConfig) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

func (c *ServerConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	if _, err := units.RAMInBytes(c.BodyLimit); err != nil {
		return fmt.Errorf("invalid body_limit: %w", err)
	}
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

func (c *ServerConfig) Merge(overlay *ServerConfig) {
	if overlay.Addr != "" {
		c.Addr = overlay.Addr
	}
	if overlay.BodyLimit != "" {
		c.BodyLimit = overlay.BodyLimit
	}
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
}

func (c *ServerConfig) loadDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.BodyLimit == "" {
		c.BodyLimit = "8MB"
	}
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "10s"
	}
}

func (c *ServerConfig) loadEnv() {
	if v := os.Getenv(EnvInvoicerAddr); v != "" {
		c.Addr = v
	}
}
