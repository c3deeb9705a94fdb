package config

import (
	"fmt"
	"os"

	"github.com/docker/go-units"
	"github.com/npillmayer/invoicer/font"
	"github.com/npillmayer/invoicer/render"
)

// EnvInvoicerFont overrides the path of the right-to-left font.
const EnvInvoicerFont = "INVOICER_FONT"

// FontsConfig locates the typeface for right-to-left documents.
type FontsConfig struct {
	Family  string `toml:"family"`
	Regular string `toml:"regular"`
	Bold    string `toml:"bold"`
}

// Font returns the loader configuration.
func (c *FontsConfig) Font() font.Config {
	return font.Config{Family: c.Family, Regular: c.Regular, Bold: c.Bold}
}

func (c *FontsConfig) Finalize() error {
	if c.Family == "" {
		c.Family = font.DefaultRTLFamily
	}
	if c.Regular == "" {
		c.Regular = font.DefaultRTLPath
	}
	if v := os.Getenv(EnvInvoicerFont); v != "" {
		c.Regular = v
	}
	return nil
}

func (c *FontsConfig) Merge(overlay *FontsConfig) {
	if overlay.Family != "" {
		c.Family = overlay.Family
	}
	if overlay.Regular != "" {
		c.Regular = overlay.Regular
	}
	if overlay.Bold != "" {
		c.Bold = overlay.Bold
	}
}

// PageConfig is the page geometry in millimetres.
type PageConfig struct {
	render.PageConfig
}

func (c *PageConfig) Finalize() error {
	a4 := render.A4()
	if c.Width == 0 {
		c.Width = a4.Width
	}
	if c.Height == 0 {
		c.Height = a4.Height
	}
	if c.Margin == 0 {
		c.Margin = a4.Margin
	}
	return c.Validate()
}

func (c *PageConfig) Merge(overlay *PageConfig) {
	if overlay.Width != 0 {
		c.Width = overlay.Width
	}
	if overlay.Height != 0 {
		c.Height = overlay.Height
	}
	if overlay.Margin != 0 {
		c.Margin = overlay.Margin
	}
}

// DocumentConfig holds limits for document input.
type DocumentConfig struct {
	MaxLogoSize string `toml:"max_logo_size"`
}

// MaxLogoBytes returns the logo size limit in bytes.
func (c *DocumentConfig) MaxLogoBytes() int64 {
	n, _ := units.RAMInBytes(c.MaxLogoSize)
	return n
}

func (c *DocumentConfig) Finalize() error {
	if c.MaxLogoSize == "" {
		c.MaxLogoSize = "2MB"
	}
	if _, err := units.RAMInBytes(c.MaxLogoSize); err != nil {
		return fmt.Errorf("invalid max_logo_size: %w", err)
	}
	return nil
}

func (c *DocumentConfig) Merge(overlay *DocumentConfig) {
	if overlay.MaxLogoSize != "" {
		c.MaxLogoSize = overlay.MaxLogoSize
	}
}
