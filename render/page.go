package render

import (
	"fmt"
)

const ptPerMM = 72 / 25.4

// PageConfig is the page geometry, in millimetres. Margins are uniform on
// all four edges.
type PageConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Margin float64 `toml:"margin"`
}

// A4 is the default page geometry, A4 portrait with 15 mm margins.
func A4() PageConfig {
	return PageConfig{Width: 210, Height: 297, Margin: 15}
}

// Validate checks that the margins leave room for content.
func (c PageConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 || c.Margin < 0 {
		return fmt.Errorf("render: invalid page geometry %.1fx%.1f mm, margin %.1f mm", c.Width, c.Height, c.Margin)
	}
	if 2*c.Margin >= c.Width || 2*c.Margin >= c.Height {
		return fmt.Errorf("render: margins of %.1f mm leave no room on a %.1fx%.1f mm page", c.Margin, c.Width, c.Height)
	}
	return nil
}

// points returns page width, height and margin in points.
func (c PageConfig) points() (w, h, m float64) {
	return c.Width * ptPerMM, c.Height * ptPerMM, c.Margin * ptPerMM
}
