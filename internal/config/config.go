// Package config holds the generator settings and their TOML file form.
package config

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
)

// DefaultSizes are the .ico member sizes used when none are configured.
var DefaultSizes = []int{16, 24, 32, 48, 64, 128, 256}

// Config is the full set of generator settings. Zero values mean
// "not set" so command-line flags can override file values.
type Config struct {
	Input  string `toml:"input"`
	OutDir string `toml:"out_dir"`
	Sizes  []int  `toml:"sizes"`

	AppName         string `toml:"app_name"`
	ShortName       string `toml:"short_name"`
	ThemeColor      string `toml:"theme_color"`
	BackgroundColor string `toml:"background_color"`
	TileColor       string `toml:"tile_color"`

	Manifest      bool `toml:"manifest"`
	BrowserConfig bool `toml:"browserconfig"`
	ICNS          bool `toml:"icns"`
}

// Load decodes a TOML settings file.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Normalize fills defaults and sorts the size list ascending, dropping
// duplicates. It rejects sizes the ICO directory cannot express.
func (c *Config) Normalize() error {
	if c.OutDir == "" {
		c.OutDir = "."
	}
	if len(c.Sizes) == 0 {
		c.Sizes = append([]int(nil), DefaultSizes...)
	}

	seen := make(map[int]bool, len(c.Sizes))
	sizes := c.Sizes[:0]
	for _, s := range c.Sizes {
		if s <= 0 || s > 256 {
			return fmt.Errorf("icon size %d is outside 1..256", s)
		}
		if seen[s] {
			continue
		}
		seen[s] = true
		sizes = append(sizes, s)
	}
	sort.Ints(sizes)
	c.Sizes = sizes
	return nil
}
