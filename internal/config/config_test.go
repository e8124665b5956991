package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favigen.toml")
	doc := `
input = "logo.png"
out_dir = "dist"
sizes = [16, 32, 48]
app_name = "Example"
theme_color = "#123456"
manifest = true
icns = true
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Input != "logo.png" || cfg.OutDir != "dist" {
		t.Errorf("paths = %q / %q", cfg.Input, cfg.OutDir)
	}
	if !reflect.DeepEqual(cfg.Sizes, []int{16, 32, 48}) {
		t.Errorf("sizes = %v", cfg.Sizes)
	}
	if cfg.AppName != "Example" || cfg.ThemeColor != "#123456" {
		t.Errorf("site fields = %q / %q", cfg.AppName, cfg.ThemeColor)
	}
	if !cfg.Manifest || !cfg.ICNS || cfg.BrowserConfig {
		t.Errorf("feature toggles = %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestNormalizeDefaults(t *testing.T) {
	var cfg Config
	if err := cfg.Normalize(); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if cfg.OutDir != "." {
		t.Errorf("out dir = %q, want .", cfg.OutDir)
	}
	if !reflect.DeepEqual(cfg.Sizes, DefaultSizes) {
		t.Errorf("sizes = %v, want defaults", cfg.Sizes)
	}
}

func TestNormalizeSortsAndDedupes(t *testing.T) {
	cfg := Config{Sizes: []int{64, 16, 64, 32, 16}}
	if err := cfg.Normalize(); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if !reflect.DeepEqual(cfg.Sizes, []int{16, 32, 64}) {
		t.Errorf("sizes = %v, want [16 32 64]", cfg.Sizes)
	}
}

func TestNormalizeRejectsBadSizes(t *testing.T) {
	for _, size := range []int{0, -4, 257, 512} {
		cfg := Config{Sizes: []int{size}}
		if err := cfg.Normalize(); err == nil {
			t.Errorf("size %d accepted, want error", size)
		}
	}
}
