// Command favigen generates a site's favicon assets from one source
// image: a multi-size favicon.ico, per-size PNGs, and optionally a web
// manifest, a browserconfig and a macOS .icns.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jackmordaunt/icns/v3"

	"github.com/TDanks2000/favigen/internal/config"
	"github.com/TDanks2000/favigen/internal/fsutil"
	"github.com/TDanks2000/favigen/internal/ico"
	"github.com/TDanks2000/favigen/internal/manifest"
	"github.com/TDanks2000/favigen/internal/render"
	"github.com/TDanks2000/favigen/internal/ui"
)

const (
	appleTouchSize = 180
	mstileSize     = 150
)

var chromeTileSizes = []int{192, 512}

var (
	inputPath  string
	outDir     string
	sizesFlag  string
	configPath string

	appName         string
	shortName       string
	themeColor      string
	backgroundColor string
	tileColor       string

	withManifest      bool
	withBrowserConfig bool
	withICNS          bool

	dryRun  bool
	force   bool
	quiet   bool
	noColor bool
)

func init() {
	flag.StringVar(&inputPath, "i", "", "source image (png, jpeg, gif, bmp, tiff or webp)")
	flag.StringVar(&outDir, "o", "", "output directory (default .)")
	flag.StringVar(&sizesFlag, "sizes", "", "comma-separated .ico member sizes (default 16,24,32,48,64,128,256)")
	flag.StringVar(&configPath, "c", "", "TOML config file with defaults for all options")
	flag.StringVar(&appName, "name", "", "application name for the web manifest")
	flag.StringVar(&shortName, "short-name", "", "short application name (default same as -name)")
	flag.StringVar(&themeColor, "theme-color", "", "manifest theme color, e.g. #2b5797")
	flag.StringVar(&backgroundColor, "background-color", "", "manifest background color")
	flag.StringVar(&tileColor, "tile-color", "", "browserconfig tile color (default theme color)")
	flag.BoolVar(&withManifest, "manifest", false, "emit site.webmanifest and android-chrome tiles")
	flag.BoolVar(&withBrowserConfig, "browserconfig", false, "emit browserconfig.xml and mstile image")
	flag.BoolVar(&withICNS, "icns", false, "also emit a macOS AppIcon.icns")
	flag.BoolVar(&dryRun, "dry-run", false, "print what would be written and exit")
	flag.BoolVar(&force, "f", false, "overwrite existing files without asking")
	flag.BoolVar(&quiet, "q", false, "suppress everything but errors")
	flag.BoolVar(&noColor, "no-color", false, "disable colored output")
}

// asset is one file the run will produce.
type asset struct {
	name string
	data []byte
}

func main() {
	flag.Parse()
	if noColor {
		ui.DisableColor()
	}
	p := &ui.Printer{Quiet: quiet, Out: os.Stdout, Err: os.Stderr}
	if err := run(p); err != nil {
		p.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(p *ui.Printer) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	if cfg.Input == "" {
		flag.Usage()
		return fmt.Errorf("no input image, pass -i")
	}

	src, err := render.Open(cfg.Input)
	if err != nil {
		return err
	}
	p.Infof("source %s (%dx%d)", cfg.Input, src.Bounds().Dx(), src.Bounds().Dy())

	assets, err := buildAssets(p, src, cfg)
	if err != nil {
		return err
	}

	if dryRun {
		p.Headerf("dry run, would write to %s:", cfg.OutDir)
		for _, a := range assets {
			p.Infof("  %-28s %6d bytes", a.name, len(a.data))
		}
		return nil
	}

	if err := confirmOverwrites(p, cfg.OutDir, assets); err != nil {
		return err
	}
	if err := fsutil.EnsureDir(cfg.OutDir); err != nil {
		return err
	}
	for _, a := range assets {
		if err := fsutil.WriteFile(filepath.Join(cfg.OutDir, a.name), a.data, true); err != nil {
			return err
		}
		p.Successf("%s (%d bytes)", a.name, len(a.data))
	}
	p.Headerf("%d files written to %s", len(assets), cfg.OutDir)
	return nil
}

// buildConfig merges the optional TOML file with command-line flags.
// A flag set on the command line always wins over the file.
func buildConfig() (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["i"] || cfg.Input == "" {
		cfg.Input = inputPath
	}
	if set["o"] || cfg.OutDir == "" {
		cfg.OutDir = outDir
	}
	if set["sizes"] {
		sizes, err := parseSizes(sizesFlag)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Sizes = sizes
	}
	if set["name"] || cfg.AppName == "" {
		cfg.AppName = appName
	}
	if set["short-name"] || cfg.ShortName == "" {
		cfg.ShortName = shortName
	}
	if set["theme-color"] || cfg.ThemeColor == "" {
		cfg.ThemeColor = themeColor
	}
	if set["background-color"] || cfg.BackgroundColor == "" {
		cfg.BackgroundColor = backgroundColor
	}
	if set["tile-color"] || cfg.TileColor == "" {
		cfg.TileColor = tileColor
	}
	if set["manifest"] {
		cfg.Manifest = withManifest
	}
	if set["browserconfig"] {
		cfg.BrowserConfig = withBrowserConfig
	}
	if set["icns"] {
		cfg.ICNS = withICNS
	}

	if err := cfg.Normalize(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// parseSizes reads a comma-separated size list like "16,32,48".
func parseSizes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("bad size %q in -sizes", part)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("-sizes lists no sizes")
	}
	return sizes, nil
}

// buildAssets renders every output file into memory. Nothing touches
// the filesystem here, so a dry run sees the exact final byte counts.
func buildAssets(p *ui.Printer, src image.Image, cfg config.Config) ([]asset, error) {
	results, renderErrs := render.Sizes(src, cfg.Sizes)
	for _, err := range renderErrs {
		p.Warnf("%v, size dropped", err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("every icon size failed to render")
	}

	pngs := make([][]byte, len(results))
	for i, r := range results {
		pngs[i] = r.PNG
	}
	icoData, warns, err := ico.Encode(pngs)
	if err != nil {
		return nil, err
	}
	for _, w := range warns {
		p.Warnf("%s", w)
	}

	assets := []asset{{"favicon.ico", icoData}}
	for _, r := range results {
		assets = append(assets, asset{fmt.Sprintf("favicon-%dx%d.png", r.Size, r.Size), r.PNG})
	}

	appleTouch, err := render.Square(src, appleTouchSize)
	if err != nil {
		return nil, err
	}
	assets = append(assets, asset{"apple-touch-icon.png", appleTouch})

	opt := manifest.Options{
		Name:            cfg.AppName,
		ShortName:       cfg.ShortName,
		ThemeColor:      cfg.ThemeColor,
		BackgroundColor: cfg.BackgroundColor,
		TileColor:       cfg.TileColor,
	}

	if cfg.Manifest {
		for _, size := range chromeTileSizes {
			tile, err := render.Square(src, size)
			if err != nil {
				return nil, err
			}
			assets = append(assets, asset{fmt.Sprintf("android-chrome-%dx%d.png", size, size), tile})
		}
		doc, err := manifest.WebManifest(opt)
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset{"site.webmanifest", doc})
	}

	if cfg.BrowserConfig {
		tile, err := render.Square(src, mstileSize)
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset{fmt.Sprintf("mstile-%dx%d.png", mstileSize, mstileSize), tile})
		doc, err := manifest.BrowserConfig(opt)
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset{"browserconfig.xml", doc})
	}

	if cfg.ICNS {
		var buf bytes.Buffer
		if err := icns.Encode(&buf, src); err != nil {
			return nil, fmt.Errorf("encode icns: %w", err)
		}
		assets = append(assets, asset{"AppIcon.icns", buf.Bytes()})
	}

	return assets, nil
}

// confirmOverwrites asks before clobbering existing files. -f skips
// the prompt; in quiet mode there is nobody to ask, so existing files
// are an error instead.
func confirmOverwrites(p *ui.Printer, dir string, assets []asset) error {
	if force {
		return nil
	}
	var existing []string
	for _, a := range assets {
		if fsutil.Exists(filepath.Join(dir, a.name)) {
			existing = append(existing, a.name)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if quiet {
		return fmt.Errorf("refusing to overwrite %s without -f", strings.Join(existing, ", "))
	}
	prompt := fmt.Sprintf("overwrite %s?", strings.Join(existing, ", "))
	if !ui.Confirm(os.Stdin, os.Stdout, prompt) {
		return fmt.Errorf("aborted, nothing written")
	}
	return nil
}
