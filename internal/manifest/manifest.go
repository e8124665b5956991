// Package manifest assembles the site.webmanifest and browserconfig.xml
// companions of a generated favicon set.
package manifest

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
)

// Options are the site fields substituted into both documents.
type Options struct {
	Name            string
	ShortName       string
	ThemeColor      string
	BackgroundColor string
	Display         string
	TileColor       string
}

// Icon is one image reference inside a web manifest.
type Icon struct {
	Src   string `json:"src"`
	Sizes string `json:"sizes"`
	Type  string `json:"type"`
}

type webManifest struct {
	Name            string `json:"name"`
	ShortName       string `json:"short_name"`
	Icons           []Icon `json:"icons"`
	ThemeColor      string `json:"theme_color"`
	BackgroundColor string `json:"background_color"`
	Display         string `json:"display"`
}

// WebManifest renders the PWA manifest referencing the android-chrome
// tiles the generator emits alongside it.
func WebManifest(opt Options) ([]byte, error) {
	short := opt.ShortName
	if short == "" {
		short = opt.Name
	}
	display := opt.Display
	if display == "" {
		display = "standalone"
	}
	m := webManifest{
		Name:      opt.Name,
		ShortName: short,
		Icons: []Icon{
			{Src: "/android-chrome-192x192.png", Sizes: "192x192", Type: "image/png"},
			{Src: "/android-chrome-512x512.png", Sizes: "512x512", Type: "image/png"},
		},
		ThemeColor:      opt.ThemeColor,
		BackgroundColor: opt.BackgroundColor,
		Display:         display,
	}
	out, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal web manifest: %w", err)
	}
	return append(out, '\n'), nil
}

type browserConfig struct {
	XMLName xml.Name      `xml:"browserconfig"`
	MSApp   msApplication `xml:"msapplication"`
}

type msApplication struct {
	Tile tile `xml:"tile"`
}

type tile struct {
	Square150 tileLogo `xml:"square150x150logo"`
	TileColor string   `xml:"TileColor"`
}

type tileLogo struct {
	Src string `xml:"src,attr"`
}

// BrowserConfig renders the Microsoft browserconfig document pointing
// at the mstile image.
func BrowserConfig(opt Options) ([]byte, error) {
	tileColor := opt.TileColor
	if tileColor == "" {
		tileColor = opt.ThemeColor
	}
	b := browserConfig{
		MSApp: msApplication{
			Tile: tile{
				Square150: tileLogo{Src: "/mstile-150x150.png"},
				TileColor: tileColor,
			},
		},
	}
	out, err := xml.MarshalIndent(b, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal browserconfig: %w", err)
	}
	doc := append([]byte(xml.Header), out...)
	return append(doc, '\n'), nil
}
