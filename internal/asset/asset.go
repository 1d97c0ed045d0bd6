// Package asset provides the sprite catalog: glyph art loaded from YAML and
// scaled to the logical size a game asks for.
package asset

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-starfighter/internal/core"
)

//go:embed sprites.yaml
var defaultCatalogYAML []byte

var (
	// ErrMissingScaleDimension is returned when a sprite is requested with
	// neither a width nor a height.
	ErrMissingScaleDimension = errors.New("asset: width or height required")

	// ErrUnknownAsset is returned for names not present in the catalog.
	ErrUnknownAsset = errors.New("asset: unknown sprite")
)

// Source is one catalog entry.
type Source struct {
	Width  float64  `yaml:"width"`
	Height float64  `yaml:"height"`
	Color  string   `yaml:"color"`
	Mirror bool     `yaml:"mirror"`
	Flip   bool     `yaml:"flip"`
	Art    []string `yaml:"art"`
}

// Catalog is the YAML document layout.
type Catalog struct {
	Sprites map[string]Source `yaml:"sprites"`
}

type cacheKey struct {
	name string
	w, h float64
}

// Library loads and caches scaled sprite images.
type Library struct {
	sources map[string]Source
	cache   map[cacheKey]*core.Image
	logger  *log.Logger
}

// NewLibrary parses the embedded sprite catalog.
func NewLibrary(logger *log.Logger) (*Library, error) {
	return Parse(defaultCatalogYAML, logger)
}

// Parse builds a library from catalog YAML.
func Parse(data []byte, logger *log.Logger) (*Library, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("asset: cannot parse catalog: %w", err)
	}
	for name, src := range cat.Sprites {
		if src.Width <= 0 || src.Height <= 0 {
			return nil, fmt.Errorf("asset: sprite %q has no native size", name)
		}
		if len(src.Art) == 0 {
			return nil, fmt.Errorf("asset: sprite %q has no art", name)
		}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Library{
		sources: cat.Sprites,
		cache:   make(map[cacheKey]*core.Image),
		logger:  logger,
	}, nil
}

// Names returns the catalog entries in no particular order.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.sources))
	for name := range l.sources {
		names = append(names, name)
	}
	return names
}

// Load returns the named sprite scaled to fit within width x height.
// A zero dimension keeps the native size on that axis, and both zero is an
// error. Mirror and flip from the catalog are applied here, once, so the
// game loop only ever blits prepared images.
func (l *Library) Load(name string, width, height float64) (*core.Image, error) {
	if width <= 0 && height <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingScaleDimension, name)
	}
	key := cacheKey{name: name, w: width, h: height}
	if img, ok := l.cache[key]; ok {
		return img, nil
	}

	src, ok := l.sources[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAsset, name)
	}

	maxW, maxH := src.Width, src.Height
	if width > 0 {
		maxW = width
	}
	if height > 0 {
		maxH = height
	}
	w, h := Thumbnail(src.Width, src.Height, maxW, maxH)
	l.logger.Debug("scaled sprite", "name", name,
		"native", fmt.Sprintf("%vx%v", src.Width, src.Height),
		"scaled", fmt.Sprintf("%vx%v", w, h))

	img := &core.Image{
		Name:   name,
		W:      w,
		H:      h,
		Glyphs: make([][]rune, len(src.Art)),
		Color:  parseColor(src.Color),
	}
	for i, row := range src.Art {
		img.Glyphs[i] = []rune(row)
	}
	if src.Mirror {
		img = Mirror(img)
	}
	if src.Flip {
		img = Flip(img)
	}

	l.cache[key] = img
	return img, nil
}

// Thumbnail fits a w x h box inside maxW x maxH, preserving the aspect
// ratio and never enlarging. Results are rounded to whole pixels.
func Thumbnail(w, h, maxW, maxH float64) (float64, float64) {
	if w > maxW {
		h = math.Max(1, math.Round(h*maxW/w))
		w = maxW
	}
	if h > maxH {
		w = math.Max(1, math.Round(w*maxH/h))
		h = maxH
	}
	return w, h
}

// parseColor converts a hex string, defaulting to white.
func parseColor(hex string) core.Color {
	if hex == "" {
		return core.ColorWhite
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return core.ColorWhite
	}
	r, g, b := c.RGB255()
	return core.Color{R: r, G: g, B: b}
}
