package starfighter

import (
	"github.com/vovakirdan/tui-starfighter/internal/config"
	"github.com/vovakirdan/tui-starfighter/internal/core"
)

// Star is a decorative background particle.
type Star struct {
	Rect  core.Rect
	Speed float64 // Negative: stars scroll left
}

// StarField spawns one star per tick at the right edge and scrolls them all.
type StarField struct {
	stars  []Star
	cfg    config.StarConfig
	fieldW float64
	fieldH float64
	rng    core.Rand
}

// NewStarField creates an empty star field.
func NewStarField(cfg config.StarConfig, field config.FieldConfig, rng core.Rand) *StarField {
	return &StarField{
		stars:  make([]Star, 0, 128),
		cfg:    cfg,
		fieldW: field.Width,
		fieldH: field.Height,
		rng:    rng,
	}
}

// Advance spawns a star, moves every star by its speed and culls the ones
// that have fully left the field.
func (f *StarField) Advance() {
	size := float64(core.RandRange(f.rng, f.cfg.Size.Min, f.cfg.Size.Max))
	y := float64(core.RandRange(f.rng, 1, int(f.fieldH)))
	speed := float64(core.RandRange(f.rng, f.cfg.Speed.Min, f.cfg.Speed.Max))
	f.stars = append(f.stars, Star{
		Rect:  core.NewRect(f.fieldW-1, y, size, size),
		Speed: speed,
	})

	visible := f.stars[:0]
	for _, s := range f.stars {
		s.Rect = s.Rect.Move(s.Speed, 0)
		if s.Rect.Right() >= 0 {
			visible = append(visible, s)
		}
	}
	f.stars = visible
}

// Stars returns the live stars.
func (f *StarField) Stars() []Star {
	return f.stars
}

// Draw paints every star white. Bigger stars get a brighter glyph.
func (f *StarField) Draw(dst core.Canvas) {
	for _, s := range f.stars {
		glyph := '.'
		if s.Rect.W >= 4 {
			glyph = '*'
		}
		dst.FillRect(s.Rect, glyph, core.ColorWhite)
	}
}
