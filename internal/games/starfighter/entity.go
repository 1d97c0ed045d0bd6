package starfighter

import (
	"github.com/vovakirdan/tui-starfighter/internal/config"
	"github.com/vovakirdan/tui-starfighter/internal/core"
)

// Drawable is anything that can put itself on a canvas.
type Drawable interface {
	Draw(dst core.Canvas)
}

// Collidable exposes a bounding rectangle for overlap tests.
type Collidable interface {
	Bounds() core.Rect
}

// Movable accepts held directions and a step distance.
type Movable interface {
	Move(dirs DirectionSet, step float64) error
}

// Sprite is the visual part of an entity: where it is and what it looks like.
type Sprite struct {
	Rect  core.Rect
	Image *core.Image
}

// Bounds returns the sprite's bounding rectangle.
func (s *Sprite) Bounds() core.Rect {
	return s.Rect
}

// Draw blits the sprite image at its position.
func (s *Sprite) Draw(dst core.Canvas) {
	dst.Blit(s.Image, s.Rect.X, s.Rect.Y)
}

// Entity is the record shared by the player, enemies, the gun and food.
type Entity struct {
	Sprite
	Health  int
	Stamina int
	CanMove bool
}

// NewEntity creates a movable entity at the origin sized to its image.
func NewEntity(img *core.Image, health, stamina int) Entity {
	return Entity{
		Sprite:  Sprite{Rect: core.NewRect(0, 0, img.W, img.H), Image: img},
		Health:  health,
		Stamina: stamina,
		CanMove: true,
	}
}

// Damage subtracts n from health, flooring at zero.
func (e *Entity) Damage(n int) {
	e.Health = max(0, e.Health-n)
}

// Alive reports whether health is above zero.
func (e *Entity) Alive() bool {
	return e.Health > 0
}

// Move shifts the entity by the displacement for dirs. An immobile entity
// or the stop set does nothing.
func (e *Entity) Move(dirs DirectionSet, step float64) error {
	if !e.CanMove || dirs == Stop {
		return nil
	}
	v, err := Displacement(dirs, step)
	if err != nil {
		return err
	}
	e.Rect = e.Rect.Move(v.X, v.Y)
	return nil
}

// HitBox returns the bounding rectangle shrunk by scale around its center.
func (e *Entity) HitBox(scale float64) core.Rect {
	return e.Rect.Shrink(scale)
}

// Gun is carried by the player and drawn at a fixed offset from it.
type Gun struct {
	Entity
}

// Player is the entity controlled by input.
type Player struct {
	Entity
	Gun       *Gun
	gunOffset core.Vec
	maxHealth int
}

// NewPlayer creates the player with its gun mounted at the configured offset.
func NewPlayer(body, gun *core.Image, cfg config.PlayerConfig) *Player {
	p := &Player{
		Entity:    NewEntity(body, cfg.Health, cfg.Stamina),
		Gun:       &Gun{Entity: NewEntity(gun, cfg.Health, cfg.Stamina)},
		gunOffset: core.Vec{X: cfg.GunOffsetX, Y: cfg.GunOffsetY},
		maxHealth: cfg.Health,
	}
	p.Rect.X, p.Rect.Y = cfg.StartX, cfg.StartY
	p.mountGun()
	return p
}

// Move moves the player and carries the gun along.
func (p *Player) Move(dirs DirectionSet, step float64) error {
	if err := p.Entity.Move(dirs, step); err != nil {
		return err
	}
	p.mountGun()
	return nil
}

func (p *Player) mountGun() {
	p.Gun.Rect.X = p.Rect.X + p.gunOffset.X
	p.Gun.Rect.Y = p.Rect.Y + p.gunOffset.Y
}

// Draw blits the body, then the gun on top.
func (p *Player) Draw(dst core.Canvas) {
	p.Sprite.Draw(dst)
	p.Gun.Draw(dst)
}

// MaxHealth is the health the player started with.
func (p *Player) MaxHealth() int {
	return p.maxHealth
}

// FireTrack returns the beam rectangle for this tick: from just in front of
// the gun to the right edge of the field.
func (p *Player) FireTrack(w config.WeaponConfig, fieldW float64) core.Rect {
	x := p.Rect.X + w.TrackOffsetX
	return core.NewRect(x, p.Rect.Y+w.TrackOffsetY, max(0, fieldW-x), w.TrackThickness)
}

// Consume applies a food item to the player.
func (p *Player) Consume(f *Food) {
	p.Health += f.HealthBenefits
	p.Stamina += f.Utility
}

// Enemy drifts left at its own speed.
type Enemy struct {
	Entity
	Speed float64
}

// Food restores health and stamina when consumed.
type Food struct {
	Entity
	HealthBenefits int
	Utility        int
}

// NewFood creates a food item; zero benefits or utility default to 1.
func NewFood(img *core.Image, healthBenefits, utility int) *Food {
	if healthBenefits == 0 {
		healthBenefits = 1
	}
	if utility == 0 {
		utility = 1
	}
	return &Food{
		Entity:         NewEntity(img, 100, 100),
		HealthBenefits: healthBenefits,
		Utility:        utility,
	}
}

var (
	_ Drawable   = (*Player)(nil)
	_ Drawable   = (*Enemy)(nil)
	_ Drawable   = (*Gun)(nil)
	_ Drawable   = (*Food)(nil)
	_ Collidable = (*Player)(nil)
	_ Collidable = (*Enemy)(nil)
	_ Movable    = (*Player)(nil)
	_ Movable    = (*Enemy)(nil)
)
