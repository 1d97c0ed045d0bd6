package starfighter

import (
	"math"

	"github.com/vovakirdan/tui-starfighter/internal/config"
	"github.com/vovakirdan/tui-starfighter/internal/core"
)

// EnemySpawner keeps the enemy population topped up to its cap.
type EnemySpawner struct {
	cfg    config.EnemyConfig
	fieldW float64
	fieldH float64
	image  *core.Image
	rng    core.Rand
}

// NewEnemySpawner creates a spawner that places enemies on a fieldW x fieldH field.
func NewEnemySpawner(cfg config.EnemyConfig, field config.FieldConfig, img *core.Image, rng core.Rand) *EnemySpawner {
	return &EnemySpawner{
		cfg:    cfg,
		fieldW: field.Width,
		fieldH: field.Height,
		image:  img,
		rng:    rng,
	}
}

// Spawn returns a new enemy when fewer than the cap are alive, else nil.
// Enemies enter at the right edge. Their height is the field height divided
// by a random 1.5..5.0, which keeps most of them in the upper two thirds.
func (s *EnemySpawner) Spawn(live int) *Enemy {
	if live >= s.cfg.Cap {
		return nil
	}
	speed := core.RandRange(s.rng, s.cfg.Speed.Min, s.cfg.Speed.Max)
	divisor := float64(core.RandRange(s.rng, s.cfg.Divisor.Min, s.cfg.Divisor.Max)) / 10

	e := &Enemy{
		Entity: NewEntity(s.image, s.cfg.Health, 100),
		Speed:  float64(speed),
	}
	e.Rect.X = s.fieldW - s.cfg.SpawnInset
	e.Rect.Y = math.Floor(s.fieldH / divisor)
	return e
}
