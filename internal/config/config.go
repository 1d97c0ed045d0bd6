// Package config provides YAML-based tuning for the starfighter game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// StarfighterConfig contains all tunable parameters of the game.
type StarfighterConfig struct {
	Field    FieldConfig  `yaml:"field"`
	TickRate int          `yaml:"tick_rate"`
	Player   PlayerConfig `yaml:"player"`
	Weapon   WeaponConfig `yaml:"weapon"`
	Enemies  EnemyConfig  `yaml:"enemies"`
	Damage   RangeConfig  `yaml:"damage"`
	Stars    StarConfig   `yaml:"stars"`
	Input    InputConfig  `yaml:"input"`
	Log      LogConfig    `yaml:"log"`
}

// FieldConfig is the logical play-field size in pixels.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player sprite.
type PlayerConfig struct {
	Step        float64 `yaml:"step"` // Distance moved per tick
	Health      int     `yaml:"health"`
	Stamina     int     `yaml:"stamina"`
	SpriteWidth float64 `yaml:"sprite_width"`
	StartX      float64 `yaml:"start_x"`
	StartY      float64 `yaml:"start_y"`
	GunOffsetX  float64 `yaml:"gun_offset_x"`
	GunOffsetY  float64 `yaml:"gun_offset_y"`
}

// WeaponConfig defines the cooldown gauge and the fire-track geometry.
type WeaponConfig struct {
	MaxGauge       float64 `yaml:"max_gauge"`
	FireCost       float64 `yaml:"fire_cost"`
	Regen          float64 `yaml:"regen"`
	TrackOffsetX   float64 `yaml:"track_offset_x"`
	TrackOffsetY   float64 `yaml:"track_offset_y"`
	TrackThickness float64 `yaml:"track_thickness"`
}

// EnemyConfig defines spawning and enemy stats.
type EnemyConfig struct {
	Cap         int         `yaml:"cap"`
	Health      int         `yaml:"health"`
	SpriteWidth float64     `yaml:"sprite_width"`
	SpawnInset  float64     `yaml:"spawn_inset"` // Distance from the right edge
	Speed       RangeConfig `yaml:"speed"`
	// Spawn Y is field height divided by Divisor/10, so 15..50 gives 1.5..5.0.
	Divisor     RangeConfig `yaml:"divisor"`
	HitboxScale float64     `yaml:"hitbox_scale"`
}

// StarConfig defines background star attributes.
type StarConfig struct {
	Size  RangeConfig `yaml:"size"`
	Speed RangeConfig `yaml:"speed"`
}

// RangeConfig is an inclusive integer range.
type RangeConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// InputConfig tunes the terminal input adapter.
type InputConfig struct {
	// ReleaseAfter is how long a key counts as held after its last press
	// or auto-repeat, since terminals do not report key releases.
	ReleaseAfter time.Duration `yaml:"release_after"`
}

// LogConfig selects where logs go while the game owns the terminal.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Validate checks that every range and size is usable.
func (c StarfighterConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("%w: field must be positive, got %vx%v", ErrInvalidConfig, c.Field.Width, c.Field.Height)
	case c.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalidConfig, c.TickRate)
	case c.Player.Step < 0:
		return fmt.Errorf("%w: player.step must not be negative", ErrInvalidConfig)
	case c.Player.SpriteWidth <= 0 || c.Enemies.SpriteWidth <= 0:
		return fmt.Errorf("%w: sprite widths must be positive", ErrInvalidConfig)
	case c.Weapon.MaxGauge <= 0 || c.Weapon.FireCost <= 0 || c.Weapon.Regen < 0:
		return fmt.Errorf("%w: weapon gauge, cost and regen out of range", ErrInvalidConfig)
	case c.Enemies.Cap < 0:
		return fmt.Errorf("%w: enemies.cap must not be negative", ErrInvalidConfig)
	case c.Enemies.HitboxScale <= 0:
		return fmt.Errorf("%w: enemies.hitbox_scale must be positive", ErrInvalidConfig)
	case c.Enemies.Divisor.Min <= 0:
		return fmt.Errorf("%w: enemies.divisor.min must be positive", ErrInvalidConfig)
	}

	ranges := map[string]RangeConfig{
		"damage":          c.Damage,
		"enemies.speed":   c.Enemies.Speed,
		"enemies.divisor": c.Enemies.Divisor,
		"stars.size":      c.Stars.Size,
		"stars.speed":     c.Stars.Speed,
	}
	for name, r := range ranges {
		if r.Min > r.Max {
			return fmt.Errorf("%w: %s min %d exceeds max %d", ErrInvalidConfig, name, r.Min, r.Max)
		}
	}
	return nil
}
