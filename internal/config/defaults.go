package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/starfighter.yaml
var defaultStarfighterYAML []byte

// DefaultConfig returns the default starfighter configuration.
func DefaultConfig() StarfighterConfig {
	return StarfighterConfig{
		Field: FieldConfig{
			Width:  1080,
			Height: 720,
		},
		TickRate: 100,
		Player: PlayerConfig{
			Step:        5,
			Health:      100,
			Stamina:     100,
			SpriteWidth: 50,
			GunOffsetX:  35,
			GunOffsetY:  30,
		},
		Weapon: WeaponConfig{
			MaxGauge:       100,
			FireCost:       1,
			Regen:          0.5,
			TrackOffsetX:   80,
			TrackOffsetY:   35,
			TrackThickness: 5,
		},
		Enemies: EnemyConfig{
			Cap:         3,
			Health:      150,
			SpriteWidth: 50,
			SpawnInset:  50,
			Speed:       RangeConfig{Min: 1, Max: 4},
			Divisor:     RangeConfig{Min: 15, Max: 50},
			HitboxScale: 2.5,
		},
		Damage: RangeConfig{Min: 5, Max: 10},
		Stars: StarConfig{
			Size:  RangeConfig{Min: 2, Max: 4},
			Speed: RangeConfig{Min: -20, Max: -2},
		},
		Input: InputConfig{
			ReleaseAfter: 600 * time.Millisecond,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultStarfighterYAML
}
