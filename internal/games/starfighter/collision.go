package starfighter

import (
	"github.com/vovakirdan/tui-starfighter/internal/config"
	"github.com/vovakirdan/tui-starfighter/internal/core"
)

// CollisionResolver moves enemies and settles beam hits and contact damage.
type CollisionResolver struct {
	damage      config.RangeConfig
	hitboxScale float64
	rng         core.Rand
}

// NewCollisionResolver creates a resolver rolling damage in the given range.
func NewCollisionResolver(damage config.RangeConfig, hitboxScale float64, rng core.Rand) *CollisionResolver {
	return &CollisionResolver{damage: damage, hitboxScale: hitboxScale, rng: rng}
}

// Outcome is the result of one resolution pass.
type Outcome struct {
	Survivors  []*Enemy
	Killed     int
	Missed     int
	PlayerHits int
	EnemyHits  int
}

// Resolve advances every enemy by its speed, applies damage from the beam
// and from contact, and removes enemies that left the field or died.
// Damage is rolled for every overlapping pair on every tick, so sustained
// contact keeps hurting. The enemies slice is reused for the survivors.
func (r *CollisionResolver) Resolve(enemies []*Enemy, player *Player, track *core.Rect) Outcome {
	out := Outcome{Survivors: enemies[:0]}
	for _, e := range enemies {
		e.Rect = e.Rect.Move(-e.Speed, 0)

		if track != nil && track.Intersects(e.Bounds()) {
			e.Damage(r.roll())
			out.EnemyHits++
		}
		if e.HitBox(r.hitboxScale).Intersects(player.Bounds()) {
			player.Damage(r.roll())
			out.PlayerHits++
		}

		switch {
		case e.Rect.Right() < 0:
			out.Missed++
		case !e.Alive():
			out.Killed++
		default:
			out.Survivors = append(out.Survivors, e)
		}
	}
	// Drop references held past the new length.
	clear(enemies[len(out.Survivors):])
	return out
}

func (r *CollisionResolver) roll() int {
	return core.RandRange(r.rng, r.damage.Min, r.damage.Max)
}
