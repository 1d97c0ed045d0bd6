package starfighter

import "github.com/vovakirdan/tui-starfighter/internal/config"

// Cooldown is the weapon gauge. Firing drains it, idling refills it, and the
// weapon only fires while it is above zero.
type Cooldown struct {
	gauge float64
	max   float64
	cost  float64
	regen float64
}

// NewCooldown creates a full gauge.
func NewCooldown(cfg config.WeaponConfig) *Cooldown {
	return &Cooldown{
		gauge: cfg.MaxGauge,
		max:   cfg.MaxGauge,
		cost:  cfg.FireCost,
		regen: cfg.Regen,
	}
}

// Gauge returns the current level in [0, max].
func (c *Cooldown) Gauge() float64 {
	return c.gauge
}

// Fraction returns the level as a share of the maximum.
func (c *Cooldown) Fraction() float64 {
	return c.gauge / c.max
}

// Advance runs one tick. While fire is held and the gauge is above zero the
// gauge drains by the fire cost and Advance reports a shot. Any tick without
// a shot regenerates the gauge up to the maximum, so holding fire on an
// empty gauge still trickles out a shot whenever it refills past zero.
func (c *Cooldown) Advance(fire bool) bool {
	if fire && c.gauge > 0 {
		c.gauge = max(0, c.gauge-c.cost)
		return true
	}
	if c.gauge < c.max {
		c.gauge = min(c.max, c.gauge+c.regen)
	}
	return false
}
