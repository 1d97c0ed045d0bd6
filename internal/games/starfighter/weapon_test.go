package starfighter

import (
	"testing"

	"github.com/vovakirdan/tui-starfighter/internal/config"
)

func TestCooldownDrainsWhileFiring(t *testing.T) {
	c := NewCooldown(config.DefaultConfig().Weapon)
	for i := range 3 {
		if !c.Advance(true) {
			t.Fatalf("tick %d: expected a shot", i)
		}
	}
	if c.Gauge() != 97 {
		t.Errorf("expected gauge 97, got %v", c.Gauge())
	}
}

func TestCooldownHeldFireAtEmptyRefillsAndFiresAgain(t *testing.T) {
	cfg := config.DefaultConfig().Weapon
	cfg.MaxGauge = 2
	c := NewCooldown(cfg)

	c.Advance(true)
	c.Advance(true)
	if c.Gauge() != 0 {
		t.Fatalf("expected empty gauge, got %v", c.Gauge())
	}

	// Empty: the tick refills instead of firing.
	if c.Advance(true) {
		t.Fatal("empty gauge should not fire")
	}
	if c.Gauge() != 0.5 {
		t.Fatalf("expected regen to 0.5 while fire is held, got %v", c.Gauge())
	}
	// Above zero again: the held key fires.
	if !c.Advance(true) {
		t.Fatal("expected a shot once the gauge refilled")
	}

	shots := 0
	for range 500 {
		if c.Advance(true) {
			shots++
		}
	}
	// One shot per refill-and-fire pair of ticks.
	if shots != 250 {
		t.Errorf("expected 250 trickled shots over 500 held ticks, got %d", shots)
	}
}

func TestCooldownRegenCapsAtMax(t *testing.T) {
	c := NewCooldown(config.DefaultConfig().Weapon)
	c.Advance(true) // 99
	c.Advance(false)
	if c.Gauge() != 99.5 {
		t.Errorf("expected 99.5, got %v", c.Gauge())
	}
	for range 10 {
		c.Advance(false)
	}
	if c.Gauge() != 100 {
		t.Errorf("expected gauge capped at 100, got %v", c.Gauge())
	}
	if c.Fraction() != 1 {
		t.Errorf("expected fraction 1, got %v", c.Fraction())
	}
}

func TestCooldownCostFloorsAtZero(t *testing.T) {
	cfg := config.DefaultConfig().Weapon
	cfg.MaxGauge = 1.5
	c := NewCooldown(cfg)
	c.Advance(true)
	c.Advance(true)
	if c.Gauge() != 0 {
		t.Errorf("expected 0, got %v", c.Gauge())
	}
}
