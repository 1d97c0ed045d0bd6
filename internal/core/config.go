package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this for deterministic simulation and for the wall clock.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 100)
	Seed     int64 // RNG seed for deterministic gameplay

	// Now returns the wall clock; nil means time.Now.
	Now func() time.Time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 100,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Clock returns cfg.Now, falling back to time.Now.
func (cfg RuntimeConfig) Clock() func() time.Time {
	if cfg.Now != nil {
		return cfg.Now
	}
	return time.Now
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Enemies killed
	GameOver bool // Whether the player has died
	Running  bool // False once a quit event was consumed
}

// StepResult is returned by Game.Tick() after each simulation tick.
type StepResult struct {
	State GameState
	Fired bool // Whether a fire-track was emitted this tick
}
