package starfighter

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-starfighter/internal/asset"
	"github.com/vovakirdan/tui-starfighter/internal/config"
	"github.com/vovakirdan/tui-starfighter/internal/core"
)

// Sprite names in the asset catalog.
const (
	PlayerSprite  = "player"
	GunSprite     = "bluster"
	MonsterSprite = "monster"
	FoodSprite    = "food"
)

// Glyph used for the beam.
const trackGlyph = '━'

// Game runs the fixed-tick simulation and records each tick's render
// commands into a frame.
type Game struct {
	cfg    config.StarfighterConfig
	logger *log.Logger

	playerImg  *core.Image
	gunImg     *core.Image
	monsterImg *core.Image

	rng       core.Rand // Gameplay: spawns, damage, stars
	palette   core.Rand // Cosmetic colors only
	fixedRand bool      // Set by WithRand; Reset keeps the injected sources
	now       func() time.Time

	input     InputState
	running   bool
	tickCount int

	player   *Player
	cooldown *Cooldown
	track    *core.Rect // Beam of the current tick, nil when not firing
	enemies  []*Enemy
	spawner  *EnemySpawner
	resolver *CollisionResolver
	stars    *StarField
	session  *Session
	frame    core.Frame
}

// Option customizes a Game.
type Option func(*Game)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// WithRand injects the gameplay and cosmetic random sources. They survive
// Reset, which otherwise reseeds from RuntimeConfig.Seed.
func WithRand(gameplay, palette core.Rand) Option {
	return func(g *Game) {
		g.rng = gameplay
		g.palette = palette
		g.fixedRand = true
	}
}

// New creates a game and prepares its sprites. Call Reset before ticking.
func New(cfg config.StarfighterConfig, lib *asset.Library, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Game{
		cfg:    cfg,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}

	var err error
	if g.playerImg, err = lib.Load(PlayerSprite, cfg.Player.SpriteWidth, 0); err != nil {
		return nil, fmt.Errorf("starfighter: load player: %w", err)
	}
	if g.gunImg, err = lib.Load(GunSprite, cfg.Player.SpriteWidth, 0); err != nil {
		return nil, fmt.Errorf("starfighter: load gun: %w", err)
	}
	if g.monsterImg, err = lib.Load(MonsterSprite, cfg.Enemies.SpriteWidth, 0); err != nil {
		return nil, fmt.Errorf("starfighter: load monster: %w", err)
	}
	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "starfighter"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Starfighter"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if !g.fixedRand {
		g.rng = core.NewRand(runtime.Seed)
		g.palette = core.NewRand(runtime.Seed + 1)
	}
	g.now = runtime.Clock()

	g.input = NewInputState()
	g.running = true
	g.tickCount = 0
	g.track = nil
	g.enemies = g.enemies[:0]

	g.player = NewPlayer(g.playerImg, g.gunImg, g.cfg.Player)
	g.cooldown = NewCooldown(g.cfg.Weapon)
	g.spawner = NewEnemySpawner(g.cfg.Enemies, g.cfg.Field, g.monsterImg, g.rng)
	g.resolver = NewCollisionResolver(g.cfg.Damage, g.cfg.Enemies.HitboxScale, g.rng)
	g.stars = NewStarField(g.cfg.Stars, g.cfg.Field, g.rng)
	g.session = NewSession(g.now())
	g.frame.Reset()

	g.logger.Info("session started", "session", g.session.ID)
}

// Tick advances the simulation by one fixed step, consuming the events
// polled since the previous tick. The render commands of the tick are
// available from Frame afterwards.
//
// An invalid direction set aborts the tick and is returned as an error
// wrapping ErrInvalidDirection.
func (g *Game) Tick(events []core.Event) (core.StepResult, error) {
	for _, ev := range events {
		if ev.Kind == core.EventQuit {
			g.running = false
			continue
		}
		g.input = Reduce(g.input, ev)
	}

	g.frame.Reset()
	g.frame.Clear()

	g.stars.Advance()
	g.stars.Draw(&g.frame)

	// Before moving, so a dead player stays put this tick.
	g.checkPlayerDeath()

	fired := g.cooldown.Advance(g.input.Fire && g.player.Alive())
	if err := g.player.Move(g.input.Dirs, g.cfg.Player.Step); err != nil {
		return core.StepResult{State: g.State()}, fmt.Errorf("tick %d: %w", g.tickCount, err)
	}
	g.player.Draw(&g.frame)

	g.track = nil
	if fired {
		t := g.player.FireTrack(g.cfg.Weapon, g.cfg.Field.Width)
		g.track = &t
		g.frame.FillRect(t, trackGlyph, core.RandomColor(g.palette, core.ThemeDark, core.DominantRed))
	}

	g.spawnEnemies()
	g.resolveEnemies()
	g.checkPlayerDeath()

	g.drawHUD(&g.frame)
	g.tickCount++

	return core.StepResult{State: g.State(), Fired: fired}, nil
}

// spawnEnemies tops the population up by at most one enemy.
func (g *Game) spawnEnemies() {
	if e := g.spawner.Spawn(len(g.enemies)); e != nil {
		g.enemies = append(g.enemies, e)
		g.logger.Debug("enemy spawned", "y", e.Rect.Y, "speed", e.Speed)
	}
}

// resolveEnemies runs collision resolution, updates counters and draws the
// survivors.
func (g *Game) resolveEnemies() {
	out := g.resolver.Resolve(g.enemies, g.player, g.track)
	g.enemies = out.Survivors
	g.session.EnemiesKilled += out.Killed
	g.session.EnemiesMissed += out.Missed
	if out.Killed > 0 || out.Missed > 0 {
		g.logger.Debug("enemies removed", "killed", out.Killed, "missed", out.Missed)
	}
	for _, e := range g.enemies {
		e.Draw(&g.frame)
	}
}

// checkPlayerDeath makes a player with no health permanently immobile and
// records the end of the session the first time it happens.
func (g *Game) checkPlayerDeath() {
	if g.player.Health > 0 {
		return
	}
	g.player.Health = 0
	g.player.CanMove = false
	if g.session.Finish(g.now()) {
		g.logger.Info("player died",
			"session", g.session.ID,
			"killed", g.session.EnemiesKilled,
			"missed", g.session.EnemiesMissed,
			"time", FormatDuration(g.session.Duration()),
		)
	}
}

// Frame returns the render commands of the last tick.
func (g *Game) Frame() *core.Frame {
	return &g.frame
}

// Field returns the logical play-field size.
func (g *Game) Field() (float64, float64) {
	return g.cfg.Field.Width, g.cfg.Field.Height
}

// Session returns the counters of the current play-through.
func (g *Game) Session() *Session {
	return g.session
}

// Player returns the player entity.
func (g *Game) Player() *Player {
	return g.player
}

// Enemies returns the live enemies.
func (g *Game) Enemies() []*Enemy {
	return g.enemies
}

// Input returns the current input state.
func (g *Game) Input() InputState {
	return g.input
}

// Cooldown returns the weapon gauge.
func (g *Game) Cooldown() *Cooldown {
	return g.cooldown
}

// Running reports whether no quit event has been consumed yet.
func (g *Game) Running() bool {
	return g.running
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.EnemiesKilled,
		GameOver: g.session.Finished(),
		Running:  g.running,
	}
}
