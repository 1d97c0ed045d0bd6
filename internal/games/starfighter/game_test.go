package starfighter

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/tui-starfighter/internal/asset"
	"github.com/vovakirdan/tui-starfighter/internal/config"
	"github.com/vovakirdan/tui-starfighter/internal/core"
)

var epoch = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

// steppingClock returns a clock that advances one second per call.
func steppingClock() func() time.Time {
	calls := 0
	return func() time.Time {
		t := epoch.Add(time.Duration(calls) * time.Second)
		calls++
		return t
	}
}

func newTestGame(t *testing.T, cfg config.StarfighterConfig, opts ...Option) *Game {
	t.Helper()
	lib, err := asset.NewLibrary(nil)
	if err != nil {
		t.Fatalf("asset library: %v", err)
	}
	g, err := New(cfg, lib, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.Reset(core.RuntimeConfig{TickRate: cfg.TickRate, Seed: 42, Now: steppingClock()})
	return g
}

func fixedGame(t *testing.T, cfg config.StarfighterConfig) *Game {
	t.Helper()
	return newTestGame(t, cfg, WithRand(core.FixedRand(0), core.FixedRand(0)))
}

func mustTick(t *testing.T, g *Game, events ...core.Event) core.StepResult {
	t.Helper()
	res, err := g.Tick(events)
	if err != nil {
		t.Fatalf("tick %d: %v", g.tickCount, err)
	}
	return res
}

func countGlyph(f *core.Frame, glyph rune) []core.Rect {
	var rects []core.Rect
	for _, cmd := range f.Cmds {
		if cmd.Kind == core.DrawRect && cmd.Glyph == glyph {
			rects = append(rects, cmd.Rect)
		}
	}
	return rects
}

func TestGameInitialState(t *testing.T) {
	g := fixedGame(t, config.DefaultConfig())

	if g.Player().Rect != core.NewRect(0, 0, 50, 30) {
		t.Errorf("unexpected player rect %+v", g.Player().Rect)
	}
	if g.Input().Dirs != Stop || g.Input().Fire {
		t.Errorf("expected idle input, got %+v", g.Input())
	}
	if g.Cooldown().Gauge() != 100 {
		t.Errorf("expected full gauge, got %v", g.Cooldown().Gauge())
	}
	if !g.Running() || g.Session().Finished() {
		t.Error("new game should be running")
	}
	if !g.Session().StartedAt.Equal(epoch) {
		t.Errorf("unexpected start time %v", g.Session().StartedAt)
	}
}

func TestGamePlayerMoves(t *testing.T) {
	g := fixedGame(t, config.DefaultConfig())

	mustTick(t, g, core.KeyPress(core.KeyRight))
	mustTick(t, g)
	if g.Player().Rect.X != 10 || g.Player().Rect.Y != 0 {
		t.Errorf("expected (10,0), got (%v,%v)", g.Player().Rect.X, g.Player().Rect.Y)
	}

	mustTick(t, g, core.KeyRelease(core.KeyRight))
	if g.Player().Rect.X != 10 {
		t.Errorf("player kept moving after release: x=%v", g.Player().Rect.X)
	}
}

func TestGameFiringDrainsGaugeAndEmitsTrack(t *testing.T) {
	g := fixedGame(t, config.DefaultConfig())

	for i := range 3 {
		var events []core.Event
		if i == 0 {
			events = append(events, core.KeyPress(core.KeyFire))
		}
		res := mustTick(t, g, events...)
		if !res.Fired {
			t.Fatalf("tick %d: expected a shot", i)
		}
		tracks := countGlyph(g.Frame(), trackGlyph)
		if len(tracks) != 1 {
			t.Fatalf("tick %d: expected one track, got %d", i, len(tracks))
		}
		if tracks[0] != core.NewRect(80, 35, 1000, 5) {
			t.Errorf("tick %d: unexpected track %+v", i, tracks[0])
		}
	}
	if g.Cooldown().Gauge() != 97 {
		t.Errorf("expected gauge 97, got %v", g.Cooldown().Gauge())
	}

	res := mustTick(t, g, core.KeyRelease(core.KeyFire))
	if res.Fired || len(countGlyph(g.Frame(), trackGlyph)) != 0 {
		t.Error("track drawn after fire release")
	}
	if g.Cooldown().Gauge() != 97.5 {
		t.Errorf("expected regen to 97.5, got %v", g.Cooldown().Gauge())
	}
}

func TestGameBeamKillsEnemy(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Damage = config.RangeConfig{Min: 10, Max: 10}
	g := fixedGame(t, cfg)

	e := &Enemy{Entity: NewEntity(g.monsterImg, 8, 100), Speed: 1}
	e.Rect.X, e.Rect.Y = 500, 20
	g.enemies = append(g.enemies, e)

	res := mustTick(t, g, core.KeyPress(core.KeyFire))
	if g.Session().EnemiesKilled != 1 || res.State.Score != 1 {
		t.Errorf("expected one kill, got killed=%d score=%d", g.Session().EnemiesKilled, res.State.Score)
	}
	if slices.Contains(g.Enemies(), e) {
		t.Error("killed enemy still live")
	}
	if !slices.Contains(g.Frame().Texts(), "killed 1") {
		t.Errorf("HUD not updated: %v", g.Frame().Texts())
	}
}

func TestGamePlayerDeath(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Damage = config.RangeConfig{Min: 10, Max: 10}
	g := fixedGame(t, cfg)
	g.Player().Health = 5

	e := &Enemy{Entity: NewEntity(g.monsterImg, 150, 100), Speed: 1}
	e.Rect.X = 10
	g.enemies = append(g.enemies, e)

	res := mustTick(t, g)
	p := g.Player()
	if p.Health != 0 || p.CanMove {
		t.Fatalf("expected dead immobile player, got health=%d canMove=%v", p.Health, p.CanMove)
	}
	if !res.State.GameOver {
		t.Error("expected game over")
	}
	finished := g.Session().FinishedAt
	if !finished.Equal(epoch.Add(time.Second)) {
		t.Errorf("unexpected finish time %v", finished)
	}
	texts := g.Frame().Texts()
	if !slices.Contains(texts, "DEAD") || !slices.Contains(texts, "session time 0:00:01") {
		t.Errorf("death banner missing: %v", texts)
	}

	// Later ticks keep the first finish time, and a dead player neither moves nor fires.
	for range 5 {
		res = mustTick(t, g, core.KeyPress(core.KeyDown), core.KeyPress(core.KeyFire))
		if res.Fired {
			t.Error("dead player fired")
		}
	}
	if !g.Session().FinishedAt.Equal(finished) {
		t.Errorf("finish time changed to %v", g.Session().FinishedAt)
	}
	if p.Rect.Y != 0 {
		t.Errorf("dead player moved to y=%v", p.Rect.Y)
	}
	if p.Health != 0 {
		t.Errorf("health went below zero: %d", p.Health)
	}
	if g.Cooldown().Gauge() != 100 {
		t.Errorf("gauge drained by a dead player: %v", g.Cooldown().Gauge())
	}
}

func TestGameHUD(t *testing.T) {
	g := fixedGame(t, config.DefaultConfig())
	mustTick(t, g)

	texts := g.Frame().Texts()
	for _, want := range []string{"health 100/100", "killed 0", "missed 0"} {
		if !slices.Contains(texts, want) {
			t.Errorf("missing %q in %v", want, texts)
		}
	}
	if slices.Contains(texts, "DEAD") {
		t.Error("death banner shown while alive")
	}

	bars := countGlyph(g.Frame(), '█')
	if len(bars) != 1 || bars[0] != core.NewRect(22, 12, 120, 20) {
		t.Errorf("unexpected cooldown bar %+v", bars)
	}
}

func TestGameLowHealthColor(t *testing.T) {
	g := fixedGame(t, config.DefaultConfig())
	g.Player().Health = 30
	mustTick(t, g)

	for _, cmd := range g.Frame().Cmds {
		if cmd.Kind == core.DrawText && cmd.Text == "health 30/100" {
			if cmd.Color != core.ColorLightRed {
				t.Errorf("expected light red, got %v", cmd.Color)
			}
			return
		}
	}
	t.Error("health text not drawn")
}

func TestGameFrameStartsWithClear(t *testing.T) {
	g := fixedGame(t, config.DefaultConfig())
	mustTick(t, g)
	mustTick(t, g)

	cmds := g.Frame().Cmds
	if len(cmds) == 0 || cmds[0].Kind != core.DrawClear {
		t.Fatal("frame should start with a clear")
	}
	for _, cmd := range cmds[1:] {
		if cmd.Kind == core.DrawClear {
			t.Fatal("frame cleared twice")
		}
	}
}

func TestGameEnemyPopulationCapped(t *testing.T) {
	g := newTestGame(t, config.DefaultConfig())

	for i := range 3000 {
		mustTick(t, g)
		if n := len(g.Enemies()); n > 3 {
			t.Fatalf("tick %d: %d enemies live", i, n)
		}
	}
	if g.Session().EnemiesMissed == 0 {
		t.Error("expected some enemies to cross the field")
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() (*Game, []float64) {
		g := newTestGame(t, config.DefaultConfig())
		var ys []float64
		for i := range 500 {
			var events []core.Event
			switch i % 100 {
			case 0:
				events = append(events, core.KeyPress(core.KeyDown), core.KeyPress(core.KeyFire))
			case 50:
				events = append(events, core.KeyRelease(core.KeyDown), core.KeyRelease(core.KeyFire))
			}
			mustTick(t, g, events...)
			for _, e := range g.Enemies() {
				ys = append(ys, e.Rect.Y)
			}
		}
		return g, ys
	}

	g1, ys1 := run()
	g2, ys2 := run()
	if !slices.Equal(ys1, ys2) {
		t.Error("enemy trajectories differ between runs with the same seed")
	}
	if g1.Session().EnemiesKilled != g2.Session().EnemiesKilled || g1.Player().Health != g2.Player().Health {
		t.Error("outcomes differ between runs with the same seed")
	}
}

func TestGameQuit(t *testing.T) {
	g := fixedGame(t, config.DefaultConfig())
	res := mustTick(t, g, core.Quit())
	if res.State.Running || g.Running() {
		t.Error("expected the game to stop running after quit")
	}
}

func TestGameInvalidDirectionAbortsTick(t *testing.T) {
	g := fixedGame(t, config.DefaultConfig())
	g.input.Dirs = Up | Down

	_, err := g.Tick(nil)
	if !errors.Is(err, ErrInvalidDirection) {
		t.Fatalf("expected ErrInvalidDirection, got %v", err)
	}
}

func TestGameResetRestarts(t *testing.T) {
	g := fixedGame(t, config.DefaultConfig())
	mustTick(t, g, core.KeyPress(core.KeyRight), core.KeyPress(core.KeyFire))
	first := g.Session().ID

	g.Reset(core.RuntimeConfig{Now: steppingClock()})
	if g.Player().Rect.X != 0 || g.Cooldown().Gauge() != 100 || len(g.Enemies()) != 0 {
		t.Error("reset did not restore the initial state")
	}
	if g.Session().ID == first {
		t.Error("expected a new session id")
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	lib, err := asset.NewLibrary(nil)
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.DefaultConfig()
	cfg.Enemies.SpriteWidth = 0
	if _, err := New(cfg, lib); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}
