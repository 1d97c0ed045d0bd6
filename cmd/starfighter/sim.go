package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-starfighter/internal/asset"
	"github.com/vovakirdan/tui-starfighter/internal/config"
	"github.com/vovakirdan/tui-starfighter/internal/core"
	"github.com/vovakirdan/tui-starfighter/internal/games/starfighter"
)

var (
	flagTicks int
	flagFire  bool
	flagMove  string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the game headless and print a summary",
	Long: `Run the simulation without a terminal UI. The ship holds the given
direction and fire key for the whole run. Time is simulated, so a run of
6000 ticks at 100 Hz reports one minute of play however fast it finishes.

Examples:
  starfighter sim
  starfighter sim --ticks 20000 --fire --move down
  starfighter sim --seed 7 --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 6000, "Number of ticks to simulate")
	simCmd.Flags().BoolVar(&flagFire, "fire", false, "Hold the fire key")
	simCmd.Flags().StringVar(&flagMove, "move", "", "Direction keys to hold: any of up, down, left, right joined by +")
}

// simOptions scripts a headless run.
type simOptions struct {
	Ticks int
	Seed  int64
	Fire  bool
	Keys  []core.Key
}

// simResult summarizes a headless run.
type simResult struct {
	Ticks   int
	Session starfighter.Session
	Health  int
}

func runSim(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	keys, err := parseKeys(flagMove)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(cfg.Log, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	res, err := simulate(cfg, logger, simOptions{Ticks: flagTicks, Seed: seed, Fire: flagFire, Keys: keys})
	if err != nil {
		closeLog() //nolint:errcheck // os.Exit skips the deferred close
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	status := "alive"
	if res.Session.Finished() {
		status = "dead after " + starfighter.FormatDuration(res.Session.Duration())
	}
	fmt.Printf("session  %s\n", res.Session.ID)
	fmt.Printf("seed     %d\n", seed)
	fmt.Printf("ticks    %d\n", res.Ticks)
	fmt.Printf("killed   %d\n", res.Session.EnemiesKilled)
	fmt.Printf("missed   %d\n", res.Session.EnemiesMissed)
	fmt.Printf("health   %d\n", res.Health)
	fmt.Printf("player   %s\n", status)
}

// simulate runs the game for opts.Ticks ticks on a simulated clock.
func simulate(cfg config.StarfighterConfig, logger *log.Logger, opts simOptions) (simResult, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	lib, err := asset.NewLibrary(logger)
	if err != nil {
		return simResult{}, err
	}
	game, err := starfighter.New(cfg, lib, starfighter.WithLogger(logger))
	if err != nil {
		return simResult{}, err
	}

	start := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	interval := time.Second / time.Duration(cfg.TickRate)
	tick := 0
	game.Reset(core.RuntimeConfig{
		TickRate: cfg.TickRate,
		Seed:     opts.Seed,
		Now:      func() time.Time { return start.Add(time.Duration(tick) * interval) },
	})

	first := make([]core.Event, 0, len(opts.Keys)+1)
	for _, k := range opts.Keys {
		first = append(first, core.KeyPress(k))
	}
	if opts.Fire {
		first = append(first, core.KeyPress(core.KeyFire))
	}

	for ; tick < opts.Ticks; tick++ {
		var events []core.Event
		if tick == 0 {
			events = first
		}
		if _, err := game.Tick(events); err != nil {
			return simResult{}, err
		}
	}

	return simResult{
		Ticks:   tick,
		Session: *game.Session(),
		Health:  game.Player().Health,
	}, nil
}

// parseKeys parses a direction list such as "up+right".
func parseKeys(s string) ([]core.Key, error) {
	if s == "" {
		return nil, nil
	}
	var keys []core.Key
	for _, name := range strings.Split(s, "+") {
		switch name {
		case "up":
			keys = append(keys, core.KeyUp)
		case "down":
			keys = append(keys, core.KeyDown)
		case "left":
			keys = append(keys, core.KeyLeft)
		case "right":
			keys = append(keys, core.KeyRight)
		default:
			return nil, fmt.Errorf("unknown direction %q", name)
		}
	}
	return keys, nil
}
