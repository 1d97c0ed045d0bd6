package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-starfighter/internal/config"
	"github.com/vovakirdan/tui-starfighter/internal/core"
)

func TestSimulateIsDeterministic(t *testing.T) {
	cfg := config.DefaultConfig()
	opts := simOptions{Ticks: 2000, Seed: 99, Fire: true, Keys: []core.Key{core.KeyDown}}

	a, err := simulate(cfg, nil, opts)
	require.NoError(t, err)
	b, err := simulate(cfg, nil, opts)
	require.NoError(t, err)

	assert.Equal(t, 2000, a.Ticks)
	assert.Equal(t, a.Session.EnemiesKilled, b.Session.EnemiesKilled)
	assert.Equal(t, a.Session.EnemiesMissed, b.Session.EnemiesMissed)
	assert.Equal(t, a.Health, b.Health)
	assert.NotEqual(t, a.Session.ID, b.Session.ID)
}

func TestSimulateIdleShipSeesEnemiesPass(t *testing.T) {
	res, err := simulate(config.DefaultConfig(), nil, simOptions{Ticks: 3000, Seed: 1})
	require.NoError(t, err)
	assert.Positive(t, res.Session.EnemiesMissed)
	assert.Zero(t, res.Session.EnemiesKilled)
}

func TestParseKeys(t *testing.T) {
	keys, err := parseKeys("up+right")
	require.NoError(t, err)
	assert.Equal(t, []core.Key{core.KeyUp, core.KeyRight}, keys)

	keys, err = parseKeys("")
	require.NoError(t, err)
	assert.Empty(t, keys)

	_, err = parseKeys("up+sideways")
	assert.Error(t, err)
}

func TestNewLoggerLevels(t *testing.T) {
	logger, closeFn, err := newLogger(config.LogConfig{Level: "debug"}, io.Discard)
	require.NoError(t, err)
	require.NotNil(t, closeFn)
	assert.NoError(t, closeFn())
	assert.NotNil(t, logger)

	_, _, err = newLogger(config.LogConfig{Level: "loud"}, io.Discard)
	assert.Error(t, err)
}

func TestNewLoggerFile(t *testing.T) {
	path := t.TempDir() + "/starfighter.log"
	logger, closeFn, err := newLogger(config.LogConfig{Level: "info", File: path}, io.Discard)
	require.NoError(t, err)
	logger.Info("hello")
	require.NoError(t, closeFn())
	assert.FileExists(t, path)
}

func TestRenderSprite(t *testing.T) {
	img := &core.Image{Name: "box", W: 20, H: 20, Glyphs: [][]rune{[]rune("##"), []rune("##")}}
	out := renderSprite(img, 10)
	assert.Contains(t, out, "#")
}
