package starfighter

import (
	"fmt"

	"github.com/vovakirdan/tui-starfighter/internal/core"
)

// HUD layout in logical pixels.
const (
	hudTextSize    = 18
	bannerSize     = 80
	sessionSize    = 30
	lowHealthLimit = 30
	barWidth       = 120
)

// drawHUD emits the health text, counters, cooldown bar and, once the
// player is dead, the death banner.
func (g *Game) drawHUD(dst core.Canvas) {
	healthColor := core.ColorLightRed
	if g.player.Health > lowHealthLimit {
		healthColor = core.RandomColor(g.palette, core.ThemeBright, core.DominantNone)
	}
	dst.DrawText(g.cfg.Field.Width-180, 10,
		fmt.Sprintf("health %d/%d", max(0, g.player.Health), g.player.MaxHealth()),
		hudTextSize, healthColor)

	dst.DrawText(300, 10, fmt.Sprintf("killed %d", g.session.EnemiesKilled),
		hudTextSize, core.RandomColor(g.palette, core.ThemeBright, core.DominantNone))
	dst.DrawText(300, 40, fmt.Sprintf("missed %d", g.session.EnemiesMissed),
		hudTextSize, core.RandomColor(g.palette, core.ThemeBright, core.DominantNone))

	dst.FillRect(core.NewRect(20, 10, barWidth+5, 25), '░',
		core.RandomColor(g.palette, core.ThemeDark, core.DominantNone))
	dst.FillRect(core.NewRect(22, 12, barWidth*g.cooldown.Fraction(), 20), '█',
		core.RandomColor(g.palette, core.ThemeDark, core.DominantRed))

	if g.session.Finished() {
		dst.DrawText(400, 200, "DEAD", bannerSize,
			core.RandomColor(g.palette, core.ThemeDark, core.DominantRed))
		dst.DrawText(350, 400, "session time "+FormatDuration(g.session.Duration()),
			sessionSize, core.ColorWhite)
	}
}
