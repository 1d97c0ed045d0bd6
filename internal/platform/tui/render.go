package tui

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-starfighter/internal/core"
)

// styles caches one lipgloss style per xterm-256 palette entry. Games pick
// colors from the full 24-bit space every tick, so the cache is keyed on the
// downsampled index to keep it at a fixed size.
var styles = struct {
	sync.Mutex
	m map[termenv.ANSI256Color]lipgloss.Style
}{m: make(map[termenv.ANSI256Color]lipgloss.Style, 256)}

// paletteIndex downsamples c to the nearest xterm-256 color.
func paletteIndex(c core.Color) (termenv.ANSI256Color, bool) {
	idx, ok := termenv.ANSI256.Color(c.Hex()).(termenv.ANSI256Color)
	return idx, ok
}

// styleFor returns the foreground style for c. The zero color is the
// terminal default.
func styleFor(c core.Color) lipgloss.Style {
	if c == (core.Color{}) {
		return lipgloss.NewStyle()
	}
	idx, ok := paletteIndex(c)
	if !ok {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	}

	styles.Lock()
	defer styles.Unlock()

	if s, ok := styles.m[idx]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(int(idx))))
	styles.m[idx] = s
	return s
}

// cachedStyles returns the number of cached styles.
func cachedStyles() int {
	styles.Lock()
	defer styles.Unlock()
	return len(styles.m)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
