package core

import "fmt"

// Color is a 24-bit RGB color for a draw command or screen cell.
// The platform downsamples it to whatever the terminal supports.
type Color struct {
	R, G, B uint8
}

// Predefined colors for game elements.
var (
	ColorBlack    = Color{0, 0, 0}
	ColorWhite    = Color{255, 255, 255}
	ColorRed      = Color{255, 0, 0}
	ColorLightRed = Color{255, 100, 100}
)

// Hex returns the color as a #rrggbb string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Theme selects the channel range used by RandomColor.
type Theme int

const (
	ThemeDark   Theme = iota // channels in [0, 100]
	ThemeBright              // channels in [200, 255]
)

// Dominant forces one channel to full intensity.
type Dominant int

const (
	DominantNone Dominant = iota
	DominantRed
	DominantGreen
)

// RandomColor picks a random color in the given theme.
func RandomColor(r Rand, theme Theme, dom Dominant) Color {
	lo, hi := 0, 100
	if theme == ThemeBright {
		lo, hi = 200, 255
	}
	c := Color{
		R: uint8(RandRange(r, lo, hi)),
		G: uint8(RandRange(r, lo, hi)),
		B: uint8(RandRange(r, lo, hi)),
	}
	switch dom {
	case DominantRed:
		c.R = 255
	case DominantGreen:
		c.G = 255
	}
	return c
}
