package core

import (
	"math"
	"strings"
)

// Cell is one character position of the screen buffer.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' '}

// Screen is a 2D character buffer for rendering game graphics.
// It decouples game rendering from the terminal: games draw in logical
// play-field pixels through the Canvas methods, and the screen projects
// them onto its character grid.
type Screen struct {
	width  int
	height int
	cells  [][]Cell

	viewW, viewH float64 // Logical size mapped onto the full grid
}

// NewScreen creates a new screen buffer with the given dimensions.
// The logical view defaults to one pixel per cell.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
		viewW:  float64(width),
		viewH:  float64(height),
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// SetView sets the logical play-field size that is stretched over the grid.
func (s *Screen) SetView(w, h float64) {
	if w > 0 && h > 0 {
		s.viewW, s.viewH = w, h
	}
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blankCell
		}
	}
}

// Set places a rune at the given cell position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c}
}

// Get returns the rune at the given cell position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blankCell
	}
	return s.cells[y][x]
}

// PutText writes a string horizontally starting at cell (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) PutText(x, y int, text string, c Color) {
	i := 0
	for _, r := range text {
		s.Set(x+i, y, r, c)
		i++
	}
}

// project maps a logical point onto cell coordinates.
func (s *Screen) project(x, y float64) (int, int) {
	return int(math.Floor(x * float64(s.width) / s.viewW)),
		int(math.Floor(y * float64(s.height) / s.viewH))
}

// projectRect maps a logical rectangle onto a half-open cell range.
// Any non-empty rectangle covers at least one cell.
func (s *Screen) projectRect(r Rect) (x0, y0, x1, y1 int) {
	x0, y0 = s.project(r.X, r.Y)
	x1 = int(math.Ceil(r.Right() * float64(s.width) / s.viewW))
	y1 = int(math.Ceil(r.Bottom() * float64(s.height) / s.viewH))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

// FillRect fills the cells covered by a logical rectangle.
func (s *Screen) FillRect(r Rect, glyph rune, c Color) {
	if r.Empty() {
		return
	}
	if glyph == 0 {
		glyph = '█'
	}
	x0, y0, x1, y1 := s.projectRect(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.Set(x, y, glyph, c)
		}
	}
}

// DrawText writes text at a logical position. Terminal cells have a single
// font size, so size is ignored.
func (s *Screen) DrawText(x, y float64, text string, _ int, c Color) {
	cx, cy := s.project(x, y)
	s.PutText(cx, cy, text, c)
}

// Blit resamples an image into the cells covered by its logical rectangle.
// Space glyphs are transparent.
func (s *Screen) Blit(img *Image, x, y float64) {
	if img == nil {
		return
	}
	x0, y0, x1, y1 := s.projectRect(NewRect(x, y, img.W, img.H))
	w, h := float64(x1-x0), float64(y1-y0)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			g := img.GlyphAt((float64(cx-x0)+0.5)/w, (float64(cy-y0)+0.5)/h)
			if g == ' ' {
				continue
			}
			s.Set(cx, cy, g, img.Color)
		}
	}
}

// String converts the screen buffer to a plain string without colors.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
