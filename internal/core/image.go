package core

// Image is a displayable sprite handle: glyph art plus the logical size it
// occupies on the play-field. A space glyph is transparent.
type Image struct {
	Name   string
	W, H   float64  // Logical size in pixels
	Glyphs [][]rune // Rows of glyph art
	Color  Color
}

// Cols returns the width of the glyph art in characters.
func (img *Image) Cols() int {
	cols := 0
	for _, row := range img.Glyphs {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return cols
}

// Lines returns the height of the glyph art in characters.
func (img *Image) Lines() int {
	return len(img.Glyphs)
}

// GlyphAt samples the art at normalized coordinates u, v in [0, 1)
// using nearest-neighbor lookup.
func (img *Image) GlyphAt(u, v float64) rune {
	lines, cols := img.Lines(), img.Cols()
	if lines == 0 || cols == 0 {
		return ' '
	}
	row := Clamp(int(v*float64(lines)), 0, lines-1)
	col := Clamp(int(u*float64(cols)), 0, cols-1)
	if col >= len(img.Glyphs[row]) {
		return ' '
	}
	return img.Glyphs[row][col]
}
