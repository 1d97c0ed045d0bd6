package asset

import "github.com/vovakirdan/tui-starfighter/internal/core"

// Glyphs that change shape under a horizontal mirror.
var mirrorPairs = map[rune]rune{
	'▶': '◀', '◀': '▶',
	'▗': '▖', '▖': '▗',
	'▝': '▘', '▘': '▝',
	'▐': '▌', '▌': '▐',
	'▛': '▜', '▜': '▛',
	'▙': '▟', '▟': '▙',
	'/': '\\', '\\': '/',
	'(': ')', ')': '(',
	'<': '>', '>': '<',
	'╡': '╞', '╞': '╡',
}

// Glyphs that change shape under a vertical flip.
var flipPairs = map[rune]rune{
	'▄': '▀', '▀': '▄',
	'▗': '▝', '▝': '▗',
	'▖': '▘', '▘': '▖',
	'▛': '▙', '▙': '▛',
	'▜': '▟', '▟': '▜',
	'/': '\\', '\\': '/',
	'^': 'v', 'v': '^',
}

// Mirror returns a copy of img reflected left to right.
func Mirror(img *core.Image) *core.Image {
	out := *img
	cols := img.Cols()
	out.Glyphs = make([][]rune, len(img.Glyphs))
	for i, row := range img.Glyphs {
		mirrored := make([]rune, cols)
		for j := range mirrored {
			mirrored[j] = ' '
		}
		for j, r := range row {
			mirrored[cols-1-j] = swap(r, mirrorPairs)
		}
		out.Glyphs[i] = mirrored
	}
	return &out
}

// Flip returns a copy of img reflected top to bottom.
func Flip(img *core.Image) *core.Image {
	out := *img
	n := len(img.Glyphs)
	out.Glyphs = make([][]rune, n)
	for i, row := range img.Glyphs {
		flipped := make([]rune, len(row))
		for j, r := range row {
			flipped[j] = swap(r, flipPairs)
		}
		out.Glyphs[n-1-i] = flipped
	}
	return &out
}

func swap(r rune, pairs map[rune]rune) rune {
	if s, ok := pairs[r]; ok {
		return s
	}
	return r
}
