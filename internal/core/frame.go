package core

//go:generate go tool mockgen -destination=mocks/mock_canvas.go -package=mocks . Canvas

// Canvas is the renderer capability: everything a game can ask to draw.
// Coordinates are logical play-field pixels.
type Canvas interface {
	Clear()
	FillRect(r Rect, glyph rune, c Color)
	DrawText(x, y float64, text string, size int, c Color)
	Blit(img *Image, x, y float64)
}

// DrawKind identifies the type of a render command.
type DrawKind int

const (
	DrawClear DrawKind = iota
	DrawRect
	DrawText
	DrawImage
)

// DrawCmd is a single render command recorded during a tick.
type DrawCmd struct {
	Kind  DrawKind
	Rect  Rect // DrawRect area; DrawText/DrawImage use X and Y only
	Glyph rune
	Text  string
	Size  int
	Color Color
	Image *Image
}

// Frame records render commands for one tick. It implements Canvas so a game
// draws into it exactly as it would draw into a live renderer.
type Frame struct {
	Cmds []DrawCmd
}

// Reset drops all recorded commands, keeping the backing storage.
func (f *Frame) Reset() {
	f.Cmds = f.Cmds[:0]
}

// Clear records a clear command.
func (f *Frame) Clear() {
	f.Cmds = append(f.Cmds, DrawCmd{Kind: DrawClear})
}

// FillRect records a filled rectangle.
func (f *Frame) FillRect(r Rect, glyph rune, c Color) {
	f.Cmds = append(f.Cmds, DrawCmd{Kind: DrawRect, Rect: r, Glyph: glyph, Color: c})
}

// DrawText records a text command.
func (f *Frame) DrawText(x, y float64, text string, size int, c Color) {
	f.Cmds = append(f.Cmds, DrawCmd{Kind: DrawText, Rect: Rect{X: x, Y: y}, Text: text, Size: size, Color: c})
}

// Blit records an image command.
func (f *Frame) Blit(img *Image, x, y float64) {
	f.Cmds = append(f.Cmds, DrawCmd{Kind: DrawImage, Rect: Rect{X: x, Y: y, W: img.W, H: img.H}, Image: img})
}

// Replay issues every recorded command to dst in order.
func (f *Frame) Replay(dst Canvas) {
	for _, cmd := range f.Cmds {
		switch cmd.Kind {
		case DrawClear:
			dst.Clear()
		case DrawRect:
			dst.FillRect(cmd.Rect, cmd.Glyph, cmd.Color)
		case DrawText:
			dst.DrawText(cmd.Rect.X, cmd.Rect.Y, cmd.Text, cmd.Size, cmd.Color)
		case DrawImage:
			dst.Blit(cmd.Image, cmd.Rect.X, cmd.Rect.Y)
		}
	}
}

// Texts returns the text of every DrawText command, in order.
func (f *Frame) Texts() []string {
	var out []string
	for _, cmd := range f.Cmds {
		if cmd.Kind == DrawText {
			out = append(out, cmd.Text)
		}
	}
	return out
}
