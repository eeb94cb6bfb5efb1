// Package display defines the drawing boundary between the device core and
// the LED matrix. The physical panel is addressed as two stacked halves,
// each able to carry one row of text; game logic draws through the Canvas
// helper and never touches raw LED indices.
package display

// Half selects one of the two physically addressable halves of the matrix.
type Half int

const (
	Top Half = iota
	Bottom
)

// Color is an LED color. The panel is a two-color (red/green) matrix, so
// the palette is small and fixed.
type Color uint8

const (
	Off Color = iota
	Red
	Green
	Amber
	White
)

// Adapter is the display driver contract consumed by the core.
// Implementations must tolerate out-of-range coordinates by ignoring them.
type Adapter interface {
	// Clear switches every LED off.
	Clear()

	// SetPixel sets one LED. Row is relative to the selected half.
	SetPixel(col, row int, h Half, c Color)

	// DrawText renders up to MaxTextCols characters left-anchored into the
	// given half, replacing its pixel content.
	DrawText(h Half, text string, c Color)

	// Flush presents the staged frame.
	Flush()
}

// Canvas wraps an Adapter with the matrix geometry so callers can plot in
// full-grid coordinates. Rows 0..H/2-1 land in the top half.
type Canvas struct {
	Adapter
	W, H int
}

// NewCanvas builds a canvas over the given adapter and grid size.
func NewCanvas(a Adapter, w, h int) Canvas {
	return Canvas{Adapter: a, W: w, H: h}
}

// Plot sets a pixel using full-grid coordinates.
func (c Canvas) Plot(x, y int, col Color) {
	half := Top
	if y >= c.H/2 {
		half = Bottom
		y -= c.H / 2
	}
	c.SetPixel(x, y, half, col)
}

// Border draws a one-pixel frame around the whole grid.
func (c Canvas) Border(col Color) {
	for x := 0; x < c.W; x++ {
		c.Plot(x, 0, col)
		c.Plot(x, c.H-1, col)
	}
	for y := 1; y < c.H-1; y++ {
		c.Plot(0, y, col)
		c.Plot(c.W-1, y, col)
	}
}

// Fill lights the whole grid in one color.
func (c Canvas) Fill(col Color) {
	for y := 0; y < c.H; y++ {
		for x := 0; x < c.W; x++ {
			c.Plot(x, y, col)
		}
	}
}
