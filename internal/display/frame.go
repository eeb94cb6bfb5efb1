package display

// Frame is an in-memory Adapter implementation. The simulator renders it to
// the terminal; tests inspect it directly. A hardware driver would replace
// it behind the same interface.
type Frame struct {
	w, h  int
	pix   []Color
	frame uint64 // bumped on Flush so renderers can detect fresh content
}

// NewFrame allocates a frame for a w×h matrix. Height must be even since
// the panel is addressed as two halves.
func NewFrame(w, h int) *Frame {
	return &Frame{
		w:   w,
		h:   h,
		pix: make([]Color, w*h),
	}
}

// Width returns the matrix width in pixels.
func (f *Frame) Width() int { return f.w }

// Height returns the matrix height in pixels.
func (f *Frame) Height() int { return f.h }

// Pixel returns the color at full-grid coordinates, Off when out of range.
func (f *Frame) Pixel(x, y int) Color {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return Off
	}
	return f.pix[y*f.w+x]
}

// Clear switches every LED off.
func (f *Frame) Clear() {
	for i := range f.pix {
		f.pix[i] = Off
	}
}

// SetPixel sets one LED in the given half. Out-of-range coordinates are
// ignored.
func (f *Frame) SetPixel(col, row int, h Half, c Color) {
	if h == Bottom {
		row += f.h / 2
	}
	if col < 0 || col >= f.w || row < 0 || row >= f.h {
		return
	}
	f.pix[row*f.w+col] = c
}

// MaxTextCols returns how many glyphs fit on one half-row.
func (f *Frame) MaxTextCols() int {
	return f.w / glyphPitch
}

// DrawText rasterizes text left-anchored into the given half, clearing the
// half first. Characters beyond the right edge are clipped.
func (f *Frame) DrawText(h Half, text string, c Color) {
	half := f.h / 2
	for row := 0; row < half; row++ {
		for col := 0; col < f.w; col++ {
			f.SetPixel(col, row, h, Off)
		}
	}

	// Center the 5-row glyphs vertically inside the half.
	rowOff := (half - glyphH) / 2
	if rowOff < 0 {
		rowOff = 0
	}

	x := 0
	for _, r := range text {
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		g, ok := glyphs[r]
		if ok {
			for gy := 0; gy < glyphH; gy++ {
				for gx := 0; gx < glyphW; gx++ {
					if g[gy]&(1<<(glyphW-1-gx)) != 0 {
						f.SetPixel(x+gx, rowOff+gy, h, c)
					}
				}
			}
		}
		x += glyphPitch
		if x >= f.w {
			break
		}
	}
}

// Flush marks the frame presented. The in-memory implementation has nothing
// to push; it only versions the buffer for renderers.
func (f *Frame) Flush() {
	f.frame++
}

// Generation returns the flush counter.
func (f *Frame) Generation() uint64 { return f.frame }

var _ Adapter = (*Frame)(nil)
