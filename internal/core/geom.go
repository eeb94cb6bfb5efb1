// Package core provides fundamental grid types and helpers shared by the
// engines and the device. It contains no external dependencies so game
// logic stays pure and testable.
package core

// Cell is a position on the LED matrix in full-grid coordinates,
// column 0 at the left and row 0 at the top.
type Cell struct {
	X, Y int
}

// In reports whether the cell lies inside a w×h grid.
func (c Cell) In(w, h int) bool {
	return c.X >= 0 && c.X < w && c.Y >= 0 && c.Y < h
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
