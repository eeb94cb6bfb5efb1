package core

import "testing"

func TestCellIn(t *testing.T) {
	tests := []struct {
		name     string
		cell     Cell
		expected bool
	}{
		{"inside", Cell{5, 5}, true},
		{"origin", Cell{0, 0}, true},
		{"right edge (exclusive)", Cell{32, 5}, false},
		{"bottom edge (exclusive)", Cell{5, 16}, false},
		{"negative x", Cell{-1, 5}, false},
		{"negative y", Cell{5, -1}, false},
		{"last valid", Cell{31, 15}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cell.In(32, 16); got != tc.expected {
				t.Errorf("Cell(%d,%d).In(32,16) = %v, expected %v", tc.cell.X, tc.cell.Y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}
