// Package equation generates the small arithmetic quizzes shown on the
// clock face. Pure and stateless: the caller owns the RNG, difficulty
// (1..5) only widens the operand ranges and operator set.
package equation

import (
	"fmt"
	"math/rand"
)

// Quiz is one generated problem. Question fits an 8-glyph display row.
type Quiz struct {
	Question string
	Answer   int
}

// Generate produces a quiz for the given difficulty. Out-of-range
// difficulties are clamped to 1..5.
func Generate(rng *rand.Rand, difficulty int) Quiz {
	if difficulty < 1 {
		difficulty = 1
	}
	if difficulty > 5 {
		difficulty = 5
	}

	switch difficulty {
	case 1:
		// Addition within 10.
		a, b := rng.Intn(10)+1, rng.Intn(10)+1
		return Quiz{fmt.Sprintf("%d+%d", a, b), a + b}
	case 2:
		// Addition and subtraction within 20, no negative results.
		a, b := rng.Intn(20)+1, rng.Intn(20)+1
		if rng.Intn(2) == 0 {
			return Quiz{fmt.Sprintf("%d+%d", a, b), a + b}
		}
		if b > a {
			a, b = b, a
		}
		return Quiz{fmt.Sprintf("%d-%d", a, b), a - b}
	case 3:
		// Small multiplication table.
		a, b := rng.Intn(5)+1, rng.Intn(9)+1
		return Quiz{fmt.Sprintf("%dX%d", a, b), a * b}
	case 4:
		// Full multiplication table.
		a, b := rng.Intn(9)+1, rng.Intn(9)+1
		return Quiz{fmt.Sprintf("%dX%d", a, b), a * b}
	default:
		// Exact division derived from a product.
		b := rng.Intn(9) + 1
		q := rng.Intn(9) + 1
		return Quiz{fmt.Sprintf("%d/%d", b*q, b), q}
	}
}
