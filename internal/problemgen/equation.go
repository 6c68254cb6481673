package problemgen

import (
	"fmt"
	"math/rand/v2"
)

// EquationParams configures Equation. Zero maxima use 10 and 6.
type EquationParams struct {
	XMax    int
	MultMax int
}

// Equation asks for x in m * x = p.
func Equation(rng *rand.Rand, p EquationParams) Level {
	xMax, multMax := p.XMax, p.MultMax
	if xMax < 1 {
		xMax = 10
	}
	if multMax < 2 {
		multMax = 6
	}
	x := between(rng, 1, xMax)
	m := between(rng, 2, multMax)

	opts := numberOptions([]int{x, x + 1, x - 1, x + 2}, x)
	shuffle(rng, opts)

	return Level{
		ID:       newID(rng),
		Mode:     ModeSingleChoice,
		Question: fmt.Sprintf("Tìm x biết: %d * x = %d", m, m*x),
		Options:  opts,
	}
}
