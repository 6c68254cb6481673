package problemgen

import (
	"fmt"
	"math/rand/v2"
)

// ComparisonParams configures Comparison.
type ComparisonParams struct {
	Range int // values are drawn from [1, Range]
}

// Comparison asks which of two distinct values is larger. Options keep the
// order used in the question.
func Comparison(rng *rand.Rand, p ComparisonParams) Level {
	r := max(p.Range, 2)
	a, b := between(rng, 1, r), between(rng, 1, r)
	for attempt := 0; a == b && attempt < maxResampleAttempts; attempt++ {
		b = between(rng, 1, r)
	}
	if a == b {
		if a > 1 {
			b = a - 1
		} else {
			b = a + 1
		}
	}

	return Level{
		ID:       newID(rng),
		Mode:     ModeSingleChoice,
		Question: fmt.Sprintf("Bên nào lớn hơn: %d hay %d?", a, b),
		Options: []Option{
			{ID: "1", Value: Number(a), IsCorrect: a > b},
			{ID: "2", Value: Number(b), IsCorrect: b > a},
		},
	}
}
