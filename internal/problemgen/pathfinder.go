package problemgen

import (
	"fmt"
	"math/rand/v2"
)

// PathParams configures PathFinder.
type PathParams struct {
	Range int
}

// PathFinder offers four "a + b" roads; exactly one adds up to the target.
func PathFinder(rng *rand.Rand, p PathParams) Level {
	r := max(p.Range, 2)
	target := between(rng, 5, r+4)
	a := between(rng, 1, target-1)

	correct := fmt.Sprintf("%d + %d", a, target-a)
	opts := []Option{{ID: "c1", Value: Text(correct), IsCorrect: true}}
	taken := map[string]bool{correct: true}

	add := func(expr string) {
		taken[expr] = true
		opts = append(opts, Option{ID: fmt.Sprintf("w%d", len(opts)), Value: Text(expr)})
	}
	for attempt := 0; attempt < maxResampleAttempts && len(opts) < 4; attempt++ {
		wa, wb := between(rng, 1, r), between(rng, 1, r)
		expr := fmt.Sprintf("%d + %d", wa, wb)
		if wa+wb == target || taken[expr] {
			continue
		}
		add(expr)
	}
	for k := 1; len(opts) < 4; k++ {
		if expr := fmt.Sprintf("%d + %d", target, k); !taken[expr] {
			add(expr)
		}
	}
	shuffle(rng, opts)

	return Level{
		ID:       newID(rng),
		Mode:     ModeSingleChoice,
		Question: fmt.Sprintf("Đi theo hướng có kết quả bằng %d!", target),
		Options:  opts,
	}
}
