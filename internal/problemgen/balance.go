package problemgen

import (
	"fmt"
	"math/rand/v2"
	"strconv"
)

// BalanceParams configures Balance.
type BalanceParams struct {
	Weight int // the heavier left pan
}

// Balance asks how much to add to the right pan to level the scale.
func Balance(rng *rand.Rand, p BalanceParams) Level {
	w := max(p.Weight, 2)
	current := between(rng, 1, w-1)
	needed := w - current

	below := needed - 1
	if below < 1 {
		below = needed + 1
	}
	opts := make([]Option, 0, 4)
	for _, v := range []int{needed, needed + 2, below, needed + 5} {
		opts = append(opts, Option{
			ID:        strconv.Itoa(v),
			Value:     Text(fmt.Sprintf("%dkg", v)),
			IsCorrect: v == needed,
		})
	}
	shuffle(rng, opts)

	return Level{
		ID:       newID(rng),
		Mode:     ModeSingleChoice,
		Question: fmt.Sprintf("Cân lệch! Bên trái %dkg, phải %dkg. Thêm bao nhiêu?", w, current),
		Options:  opts,
	}
}
