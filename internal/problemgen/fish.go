package problemgen

import (
	"fmt"
	"math/rand/v2"
)

var fishEmoji = []string{"🐟", "🐠", "🐡"}

// FishParams configures Fish.
type FishParams struct {
	Range int // the reference number is drawn from [5, Range+4]
}

// Fish asks for the one fish greater (or smaller) than a reference number.
// The wrong fish all sit on the other side of it.
func Fish(rng *rand.Rand, p FishParams) Level {
	target := between(rng, 5, max(p.Range, 1)+4)
	greater := rng.IntN(2) == 0

	var answer int
	var side []int
	if greater {
		answer = target + between(rng, 1, 5)
		side = []int{target - 1, target - 2, target - 3, target - 4, target - 5}
	} else {
		answer = target - between(rng, 1, 3)
		side = []int{target + 1, target + 2, target + 3, target + 4, target + 5}
	}
	rng.Shuffle(len(side), func(i, j int) { side[i], side[j] = side[j], side[i] })

	opts := numberOptions(append([]int{answer}, side[:3]...), answer)
	for i := range opts {
		opts[i].Content = fishEmoji[rng.IntN(len(fishEmoji))]
	}
	shuffle(rng, opts)

	word := "NHỎ HƠN"
	if greater {
		word = "LỚN HƠN"
	}
	return Level{
		ID:              newID(rng),
		Mode:            ModeSingleChoice,
		Question:        fmt.Sprintf("Bắt chú cá mang số %s %d nhé!", word, target),
		BackgroundTheme: "underwater",
		Options:         opts,
	}
}
