package problemgen

import (
	"math/rand/v2"
	"slices"

	"github.com/abhisek/mathplay/internal/difficulty"
)

// keepOneChance is the probability that a drawn 1-block survives while more
// than one unit is still needed; otherwise it is re-rolled to 2.
const keepOneChance = 0.3

// Tower builds a stacking level for the preset.
func Tower(rng *rand.Rand, preset difficulty.TowerPreset) TowerLevel {
	target := between(rng, preset.Target.Min, preset.Target.Max)
	maxBlock := max(preset.MaxBlock, 1)

	var solution []int
	for remaining := target; remaining > 0; {
		chunk := between(rng, 1, min(remaining, maxBlock))
		if remaining > 1 && chunk == 1 && rng.Float64() > keepOneChance {
			chunk = min(remaining, 2, maxBlock)
		}
		solution = append(solution, chunk)
		remaining -= chunk
	}

	blocks := slices.Clone(solution)
	for range max(preset.Distractors, 0) {
		blocks = append(blocks, between(rng, 1, max(preset.DistractorMax, 1)))
	}
	rng.Shuffle(len(blocks), func(i, j int) {
		blocks[i], blocks[j] = blocks[j], blocks[i]
	})

	return TowerLevel{Target: target, Blocks: blocks, Solution: solution}
}
