package problemgen

import (
	"fmt"
	"math/rand/v2"
)

// SeqKind selects how a sequence grows.
type SeqKind string

const (
	SeqAdd SeqKind = "add" // s, s+d, s+2d
	SeqMul SeqKind = "mul" // d, 2d, 3d (times table)
)

// SequenceParams configures Sequence. Zero maxima use 5 and 4.
type SequenceParams struct {
	Kind     SeqKind
	StartMax int
	StepMax  int
}

// Sequence shows three terms and asks for the fourth.
func Sequence(rng *rand.Rand, p SequenceParams) Level {
	startMax, stepMax := p.StartMax, p.StepMax
	if startMax < 1 {
		startMax = 5
	}
	if stepMax < 2 {
		stepMax = 4
	}
	start := between(rng, 1, startMax)
	step := between(rng, 2, stepMax)

	var terms [3]int
	var next int
	if p.Kind == SeqMul {
		terms = [3]int{step, 2 * step, 3 * step}
		next = 4 * step
	} else {
		terms = [3]int{start, start + step, start + 2*step}
		next = start + 3*step
	}

	opts := numberOptions([]int{next, next + 1, next - step, next + 2*step}, next)
	shuffle(rng, opts)

	return Level{
		ID:       newID(rng),
		Mode:     ModeSingleChoice,
		Question: fmt.Sprintf("Điền số tiếp theo: %d, %d, %d, ...", terms[0], terms[1], terms[2]),
		Options:  opts,
	}
}
