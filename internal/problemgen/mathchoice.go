package problemgen

import (
	"fmt"
	"math/rand/v2"
	"strconv"
)

// Op selects the arithmetic of a math-choice level.
type Op string

const (
	OpSum   Op = "sum"
	OpSub   Op = "sub"
	OpMul   Op = "mul"
	OpBlank Op = "blank" // a + __ = c, answer is the missing addend
)

// MathChoiceParams configures MathChoice.
type MathChoiceParams struct {
	Range  int    // operands are drawn from [1, Range]
	Op     Op     // defaults to OpSum
	Prompt string // shown before the equation; defaults to "Kết quả:"
}

// MathChoice builds a four-option arithmetic question.
func MathChoice(rng *rand.Rand, p MathChoiceParams) Level {
	r := max(p.Range, 1)

	var question string
	var answer int
	switch p.Op {
	case OpSub:
		a, b := between(rng, 1, r), between(rng, 1, r)
		hi, lo := max(a, b), min(a, b)
		question = fmt.Sprintf("%d - %d = ?", hi, lo)
		answer = hi - lo
	case OpMul:
		a := between(rng, 1, 9)
		b := between(rng, 1, min(max(r/4, 2), 9))
		question = fmt.Sprintf("%d x %d = ?", a, b)
		answer = a * b
	case OpBlank:
		a, b := between(rng, 1, r), between(rng, 1, r)
		question = fmt.Sprintf("%d + __ = %d", a, a+b)
		answer = b
	default:
		a, b := between(rng, 1, r), between(rng, 1, r)
		question = fmt.Sprintf("%d + %d = ?", a, b)
		answer = a + b
	}

	prompt := p.Prompt
	if prompt == "" {
		prompt = "Kết quả:"
	}

	values := append([]int{answer}, distractors(rng, answer, 3, 2)...)
	opts := numberOptions(values, answer)
	shuffle(rng, opts)

	return Level{
		ID:       newID(rng),
		Mode:     ModeSingleChoice,
		Question: prompt + " " + question,
		Options:  opts,
	}
}

// DefaultLevel is the level served for unknown games: a range-10 sum.
func DefaultLevel(rng *rand.Rand) Level {
	return MathChoice(rng, MathChoiceParams{Range: 10, Op: OpSum})
}

// numberOptions turns distinct values into options keyed by their value.
func numberOptions(values []int, answer int) []Option {
	opts := make([]Option, 0, len(values))
	for _, v := range values {
		opts = append(opts, Option{
			ID:        strconv.Itoa(v),
			Value:     Number(v),
			IsCorrect: v == answer,
		})
	}
	return opts
}
