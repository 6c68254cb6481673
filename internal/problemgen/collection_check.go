package problemgen

import (
	"fmt"
	"slices"

	"github.com/abhisek/mathplay/internal/difficulty"
)

// CollectionValidator checks collection levels: every option carries a
// positive numeric value and the solution pieces add up to the target.
// Single-choice levels pass.
type CollectionValidator struct{}

func (v *CollectionValidator) Name() string { return "collection" }

func (v *CollectionValidator) Validate(l *Level) *ValidationError {
	if l.Mode != ModeCollection {
		return nil
	}
	if l.Target <= 0 {
		return &ValidationError{Validator: v.Name(), Message: "collection level has no target", Retryable: true}
	}

	sum := 0
	for _, o := range l.Options {
		n, ok := o.Numeric()
		if !ok {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("option %q has no numeric value", o.ID),
				Retryable: true,
			}
		}
		if n <= 0 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("option %q has non-positive value %d", o.ID, n),
				Retryable: true,
			}
		}
		if o.InSolution {
			sum += n
		}
	}
	if sum != l.Target {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("solution pieces sum to %d, target is %d", sum, l.Target),
			Retryable: true,
		}
	}
	return nil
}

// Solvable reports whether some subset of values sums exactly to target.
func Solvable(values []int, target int) bool {
	if target < 0 {
		return false
	}
	reach := make([]bool, target+1)
	reach[0] = true
	for _, v := range values {
		if v <= 0 {
			continue
		}
		for s := target; s >= v; s-- {
			if reach[s-v] {
				reach[s] = true
			}
		}
	}
	return reach[target]
}

// ValidateTower checks a tower level against the preset it was built for.
func ValidateTower(t TowerLevel, preset difficulty.TowerPreset) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: "tower", Message: msg, Retryable: true}
	}

	if !preset.Target.Contains(t.Target) {
		return fail(fmt.Sprintf("target %d outside [%d,%d]", t.Target, preset.Target.Min, preset.Target.Max))
	}
	ceiling := max(preset.MaxBlock, preset.DistractorMax)
	for _, b := range t.Blocks {
		if b < 1 || b > ceiling {
			return fail(fmt.Sprintf("block %d outside [1,%d]", b, ceiling))
		}
	}

	sum := 0
	bag := slices.Clone(t.Blocks)
	for _, s := range t.Solution {
		i := slices.Index(bag, s)
		if i < 0 {
			return fail(fmt.Sprintf("solution block %d missing from blocks", s))
		}
		bag = slices.Delete(bag, i, i+1)
		sum += s
	}
	if len(t.Solution) > 0 && sum != t.Target {
		return fail(fmt.Sprintf("solution sums to %d, target is %d", sum, t.Target))
	}
	if !Solvable(t.Blocks, t.Target) {
		return fail(fmt.Sprintf("no subset of blocks sums to %d", t.Target))
	}
	if extra := len(t.Blocks) - len(t.Solution); len(t.Solution) > 0 && extra < preset.Distractors {
		return fail(fmt.Sprintf("expected at least %d distractors, got %d", preset.Distractors, extra))
	}
	return nil
}
