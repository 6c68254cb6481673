package play

import (
	"fmt"

	"github.com/abhisek/mathplay/internal/problemgen"
)

// TowerState describes the stack height relative to the target.
type TowerState int

const (
	TowerShort TowerState = iota
	TowerExact
	TowerOverload
)

// TowerRound tracks blocks stacked from a TowerLevel's bag.
type TowerRound struct {
	level  problemgen.TowerLevel
	used   []bool
	stack  []int // indices into level.Blocks, bottom first
	height int
}

// NewTowerRound starts a round on t.
func NewTowerRound(t problemgen.TowerLevel) *TowerRound {
	return &TowerRound{level: t, used: make([]bool, len(t.Blocks))}
}

// Level returns the level being played.
func (r *TowerRound) Level() problemgen.TowerLevel { return r.level }

// Height is the sum of stacked blocks.
func (r *TowerRound) Height() int { return r.height }

// Used reports whether block i is on the stack.
func (r *TowerRound) Used(i int) bool { return i >= 0 && i < len(r.used) && r.used[i] }

// Stack returns the stacked block values, bottom first.
func (r *TowerRound) Stack() []int {
	out := make([]int, len(r.stack))
	for i, idx := range r.stack {
		out[i] = r.level.Blocks[idx]
	}
	return out
}

// Push stacks block i from the bag. Used or out-of-range blocks are ignored.
func (r *TowerRound) Push(i int) bool {
	if i < 0 || i >= len(r.level.Blocks) || r.used[i] {
		return false
	}
	r.used[i] = true
	r.stack = append(r.stack, i)
	r.height += r.level.Blocks[i]
	return true
}

// Pop returns the top block to the bag.
func (r *TowerRound) Pop() bool {
	if len(r.stack) == 0 {
		return false
	}
	top := r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	r.used[top] = false
	r.height -= r.level.Blocks[top]
	return true
}

// Reset empties the stack.
func (r *TowerRound) Reset() {
	r.used = make([]bool, len(r.level.Blocks))
	r.stack = nil
	r.height = 0
}

// State compares the stack height with the target.
func (r *TowerRound) State() TowerState {
	switch {
	case r.height > r.level.Target:
		return TowerOverload
	case r.height == r.level.Target:
		return TowerExact
	default:
		return TowerShort
	}
}

// Won reports whether the stack matches the target exactly.
func (r *TowerRound) Won() bool { return r.State() == TowerExact }

// Status is the feedback line for the current stack.
func (r *TowerRound) Status() string {
	switch r.State() {
	case TowerOverload:
		return "Cao quá rồi! Nguy hiểm!"
	case TowerExact:
		return "Chuẩn rồi!"
	default:
		return fmt.Sprintf("Còn thiếu %d tầng.", r.level.Target-r.height)
	}
}
