// Package play evaluates a player's moves against generated levels.
package play

import (
	"fmt"

	"github.com/abhisek/mathplay/internal/problemgen"
)

// Outcome is the result of one move.
type Outcome int

const (
	Progress Outcome = iota // collection still short of the target
	Won
	Wrong    // single-choice miss
	TooMuch  // collection selection overshoots the target
	Ignored  // unknown option or the round is already won
)

func (o Outcome) String() string {
	switch o {
	case Progress:
		return "progress"
	case Won:
		return "won"
	case Wrong:
		return "wrong"
	case TooMuch:
		return "too_much"
	case Ignored:
		return "ignored"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// WrongMessage is shown after a single-choice miss.
const WrongMessage = "Chưa đúng rồi, thử đáp án khác nhé!"

// Round tracks play on one Level.
type Round struct {
	level    problemgen.Level
	selected map[string]bool
	sum      int
	won      bool
	status   string
}

// NewRound starts a round on l.
func NewRound(l problemgen.Level) *Round {
	return &Round{level: l, selected: make(map[string]bool)}
}

// Level returns the level being played.
func (r *Round) Level() problemgen.Level { return r.level }

// Won reports whether the round has been won.
func (r *Round) Won() bool { return r.won }

// Status is the feedback line for the last move.
func (r *Round) Status() string { return r.status }

// Sum is the running total of selected collection pieces.
func (r *Round) Sum() int { return r.sum }

// Selected reports whether a collection piece is selected.
func (r *Round) Selected(optionID string) bool { return r.selected[optionID] }

// Choose answers a single-choice level.
func (r *Round) Choose(optionID string) Outcome {
	if r.won || r.level.Mode != problemgen.ModeSingleChoice {
		return Ignored
	}
	opt, ok := r.level.Option(optionID)
	if !ok {
		return Ignored
	}
	if opt.IsCorrect {
		r.won = true
		r.status = ""
		return Won
	}
	r.status = WrongMessage
	return Wrong
}

// Toggle selects or deselects a collection piece and re-evaluates the sum.
func (r *Round) Toggle(optionID string) Outcome {
	if r.won || r.level.Mode != problemgen.ModeCollection {
		return Ignored
	}
	opt, ok := r.level.Option(optionID)
	if !ok {
		return Ignored
	}
	n, _ := opt.Numeric()
	if r.selected[optionID] {
		delete(r.selected, optionID)
		r.sum -= n
	} else {
		r.selected[optionID] = true
		r.sum += n
	}
	return r.evaluate()
}

func (r *Round) evaluate() Outcome {
	target := r.level.Target
	switch {
	case r.sum == target:
		r.won = true
		r.status = ""
		return Won
	case r.sum > target:
		r.status = fmt.Sprintf("Vượt quá rồi! Đang có %d/%d.", r.sum, target)
		return TooMuch
	default:
		r.status = fmt.Sprintf("Đang có %d. Còn thiếu %d nữa.", r.sum, target-r.sum)
		return Progress
	}
}

// Reset clears the selection and status.
func (r *Round) Reset() {
	r.selected = make(map[string]bool)
	r.sum = 0
	r.won = false
	r.status = ""
}
