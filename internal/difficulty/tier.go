package difficulty

import (
	"fmt"
	"strings"
)

// Tier is the coarse difficulty knob shared by every mini-game.
type Tier string

const (
	Easy   Tier = "easy"
	Medium Tier = "medium"
	Hard   Tier = "hard"
)

// AllTiers returns the tiers in ascending order.
func AllTiers() []Tier {
	return []Tier{Easy, Medium, Hard}
}

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	switch t {
	case Easy, Medium, Hard:
		return true
	default:
		return false
	}
}

// DisplayName returns the label shown to players.
func (t Tier) DisplayName() string {
	switch t {
	case Medium:
		return "Vừa"
	case Hard:
		return "Khó"
	default:
		return "Dễ"
	}
}

// ParseTier normalizes s into a Tier. Malformed input falls back to Easy.
func ParseTier(s string) Tier {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return Easy
	}
	return t
}

// ParseTierStrict is ParseTier for user-facing flags: malformed input is an error.
func ParseTierStrict(s string) (Tier, error) {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return Easy, fmt.Errorf("invalid tier %q: must be easy, medium, or hard", s)
	}
	return t, nil
}

// FromStreak derives the tier for the next level from a correct-answer streak
// using the default policy.
func FromStreak(streak int) Tier {
	return defaultPolicy.FromStreak(streak)
}

// TowerRange returns the tower target range for t using the default policy.
func TowerRange(t Tier) Range {
	return defaultPolicy.TowerRange(t)
}

// GradeRange returns the operand range for a grade using the default policy.
func GradeRange(grade int) int {
	return defaultPolicy.GradeRange(grade)
}
