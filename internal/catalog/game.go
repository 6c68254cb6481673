package catalog

import (
	"math/rand/v2"

	"github.com/abhisek/mathplay/internal/difficulty"
	"github.com/abhisek/mathplay/internal/problemgen"
)

// Category groups games by the skill they practise.
type Category string

const (
	CategoryArithmetic Category = "arithmetic"
	CategoryLogic      Category = "logic"
	CategoryGeometry   Category = "geometry"
)

// DisplayName returns the Vietnamese label for a category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryArithmetic:
		return "Tính toán"
	case CategoryLogic:
		return "Tư duy"
	case CategoryGeometry:
		return "Hình học"
	default:
		return string(c)
	}
}

// Kind is the interaction style of a game.
type Kind string

const (
	KindBuilder    Kind = "builder"
	KindDragMatch  Kind = "drag_match"
	KindCollection Kind = "collection"
	KindChoice     Kind = "choice"
	KindComparison Kind = "comparison"
	KindSequence   Kind = "sequence"
)

// Layout hints how a renderer should arrange options.
type Layout string

const (
	LayoutGrid  Layout = "grid"
	LayoutRow   Layout = "row"
	LayoutStack Layout = "stack"
	LayoutTower Layout = "tower"
)

// Scale sizes one build: the policy, the tier being played and the game's
// grade.
type Scale struct {
	Policy difficulty.Policy
	Tier   difficulty.Tier
	Grade  int
}

// Of stretches a game-specific base range for the tier.
func (s Scale) Of(base int) int {
	return s.Policy.Scaled(base, s.Tier)
}

// GradeRange returns the policy's operand range for the game's grade,
// stretched for the tier.
func (s Scale) GradeRange() int {
	return s.Of(s.Policy.GradeRange(s.Grade))
}

// BuildFunc produces one level of a game.
type BuildFunc func(rng *rand.Rand, scale Scale) problemgen.Level

// Descriptor is a catalog entry for one mini-game.
type Descriptor struct {
	ID       string
	Name     string
	Icon     string
	Category Category
	Kind     Kind
	Grade    int
	Rules    string
	Goal     string
	Example  string
	Leveling string
	Theme    string
	Layout   Layout

	// Build is nil for games that do not produce a Level (the tower).
	Build BuildFunc
}

// IsTower reports whether the game is played with TowerLevel puzzles.
func (d Descriptor) IsTower() bool {
	return d.Kind == KindBuilder
}
