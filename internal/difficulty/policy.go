package difficulty

import (
	"math"
	"slices"
)

// Range is an inclusive integer interval.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Contains reports whether v lies in [Min, Max].
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

func (r Range) valid() bool {
	return r.Min > 0 && r.Max >= r.Min
}

// TowerPreset holds the stacking-game knobs for one tier.
type TowerPreset struct {
	Target        Range `yaml:"target"`
	MaxBlock      int   `yaml:"max_block"`
	Distractors   int   `yaml:"distractors"`
	DistractorMax int   `yaml:"distractor_max"`
}

// Policy maps difficulty signals (tier, grade, streak) to numeric ranges.
type Policy struct {
	Tower           map[Tier]TowerPreset `yaml:"tower"`
	GradeRanges     map[int]int          `yaml:"grade_ranges"`
	DefaultRange    int                  `yaml:"default_range"`
	Scale           map[Tier]float64     `yaml:"scale"`
	StreakThreshold int                  `yaml:"streak_threshold"`
}

var defaultPolicy = DefaultPolicy()

// DefaultPolicy returns the built-in policy. It is also the fallback for any
// value a loaded policy leaves out or gets wrong.
func DefaultPolicy() Policy {
	return Policy{
		Tower: map[Tier]TowerPreset{
			Easy:   {Target: Range{Min: 5, Max: 10}, MaxBlock: 5, Distractors: 2, DistractorMax: 5},
			Medium: {Target: Range{Min: 11, Max: 20}, MaxBlock: 8, Distractors: 4, DistractorMax: 5},
			Hard:   {Target: Range{Min: 21, Max: 35}, MaxBlock: 10, Distractors: 4, DistractorMax: 5},
		},
		GradeRanges:     map[int]int{1: 10, 2: 20, 3: 50},
		DefaultRange:    10,
		Scale:           map[Tier]float64{Easy: 1, Medium: 1.5, Hard: 2},
		StreakThreshold: 3,
	}
}

// TowerPreset returns the stacking-game preset for t. Unknown tiers use Easy.
func (p Policy) TowerPreset(t Tier) TowerPreset {
	if !t.Valid() {
		t = Easy
	}
	preset, ok := p.Tower[t]
	if !ok {
		return defaultPolicy.Tower[t]
	}
	return preset
}

// TowerRange returns the target range of the stacking game for t.
func (p Policy) TowerRange(t Tier) Range {
	return p.TowerPreset(t).Target
}

// GradeRange returns the operand range for a grade. Grades above the largest
// configured grade reuse its range; grades below 1 get DefaultRange.
func (p Policy) GradeRange(grade int) int {
	if grade < 1 || len(p.GradeRanges) == 0 {
		return p.DefaultRange
	}
	grades := make([]int, 0, len(p.GradeRanges))
	for g := range p.GradeRanges {
		grades = append(grades, g)
	}
	slices.Sort(grades)

	rng := p.DefaultRange
	for _, g := range grades {
		if g > grade {
			break
		}
		rng = p.GradeRanges[g]
	}
	return rng
}

// Scaled stretches a base range for a tier, rounding to the nearest integer.
// The result is never smaller than base.
func (p Policy) Scaled(base int, t Tier) int {
	f, ok := p.Scale[t]
	if !ok || f < 1 {
		f = 1
	}
	return max(base, int(math.Round(float64(base)*f)))
}

// FromStreak returns Medium once the streak exceeds the threshold.
func (p Policy) FromStreak(streak int) Tier {
	if streak > p.StreakThreshold {
		return Medium
	}
	return Easy
}

// normalize replaces missing or invalid values with the defaults.
func (p *Policy) normalize() {
	def := DefaultPolicy()

	if p.Tower == nil {
		p.Tower = make(map[Tier]TowerPreset, len(def.Tower))
	}
	for _, t := range AllTiers() {
		preset, ok := p.Tower[t]
		if !ok || !preset.Target.valid() {
			p.Tower[t] = def.Tower[t]
			continue
		}
		if preset.MaxBlock < 1 {
			preset.MaxBlock = def.Tower[t].MaxBlock
		}
		if preset.Distractors < 0 {
			preset.Distractors = def.Tower[t].Distractors
		}
		if preset.DistractorMax < 1 {
			preset.DistractorMax = def.Tower[t].DistractorMax
		}
		p.Tower[t] = preset
	}
	for t := range p.Tower {
		if !t.Valid() {
			delete(p.Tower, t)
		}
	}

	for g, r := range p.GradeRanges {
		if g < 1 || r < 1 {
			delete(p.GradeRanges, g)
		}
	}
	if len(p.GradeRanges) == 0 {
		p.GradeRanges = def.GradeRanges
	}
	if p.DefaultRange < 1 {
		p.DefaultRange = def.DefaultRange
	}

	if p.Scale == nil {
		p.Scale = make(map[Tier]float64, len(def.Scale))
	}
	for _, t := range AllTiers() {
		if f, ok := p.Scale[t]; !ok || f < 1 {
			p.Scale[t] = def.Scale[t]
		}
	}
	if p.StreakThreshold < 0 {
		p.StreakThreshold = def.StreakThreshold
	}
}
