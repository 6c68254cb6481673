package catalog

import (
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/abhisek/mathplay/internal/difficulty"
	"github.com/abhisek/mathplay/internal/problemgen"
)

// maxBuildAttempts bounds regeneration of a level that fails validation.
const maxBuildAttempts = 3

// Dispatcher turns a game id and tier into a validated level.
type Dispatcher struct {
	policy     difficulty.Policy
	validators []problemgen.Validator
	logger     *log.Logger
	lookup     func(id string) (Descriptor, error)
}

// NewDispatcher creates a dispatcher using the default validator chain.
// A nil logger uses log.Default().
func NewDispatcher(policy difficulty.Policy, logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.Default()
	}
	return &Dispatcher{
		policy:     policy,
		validators: problemgen.DefaultValidators(),
		logger:     logger.WithPrefix("catalog"),
		lookup:     Get,
	}
}

// Policy returns the difficulty policy the dispatcher scales with.
func (d *Dispatcher) Policy() difficulty.Policy {
	return d.policy
}

// GenerateLevel builds a level for gameID at tier. Unknown games, and games
// without a level builder, get the default sum level. A level that keeps
// failing validation is replaced by the default level as well, so the call
// never fails.
func (d *Dispatcher) GenerateLevel(rng *rand.Rand, gameID string, tier difficulty.Tier) problemgen.Level {
	if !tier.Valid() {
		tier = difficulty.Easy
	}

	desc, err := d.lookup(gameID)
	switch {
	case err != nil:
		d.logger.Warn("unknown game, serving default level", "game", gameID)
		return d.fallback(rng, gameID, tier)
	case desc.Build == nil:
		d.logger.Warn("game has no level builder, serving default level", "game", gameID)
		return d.fallback(rng, gameID, tier)
	}

	scale := Scale{Policy: d.policy, Tier: tier, Grade: desc.Grade}
	for attempt := 1; attempt <= maxBuildAttempts; attempt++ {
		l := desc.Build(rng, scale)
		l.GameID, l.Tier = gameID, tier
		if l.BackgroundTheme == "" {
			l.BackgroundTheme = desc.Theme
		}

		verr := problemgen.Validate(&l, d.validators)
		if verr == nil {
			return l
		}
		d.logger.Warn("generated level rejected",
			"game", gameID, "tier", tier, "attempt", attempt,
			"validator", verr.Validator, "reason", verr.Message)
		if !verr.Retryable {
			break
		}
	}
	return d.fallback(rng, gameID, tier)
}

func (d *Dispatcher) fallback(rng *rand.Rand, gameID string, tier difficulty.Tier) problemgen.Level {
	l := problemgen.DefaultLevel(rng)
	l.GameID, l.Tier = gameID, tier
	return l
}

// GenerateTowerLevel builds a stacking level for tier. A level that fails
// its checks is replaced by a deterministic one built from the preset.
func (d *Dispatcher) GenerateTowerLevel(rng *rand.Rand, tier difficulty.Tier) problemgen.TowerLevel {
	preset := d.policy.TowerPreset(tier)
	for attempt := 1; attempt <= maxBuildAttempts; attempt++ {
		t := problemgen.Tower(rng, preset)
		verr := problemgen.ValidateTower(t, preset)
		if verr == nil {
			return t
		}
		d.logger.Warn("generated tower rejected",
			"tier", tier, "attempt", attempt, "reason", verr.Message)
	}
	return fallbackTower(preset)
}

// fallbackTower splits the smallest target into maximal blocks and pads it
// with 1-blocks.
func fallbackTower(preset difficulty.TowerPreset) problemgen.TowerLevel {
	target := preset.Target.Min
	maxBlock := max(preset.MaxBlock, 1)

	var solution []int
	for remaining := target; remaining > 0; remaining -= min(remaining, maxBlock) {
		solution = append(solution, min(remaining, maxBlock))
	}
	blocks := append([]int(nil), solution...)
	for range max(preset.Distractors, 0) {
		blocks = append(blocks, 1)
	}
	return problemgen.TowerLevel{Target: target, Blocks: blocks, Solution: solution}
}
