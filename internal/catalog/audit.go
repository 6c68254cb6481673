package catalog

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/mathplay/internal/difficulty"
	"github.com/abhisek/mathplay/internal/problemgen"
)

// Violation is one generated level that failed its checks.
type Violation struct {
	GameID string
	Tier   difficulty.Tier
	Err    *problemgen.ValidationError
}

func (v Violation) String() string {
	return fmt.Sprintf("%s/%s: %v", v.GameID, v.Tier, v.Err)
}

// AuditReport summarizes an Audit run.
type AuditReport struct {
	Levels     int
	Violations []Violation
}

// OK reports whether no violation was found.
func (r AuditReport) OK() bool { return len(r.Violations) == 0 }

// Audit calls every game builder, and the tower generator, n times per tier
// and checks the raw output without the dispatcher's fallback. At most
// maxViolations are kept. It stops early when ctx is cancelled.
func Audit(ctx context.Context, rng *rand.Rand, policy difficulty.Policy, n, maxViolations int) (AuditReport, error) {
	var report AuditReport
	validators := problemgen.DefaultValidators()

	record := func(gameID string, tier difficulty.Tier, verr *problemgen.ValidationError) {
		if verr == nil || len(report.Violations) >= maxViolations {
			return
		}
		report.Violations = append(report.Violations, Violation{GameID: gameID, Tier: tier, Err: verr})
	}

	for _, tier := range difficulty.AllTiers() {
		preset := policy.TowerPreset(tier)

		for _, desc := range All() {
			if err := ctx.Err(); err != nil {
				return report, err
			}
			for range n {
				report.Levels++
				if desc.IsTower() {
					record(desc.ID, tier, problemgen.ValidateTower(problemgen.Tower(rng, preset), preset))
					continue
				}
				l := desc.Build(rng, Scale{Policy: policy, Tier: tier, Grade: desc.Grade})
				record(desc.ID, tier, problemgen.Validate(&l, validators))
			}
		}
	}
	return report, nil
}
