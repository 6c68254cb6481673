package cmd

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathplay/internal/catalog"
	"github.com/abhisek/mathplay/internal/difficulty"
)

// maxReportedViolations caps the violations printed by check.
const maxReportedViolations = 20

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Fuzz every game at every tier and verify level invariants",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("n")
		if n <= 0 {
			return fmt.Errorf("invalid --n %d: must be positive", n)
		}
		policy, err := loadPolicy(cmd)
		if err != nil {
			return fmt.Errorf("load policy: %w", err)
		}
		rng, seed := newRand(cmd)

		return runCheck(cmd.Context(), cmd.OutOrStdout(), rng, seed, policy, n)
	},
}

func init() {
	checkCmd.Flags().Int("n", 10000, "Levels per game and tier")
}

func runCheck(ctx context.Context, w io.Writer, rng *rand.Rand, seed uint64, policy difficulty.Policy, n int) error {
	report, err := catalog.Audit(ctx, rng, policy, n, maxReportedViolations)
	if err != nil {
		return fmt.Errorf("audit interrupted after %d levels: %w", report.Levels, err)
	}

	fmt.Fprintf(w, "Checked %d levels (seed %d)\n", report.Levels, seed)
	if report.OK() {
		fmt.Fprintln(w, "✓ all invariants hold")
		return nil
	}

	for _, v := range report.Violations {
		fmt.Fprintf(w, "✗ %s\n", v)
	}
	return fmt.Errorf("%d invariant violations (showing at most %d)", len(report.Violations), maxReportedViolations)
}
