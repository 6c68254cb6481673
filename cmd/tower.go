package cmd

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathplay/internal/catalog"
	"github.com/abhisek/mathplay/internal/difficulty"
	"github.com/abhisek/mathplay/internal/problemgen"
)

var towerCmd = &cobra.Command{
	Use:   "tower",
	Short: "Generate one tower-building level",
	RunE: func(cmd *cobra.Command, args []string) error {
		tierVal, _ := cmd.Flags().GetString("tier")
		tier, err := difficulty.ParseTierStrict(tierVal)
		if err != nil {
			return err
		}
		asJSON, _ := cmd.Flags().GetBool("json")

		logger, err := newLogger(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		policy, err := loadPolicy(cmd)
		if err != nil {
			return fmt.Errorf("load policy: %w", err)
		}
		rng, _ := newRand(cmd)

		return runTower(cmd.OutOrStdout(), catalog.NewDispatcher(policy, logger), rng, tier, asJSON)
	},
}

func init() {
	towerCmd.Flags().String("tier", "easy", "Difficulty tier: easy, medium or hard")
	towerCmd.Flags().Bool("json", false, "Print the level as JSON")
}

func runTower(w io.Writer, d *catalog.Dispatcher, rng *rand.Rand, tier difficulty.Tier, asJSON bool) error {
	tl := d.GenerateTowerLevel(rng, tier)

	if asJSON {
		data, err := problemgen.EncodeJSON(tl, problemgen.TowerSchema)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	fmt.Fprintf(w, "── tower (%s) ──\n", tier)
	fmt.Fprintf(w, "Target: %d\n", tl.Target)
	blocks := make([]string, len(tl.Blocks))
	for i, b := range tl.Blocks {
		blocks[i] = fmt.Sprint(b)
	}
	fmt.Fprintf(w, "Blocks: %s\n", strings.Join(blocks, " "))
	if len(tl.Solution) > 0 {
		fmt.Fprintf(w, "Solution: %v\n", tl.Solution)
	}
	return nil
}
