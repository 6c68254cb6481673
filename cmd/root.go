package cmd

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathplay/internal/difficulty"
	"github.com/abhisek/mathplay/internal/problemgen"
)

var rootCmd = &cobra.Command{
	Use:   "mathplay",
	Short: "Math mini-games for kids",
	Long: `Mathplay is a terminal math playground for children in grades 1-5.

Every level is generated fresh: pick a game, answer, and the puzzles get
harder as the streak grows.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-file", "", "Log file for the TUI (default ~/.mathplay/mathplay.log)")
	rootCmd.PersistentFlags().Uint64("seed", 0, "RNG seed for reproducible levels (0 = random)")
	rootCmd.PersistentFlags().String("policy", "", "Path to a difficulty policy YAML file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(towerCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(cheerCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger builds the process logger from --log-level.
func newLogger(cmd *cobra.Command, w io.Writer) (*log.Logger, error) {
	levelName, _ := cmd.Flags().GetString("log-level")
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", levelName, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "mathplay",
		ReportTimestamp: true,
	}), nil
}

// loadPolicy resolves the difficulty policy from --policy or the default
// lookup chain.
func loadPolicy(cmd *cobra.Command) (difficulty.Policy, error) {
	path, _ := cmd.Flags().GetString("policy")
	return difficulty.Load(path)
}

// newRand returns a generator seeded from --seed, or a random seed when
// the flag is zero.
func newRand(cmd *cobra.Command) (*rand.Rand, uint64) {
	seed, _ := cmd.Flags().GetUint64("seed")
	if seed == 0 {
		seed = rand.Uint64()
	}
	return problemgen.NewRand(seed), seed
}

// openLogFile opens --log-file for appending, creating ~/.mathplay when the
// default location is used.
func openLogFile(cmd *cobra.Command) (*os.File, error) {
	path, _ := cmd.Flags().GetString("log-file")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, ".mathplay", "mathplay.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// ExecuteContext runs the root command with ctx.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
