package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathplay/internal/encourage"
	"github.com/abhisek/mathplay/internal/llm"
)

var cheerCmd = &cobra.Command{
	Use:   "cheer",
	Short: "Print one encouragement phrase",
	Long: `Print one encouragement phrase. When an LLM provider is configured
(MATHPLAY_LLM_PROVIDER or a standard *_API_KEY variable) the phrase is
generated; otherwise a built-in phrase is picked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		game, _ := cmd.Flags().GetString("game")
		streak, _ := cmd.Flags().GetInt("streak")

		logger, err := newLogger(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		provider, err := llm.NewProvider(cmd.Context(), llm.ResolveConfig(), logger)
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}
		rng, _ := newRand(cmd)

		c := encourage.NewCheerleader(provider, encourage.DefaultCheerConfig(), rng, logger)
		return runCheer(cmd.Context(), cmd.OutOrStdout(), c, encourage.CheerInput{GameName: game, Streak: streak})
	},
}

func init() {
	cheerCmd.Flags().String("game", "", "Game name to mention in the prompt")
	cheerCmd.Flags().Int("streak", 1, "Current correct-answer streak")
}

func runCheer(ctx context.Context, w io.Writer, c *encourage.Cheerleader, in encourage.CheerInput) error {
	fmt.Fprintln(w, c.Phrase(ctx, in))
	return nil
}
