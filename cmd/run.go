package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathplay/internal/app"
	"github.com/abhisek/mathplay/internal/catalog"
	"github.com/abhisek/mathplay/internal/encourage"
	"github.com/abhisek/mathplay/internal/llm"
	"github.com/abhisek/mathplay/internal/play"
	"github.com/abhisek/mathplay/internal/problemgen"
	"github.com/abhisek/mathplay/internal/screens"
)

// runApp builds dependencies and launches the TUI. Logs go to a file so
// they do not tear the alt screen.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	logFile, err := openLogFile(cmd)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := newLogger(cmd, logFile)
	if err != nil {
		return err
	}

	policy, err := loadPolicy(cmd)
	if err != nil {
		return fmt.Errorf("load policy: %w", err)
	}

	rng, seed := newRand(cmd)
	logger.Info("starting player", "seed", seed)

	// Without a provider the cheerleader uses the built-in phrases. It gets its
	// own rng since cheers are produced off the update loop.
	provider, err := llm.NewProvider(ctx, llm.ResolveConfig(), logger)
	if err != nil {
		logger.Warn("LLM provider not configured, using built-in cheers", "err", err)
		provider = nil
	}

	env := &screens.Env{
		Dispatcher: catalog.NewDispatcher(policy, logger),
		Cheer:      encourage.NewCheerleader(provider, encourage.DefaultCheerConfig(), problemgen.NewRand(rng.Uint64()), logger),
		Session:    play.NewSession(policy),
		Rand:       rng,
	}

	return app.Run(ctx, env)
}
