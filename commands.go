// commands.go
//
// Command-line surface.
//   - play:      interactive game (normal, evil or assist mode).
//   - assist:    shorthand for `play --mode assist`.
//   - replay:    load a YAML transcript and report the remaining space.
//   - recommend: rank opening guesses for the configured board.
//
// Persistent flags override the environment defaults from loadConfig.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vviseguy/mastermind/internal/game"
	"github.com/vviseguy/mastermind/internal/palette"
	"github.com/vviseguy/mastermind/internal/peg"
	"github.com/vviseguy/mastermind/internal/solver"
	"github.com/vviseguy/mastermind/internal/store"
)

// newRootCmd wires every subcommand to cfg and the given streams.
func newRootCmd(cfg *Config, in io.Reader, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "mastermind",
		Short:         "Play, solve and analyse Mastermind codes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
				zerolog.SetGlobalLevel(lvl)
			} else {
				log.Warn().Str("level", cfg.LogLevel).Msg("unknown log level, keeping default")
			}
			if err := palette.Init(); err != nil {
				return fmt.Errorf("load palette: %w", err)
			}
			return cfg.validate()
		},
	}
	root.SetIn(in)
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.IntVar(&cfg.Length, "length", cfg.Length, "pegs per code")
	pf.IntVar(&cfg.Colors, "colors", cfg.Colors, "number of palette colors in play")
	pf.IntVar(&cfg.Rows, "rows", cfg.Rows, "maximum guesses (0 = unlimited)")
	pf.IntVar(&cfg.SampleCap, "sample-cap", cfg.SampleCap, "candidate guesses scored per hint (0 = all)")
	pf.IntVar(&cfg.MaxResults, "max-results", cfg.MaxResults, "hints shown (0 = all)")
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	root.AddCommand(newPlayCmd(cfg, ""), newPlayCmd(cfg, game.ModeAssist), newReplayCmd(cfg), newRecommendCmd(cfg))
	return root
}

// newPlayCmd builds `play`, or `assist` when fixed is ModeAssist.
func newPlayCmd(cfg *Config, fixed game.Mode) *cobra.Command {
	var (
		mode  string
		daily bool
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play interactively against a secret or the evil responder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fixed != "" {
				mode = string(fixed)
			}
			m, err := game.ParseMode(mode)
			if err != nil {
				return err
			}
			alphabet, err := palette.Alphabet(cfg.Colors)
			if err != nil {
				return err
			}
			s := newSession(*cfg, alphabet, store.NewMemoryStore(), cmd.InOrStdin(), cmd.OutOrStdout())
			s.daily = daily
			if err := s.start(cmd.Context(), m); err != nil {
				return err
			}
			return s.run(cmd.Context())
		},
	}
	if fixed == game.ModeAssist {
		cmd.Use = "assist"
		cmd.Short = "Track a physical game: enter each guess with the feedback you received"
		return cmd
	}
	cmd.Flags().StringVar(&mode, "mode", string(game.ModeNormal), "normal, evil or assist")
	cmd.Flags().BoolVar(&daily, "daily", false, "use today's deterministic secret (normal mode)")
	return cmd
}

func newReplayCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "replay <transcript.yaml>",
		Short: "Replay a recorded game and show what is still possible",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			tr, err := loadTranscript(f)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			return runReplay(cmd.Context(), *cfg, tr, cmd.OutOrStdout())
		},
	}
}

func newRecommendCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "recommend",
		Short: "Rank opening guesses by worst-case remaining codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			alphabet, err := palette.Alphabet(cfg.Colors)
			if err != nil {
				return err
			}
			space, err := solver.New(cfg.Length, alphabet)
			if err != nil {
				return err
			}
			recs, err := solver.Recommend(cmd.Context(), space, cfg.SampleCap, cfg.MaxResults)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d codes over %s, %d pegs\n", space.Len(), alphabet, cfg.Length)
			printRecommendations(out, recs)
			return nil
		},
	}
}

// printRecommendations lists hints one per line; '*' marks guesses that could win.
func printRecommendations(w io.Writer, recs []solver.Recommendation) {
	for i, r := range recs {
		mark := " "
		if r.Consistent {
			mark = "*"
		}
		fmt.Fprintf(w, "%2d. %s%s worst %d, %d outcomes  (%s)\n",
			i+1, r.Guess, mark, r.WorstCase, r.Classes, palette.Describe(r.Guess))
	}
}

// printCodes lists codes when there are at most limit of them.
func printCodes(w io.Writer, codes []peg.Code, limit int) {
	if len(codes) > limit {
		fmt.Fprintf(w, "%d codes remain\n", len(codes))
		return
	}
	for _, c := range codes {
		fmt.Fprintf(w, "  %s  (%s)\n", c, palette.Describe(c))
	}
}
