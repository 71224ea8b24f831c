// repl.go
//
// Line-oriented game session used by `play` and `assist`.
//
// Input (one command per line):
//   <guess>                    score a guess (normal / evil)
//   <guess> <correct> <wrong>  record a round scored elsewhere (assist)
//   edit <round> <c> <w>       correct an earlier round (assist)
//   hint                       ranked guesses for the current position
//   left                       remaining codes (listed when few)
//   history                    rounds so far
//   new [mode]                 start another game and switch to it
//   games                      list games of this session
//   use <id>                   switch to another game
//   quit | exit                leave
//
// Games live in a store.Store so several can be kept side by side.

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/vviseguy/mastermind/internal/game"
	"github.com/vviseguy/mastermind/internal/palette"
	"github.com/vviseguy/mastermind/internal/peg"
	"github.com/vviseguy/mastermind/internal/secret"
	"github.com/vviseguy/mastermind/internal/store"
)

// listLimit is the most codes `left` prints individually.
const listLimit = 20

type session struct {
	cfg      Config
	alphabet peg.Alphabet
	store    store.Store
	in       *bufio.Scanner
	out      io.Writer
	daily    bool
	now      func() time.Time

	current *game.Game
}

func newSession(cfg Config, alphabet peg.Alphabet, st store.Store, in io.Reader, out io.Writer) *session {
	return &session{
		cfg:      cfg,
		alphabet: alphabet,
		store:    st,
		in:       bufio.NewScanner(in),
		out:      out,
		now:      time.Now,
	}
}

// start creates a game in mode, saves it and makes it current.
func (s *session) start(ctx context.Context, mode game.Mode) error {
	opts := game.Options{Mode: mode, Length: s.cfg.Length, Alphabet: s.alphabet, Rows: s.cfg.Rows}
	if mode == game.ModeNormal && s.daily {
		code, err := secret.Daily(s.now(), s.cfg.DailySalt, s.cfg.Length, s.alphabet)
		if err != nil {
			return err
		}
		opts.Secret = code
	}
	g, err := game.New(opts)
	if err != nil {
		return err
	}
	if err := s.store.Save(ctx, g); err != nil {
		return err
	}
	s.current = g
	fmt.Fprintf(s.out, "game %s (%s): %d pegs, colors %s, %s\n",
		g.ID, g.Mode, g.Length, s.alphabet, rowsText(g.Rows))
	return nil
}

// run reads commands until EOF or quit.
func (s *session) run(ctx context.Context) error {
	for {
		fmt.Fprint(s.out, "> ")
		if !s.in.Scan() {
			fmt.Fprintln(s.out)
			return s.in.Err()
		}
		line := strings.TrimSpace(s.in.Text())
		if line == "" {
			continue
		}
		quit, err := s.dispatch(ctx, strings.Fields(line))
		if err != nil {
			log.Debug().Err(err).Str("line", line).Msg("command rejected")
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// dispatch executes one command. quit reports that the session should end.
func (s *session) dispatch(ctx context.Context, args []string) (quit bool, err error) {
	switch strings.ToLower(args[0]) {
	case "quit", "exit":
		return true, nil
	case "hint":
		return false, s.hint(ctx)
	case "left":
		printCodes(s.out, s.current.Candidates(), listLimit)
		return false, nil
	case "history":
		s.history()
		return false, nil
	case "new":
		mode := s.current.Mode
		if len(args) > 1 {
			if mode, err = game.ParseMode(args[1]); err != nil {
				return false, err
			}
		}
		return false, s.start(ctx, mode)
	case "games":
		return false, s.games(ctx)
	case "use":
		if len(args) != 2 {
			return false, errors.New("usage: use <id>")
		}
		g, err := s.store.Get(ctx, args[1])
		if err != nil {
			return false, err
		}
		s.current = g
		fmt.Fprintf(s.out, "game %s (%s), %d rounds, %s\n", g.ID, g.Mode, len(g.Records()), g.State())
		return false, nil
	case "edit":
		return false, s.edit(args[1:])
	}
	return false, s.play(args)
}

// play handles a guess, with feedback in assist mode.
func (s *session) play(args []string) error {
	guess, err := peg.ParseCode(palette.Normalize(args[0]), s.alphabet)
	if err != nil {
		return err
	}
	g := s.current

	var fb peg.Feedback
	var state game.State
	if g.Mode == game.ModeAssist {
		if len(args) != 3 {
			return errors.New("usage: <guess> <correct> <wrong>")
		}
		if fb, err = s.feedback(args[1], args[2]); err != nil {
			return err
		}
		if state, err = g.Record(guess, fb); err != nil {
			return err
		}
	} else {
		if len(args) != 1 {
			return fmt.Errorf("unknown command %q", strings.Join(args, " "))
		}
		if fb, state, err = g.ApplyGuess(guess); err != nil {
			return err
		}
	}

	fmt.Fprintf(s.out, "%d. %s  %d correct, %d misplaced  (%d left)\n",
		len(g.Records()), guess, fb.Correct, fb.WrongPosition, g.Remaining())
	s.report(state)
	return nil
}

// edit corrects the feedback of an earlier assist round.
func (s *session) edit(args []string) error {
	if len(args) != 3 {
		return errors.New("usage: edit <round> <correct> <wrong>")
	}
	round, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("round %q: %w", args[0], err)
	}
	fb, err := s.feedback(args[1], args[2])
	if err != nil {
		return err
	}
	if err := s.current.EditFeedback(round, fb); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "round %d is now %s (%d left)\n", round, fb, s.current.Remaining())
	s.report(s.current.State())
	return nil
}

// feedback parses a (correct, wrong) pair for the current code length.
func (s *session) feedback(correct, wrong string) (peg.Feedback, error) {
	c, err := strconv.Atoi(correct)
	if err != nil {
		return peg.Feedback{}, fmt.Errorf("correct %q: %w", correct, err)
	}
	w, err := strconv.Atoi(wrong)
	if err != nil {
		return peg.Feedback{}, fmt.Errorf("wrong %q: %w", wrong, err)
	}
	return peg.NewFeedback(s.cfg.Length, c, w)
}

// report prints the outcome once a game is over.
func (s *session) report(state game.State) {
	g := s.current
	switch state {
	case game.StateWon:
		fmt.Fprintf(s.out, "solved in %d rounds: %s (%s)\n", len(g.Records()), g.Secret, palette.Describe(g.Secret))
	case game.StateLost:
		if g.Secret != nil {
			fmt.Fprintf(s.out, "out of rounds; the code was %s (%s)\n", g.Secret, palette.Describe(g.Secret))
		} else {
			fmt.Fprintf(s.out, "out of rounds; %d codes were still possible\n", g.Remaining())
		}
	}
}

func (s *session) hint(ctx context.Context) error {
	recs, err := s.current.Hint(ctx, s.cfg.SampleCap, s.cfg.MaxResults)
	if err != nil {
		return err
	}
	printRecommendations(s.out, recs)
	return nil
}

func (s *session) history() {
	for i, r := range s.current.Records() {
		fmt.Fprintf(s.out, "%2d. %s  %s\n", i+1, r.Guess, r.Feedback)
	}
}

func (s *session) games(ctx context.Context) error {
	all, err := s.store.List(ctx)
	if err != nil {
		return err
	}
	for _, g := range all {
		mark := " "
		if g == s.current {
			mark = "*"
		}
		fmt.Fprintf(s.out, "%s %s  %-6s  %d rounds  %s\n", mark, g.ID, g.Mode, len(g.Records()), g.State())
	}
	return nil
}

func rowsText(rows int) string {
	if rows == 0 {
		return "unlimited rounds"
	}
	return strconv.Itoa(rows) + " rounds"
}
