// internal/game/engine.go
//
// Game orchestration on top of the solver.
// Responsibilities:
//   - Create games for the three modes and keep their solution space current.
//   - Score guesses: against the secret (normal) or adversarially (evil).
//   - Record externally supplied feedback and allow corrections (assist).
//   - Decide win/loss and crystallize the evil-mode secret.
//
// State transitions:
//   - A solved feedback → Finished = true, Won = true.
//   - Else if the number of rounds reaches Rows (when Rows > 0) → Finished = true (loss).
//
// The solver never decides outcomes; everything about secrets and rounds lives here.

package game

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/vviseguy/mastermind/internal/peg"
	"github.com/vviseguy/mastermind/internal/secret"
	"github.com/vviseguy/mastermind/internal/solver"
)

// New constructs a game. In normal mode a nil Options.Secret is replaced by a random code.
func New(opts Options) (*Game, error) {
	mode := opts.Mode
	if mode == "" {
		mode = ModeNormal
	}
	if _, err := ParseMode(string(mode)); err != nil {
		return nil, err
	}
	if opts.Rows < 0 {
		return nil, fmt.Errorf("rows must not be negative, got %d", opts.Rows)
	}
	space, err := solver.New(opts.Length, opts.Alphabet)
	if err != nil {
		return nil, err
	}

	g := &Game{
		ID:       randomID(),
		Mode:     mode,
		Length:   opts.Length,
		Alphabet: opts.Alphabet,
		Rows:     opts.Rows,
		space:    space,
	}
	switch mode {
	case ModeNormal:
		if opts.Secret != nil {
			if err := opts.Alphabet.Validate(opts.Secret, opts.Length); err != nil {
				return nil, fmt.Errorf("secret: %w", err)
			}
			g.Secret = opts.Secret.Clone()
		} else if g.Secret, err = secret.Random(opts.Length, opts.Alphabet); err != nil {
			return nil, err
		}
	default:
		if opts.Secret != nil {
			return nil, fmt.Errorf("%w: %s games take no secret", ErrWrongMode, mode)
		}
	}
	log.Debug().Str("game", g.ID).Str("mode", string(mode)).Int("candidates", space.Len()).Msg("game created")
	return g, nil
}

// ApplyGuess scores a guess in normal or evil mode and records the round.
// Returns the feedback, the new state, or an error (the game is unchanged on error).
func (g *Game) ApplyGuess(guess peg.Code) (peg.Feedback, State, error) {
	if g.Finished {
		return peg.Feedback{}, g.State(), ErrFinished
	}
	if err := g.Alphabet.Validate(guess, g.Length); err != nil {
		return peg.Feedback{}, g.State(), err
	}

	var fb peg.Feedback
	switch g.Mode {
	case ModeNormal:
		fb = peg.Score(guess, g.Secret)
		if _, err := g.space.Apply(guess, fb); err != nil {
			return peg.Feedback{}, g.State(), err
		}
	case ModeEvil:
		var err error
		if fb, err = solver.Respond(g.space, guess); err != nil {
			return peg.Feedback{}, g.State(), err
		}
	default:
		return peg.Feedback{}, g.State(), fmt.Errorf("%w: %s games need reported feedback", ErrWrongMode, g.Mode)
	}

	g.records = append(g.records, peg.Record{Guess: guess.Clone(), Feedback: fb})
	g.settle()
	log.Debug().Str("game", g.ID).Str("guess", guess.String()).Str("feedback", fb.String()).
		Int("remaining", g.space.Len()).Str("state", string(g.State())).Msg("guess applied")
	return fb, g.State(), nil
}

// Record adds an externally scored round (assist mode).
// Contradictory feedback is rejected with solver.ErrEmptySolutionSpace and not recorded.
func (g *Game) Record(guess peg.Code, fb peg.Feedback) (State, error) {
	if g.Mode != ModeAssist {
		return g.State(), fmt.Errorf("%w: %s games score their own guesses", ErrWrongMode, g.Mode)
	}
	if g.Finished {
		return g.State(), ErrFinished
	}
	if _, err := g.space.Apply(guess, fb); err != nil {
		return g.State(), err
	}
	g.records = append(g.records, peg.Record{Guess: guess.Clone(), Feedback: fb})
	g.settle()
	log.Debug().Str("game", g.ID).Str("guess", guess.String()).Str("feedback", fb.String()).
		Int("remaining", g.space.Len()).Msg("round recorded")
	return g.State(), nil
}

// EditFeedback corrects the feedback of round (1-based) in assist mode.
// The space is rebuilt from scratch by replaying every round; if the edited
// history is contradictory nothing changes and the error is returned.
func (g *Game) EditFeedback(round int, fb peg.Feedback) error {
	if g.Mode != ModeAssist {
		return fmt.Errorf("%w: only assist games can be edited", ErrWrongMode)
	}
	if round < 1 || round > len(g.records) {
		return fmt.Errorf("%w: %d (have %d)", ErrNoSuchRound, round, len(g.records))
	}

	edited := append([]peg.Record(nil), g.records...)
	edited[round-1].Feedback = fb
	space, err := solver.Replay(g.Length, g.Alphabet, edited)
	if err != nil {
		return err
	}
	g.records, g.space = edited, space
	g.Finished, g.Won, g.Secret = false, false, nil
	g.settle()
	log.Debug().Str("game", g.ID).Int("round", round).Str("feedback", fb.String()).
		Int("remaining", space.Len()).Msg("round edited")
	return nil
}

// settle derives Finished/Won (and the decided secret) from the rounds so far.
func (g *Game) settle() {
	for _, r := range g.records {
		if r.Feedback.Solved(g.Length) {
			g.Finished, g.Won = true, true
			if g.Mode != ModeNormal {
				// Only one candidate survives a solved round: the guess itself.
				g.Secret = r.Guess.Clone()
			}
			return
		}
	}
	if g.Rows > 0 && len(g.records) >= g.Rows {
		g.Finished = true
		if g.Mode == ModeEvil {
			// Reveal a code consistent with every answer given.
			for c := range g.space.All() {
				g.Secret = c.Clone()
				break
			}
		}
	}
}

// State reports the coarse state of the game.
func (g *Game) State() State {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// Records returns a copy of the rounds played, oldest first.
func (g *Game) Records() []peg.Record {
	return append([]peg.Record(nil), g.records...)
}

// Remaining is the number of codes still consistent with every round.
func (g *Game) Remaining() int { return g.space.Len() }

// Candidates lists the consistent codes in alphabet order.
func (g *Game) Candidates() []peg.Code { return g.space.Candidates() }

// Hint ranks guesses for the current position.
func (g *Game) Hint(ctx context.Context, sampleCap, maxResults int) ([]solver.Recommendation, error) {
	return solver.Recommend(ctx, g.space, sampleCap, maxResults)
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
