// transcript.go
//
// YAML transcripts for `replay`.
//
//   length: 4
//   colors: RGBYOP        # optional; defaults to the first --colors palette entries
//   mode: assist          # assist (feedback given) or evil (feedback derived)
//   rounds:
//     - guess: RRGG
//       feedback: 1/1     # correct/wrong[/incorrect]; omitted in evil mode
//
// Assist transcripts are replayed onto a fresh space. Evil transcripts are
// answered by the adversarial responder, printing the feedback it chose.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/vviseguy/mastermind/internal/game"
	"github.com/vviseguy/mastermind/internal/palette"
	"github.com/vviseguy/mastermind/internal/peg"
	"github.com/vviseguy/mastermind/internal/solver"
)

type transcript struct {
	Length int          `yaml:"length"`
	Colors string       `yaml:"colors"`
	Mode   string       `yaml:"mode"`
	Rounds []transRound `yaml:"rounds"`
}

type transRound struct {
	Guess    string `yaml:"guess"`
	Feedback string `yaml:"feedback"`
}

// loadTranscript decodes a transcript, rejecting unknown fields.
func loadTranscript(r io.Reader) (*transcript, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var t transcript
	if err := dec.Decode(&t); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty transcript")
		}
		return nil, err
	}
	return &t, nil
}

// board resolves the code length and alphabet, preferring the transcript's own.
func (t *transcript) board(cfg Config) (int, peg.Alphabet, error) {
	length := t.Length
	if length == 0 {
		length = cfg.Length
	}
	if t.Colors != "" {
		a, err := peg.ParseAlphabet(t.Colors)
		return length, a, err
	}
	a, err := palette.Alphabet(cfg.Colors)
	return length, a, err
}

// runReplay rebuilds the space described by t and prints it with hints.
func runReplay(ctx context.Context, cfg Config, t *transcript, out io.Writer) error {
	mode, err := game.ParseMode(t.Mode)
	if err != nil {
		return err
	}
	if t.Mode == "" {
		mode = game.ModeAssist
	}
	length, alphabet, err := t.board(cfg)
	if err != nil {
		return err
	}

	guesses := make([]peg.Code, len(t.Rounds))
	for i, r := range t.Rounds {
		if guesses[i], err = peg.ParseCode(palette.Normalize(r.Guess), alphabet); err != nil {
			return fmt.Errorf("round %d: %w", i+1, err)
		}
	}

	var (
		records []peg.Record
		space   *solver.Space
	)
	switch mode {
	case game.ModeEvil:
		if records, space, err = solver.ProcessSeries(length, alphabet, guesses); err != nil {
			return err
		}
	case game.ModeAssist:
		records = make([]peg.Record, len(guesses))
		for i, r := range t.Rounds {
			fb, err := peg.ParseFeedback(r.Feedback, length)
			if err != nil {
				return fmt.Errorf("round %d: %w", i+1, err)
			}
			records[i] = peg.Record{Guess: guesses[i], Feedback: fb}
		}
		if space, err = solver.Replay(length, alphabet, records); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: transcripts are assist or evil, not %s", game.ErrWrongMode, mode)
	}

	for i, r := range records {
		fmt.Fprintf(out, "%2d. %s  %s\n", i+1, r.Guess, r.Feedback)
	}
	fmt.Fprintf(out, "%d of %d codes remain\n", space.Len(), space.UniverseSize())
	printCodes(out, space.Candidates(), listLimit)

	recs, err := solver.Recommend(ctx, space, cfg.SampleCap, cfg.MaxResults)
	if err != nil {
		return err
	}
	printRecommendations(out, recs)
	return nil
}
