// internal/solver/recommend.go
//
// Minimax guess ranking.
// Responsibilities:
//   - Choose the pool of guesses to score: canonical openings while nothing is
//     known, otherwise a capped, evenly strided sample of the remaining codes.
//   - Score each guess by its worst case: the size of the largest feedback class,
//     i.e. what would survive if the evil responder answered it.
//   - Rank ascending by worst case, then by alphabet order of the guess.
//
// This is a heuristic. Guesses outside the remaining set are only considered
// through the openings, so the result can miss the true minimax guess.
//
// sampleCap is the main cost knob: scoring costs len(pool) * Len() evaluations.

package solver

import (
	"cmp"
	"context"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/vviseguy/mastermind/internal/peg"
)

// Recommendation is one ranked guess.
type Recommendation struct {
	Guess      peg.Code `json:"guess"`
	WorstCase  int      `json:"worstCase"`  // largest class size
	Classes    int      `json:"classes"`    // distinct feedbacks the guess can produce
	Consistent bool     `json:"consistent"` // the guess itself is still a candidate
}

// Recommend ranks candidate guesses for s and returns at most maxResults of them.
// sampleCap <= 0 scores every remaining candidate; maxResults <= 0 returns all.
func Recommend(ctx context.Context, s *Space, sampleCap, maxResults int) ([]Recommendation, error) {
	if s.Len() == 0 {
		return nil, ErrEmptySolutionSpace
	}

	var pool []peg.Code
	if s.IsFull() {
		pool = Openings(s.length, s.alphabet)
	} else {
		pool = sample(s.codes, sampleCap)
	}

	out := make([]Recommendation, len(pool))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, guess := range pool {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			worst, classes := worstCase(s, guess)
			out[i] = Recommendation{
				Guess:      guess,
				WorstCase:  worst,
				Classes:    classes,
				Consistent: s.Contains(guess),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(out, func(a, b Recommendation) int {
		if c := cmp.Compare(a.WorstCase, b.WorstCase); c != 0 {
			return c
		}
		return s.alphabet.Compare(a.Guess, b.Guess)
	})
	if maxResults > 0 && len(out) > maxResults {
		out = out[:maxResults]
	}
	return out, nil
}

// sample picks at most limit codes at an even stride, keeping their order.
func sample(codes []peg.Code, limit int) []peg.Code {
	if limit <= 0 || len(codes) <= limit {
		return codes
	}
	out := make([]peg.Code, limit)
	for i := range out {
		out[i] = codes[i*len(codes)/limit]
	}
	return out
}

// Openings returns one guess per symmetry class of the empty board: for every
// integer partition of length into at most alphabet.Len() parts, the first
// symbols are repeated by part size (length 4: AAAA AAAB AABB AABC ABCD).
// Before any feedback every guess scores like the opening of its shape, so
// these cover all first moves. The result is in alphabet order.
func Openings(length int, alphabet peg.Alphabet) []peg.Code {
	syms := alphabet.Symbols()
	var out []peg.Code
	var walk func(rest, maxPart int, parts []int)
	walk = func(rest, maxPart int, parts []int) {
		if rest == 0 {
			c := make(peg.Code, 0, length)
			for i, n := range parts {
				for j := 0; j < n; j++ {
					c = append(c, syms[i])
				}
			}
			out = append(out, c)
			return
		}
		if len(parts) == len(syms) {
			return
		}
		for part := min(rest, maxPart); part >= 1; part-- {
			walk(rest-part, part, append(parts, part))
		}
	}
	if length > 0 && len(syms) > 0 {
		walk(length, length, nil)
	}
	slices.SortFunc(out, alphabet.Compare)
	return out
}
