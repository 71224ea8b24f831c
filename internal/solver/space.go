// internal/solver/space.go
//
// Solution space: the set of codes still consistent with every round so far.
// Responsibilities:
//   - Enumerate the full universe alphabet^length in alphabet order.
//   - Narrow the set in place for each (guess, feedback) record.
//   - Canonical-key membership tests and stable enumeration.
//
// Concurrency:
//   - Single writer. Apply/Reset must not overlap any other call on the same
//     Space; read-only calls (Candidates, All, Contains, Split, Recommend) may
//     run concurrently with each other.
//
// Filtering is not invertible. When an earlier round changes, build a fresh
// space with Replay instead of trying to undo.

package solver

import (
	"errors"
	"fmt"
	"iter"

	"github.com/vviseguy/mastermind/internal/peg"
)

// MaxUniverse bounds alphabet^length so enumeration stays in memory.
const MaxUniverse = 1 << 22

var (
	// ErrEmptySolutionSpace: no candidate is consistent with the history fed in.
	ErrEmptySolutionSpace = errors.New("empty solution space")

	// ErrSpaceTooLarge: alphabet^length exceeds MaxUniverse.
	ErrSpaceTooLarge = errors.New("solution space too large")
)

// Space holds the candidate codes of one game.
type Space struct {
	length   int
	alphabet peg.Alphabet
	universe int
	codes    []peg.Code          // alphabet order
	members  map[string]struct{} // keyed by Code.Key
}

// New enumerates every code of the given length over alphabet.
func New(length int, alphabet peg.Alphabet) (*Space, error) {
	s := &Space{}
	if err := s.Reset(length, alphabet); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset replaces the contents with a fresh full enumeration.
// On error the space is left unchanged.
func (s *Space) Reset(length int, alphabet peg.Alphabet) error {
	if alphabet.Len() == 0 {
		return peg.ErrEmptyAlphabet
	}
	if length <= 0 {
		return fmt.Errorf("%w: code length %d", peg.ErrLengthMismatch, length)
	}
	universe := 1
	for i := 0; i < length; i++ {
		universe *= alphabet.Len()
		if universe > MaxUniverse {
			return fmt.Errorf("%w: %d^%d codes", ErrSpaceTooLarge, alphabet.Len(), length)
		}
	}

	codes := make([]peg.Code, universe)
	for i := range codes {
		codes[i] = alphabet.CodeAt(length, uint64(i))
	}
	s.length, s.alphabet, s.universe = length, alphabet, universe
	s.set(codes)
	return nil
}

// Replay builds a fresh space and applies records in order.
func Replay(length int, alphabet peg.Alphabet, records []peg.Record) (*Space, error) {
	s, err := New(length, alphabet)
	if err != nil {
		return nil, err
	}
	for i, r := range records {
		if _, err := s.Apply(r.Guess, r.Feedback); err != nil {
			return nil, fmt.Errorf("round %d: %w", i+1, err)
		}
	}
	return s, nil
}

// Apply keeps only candidates c with Evaluate(guess, c) == feedback and
// returns the new size. If nothing would survive, ErrEmptySolutionSpace is
// returned and the space is left as it was.
func (s *Space) Apply(guess peg.Code, feedback peg.Feedback) (int, error) {
	if err := s.checkGuess(guess); err != nil {
		return len(s.codes), err
	}
	if feedback.Correct < 0 || feedback.WrongPosition < 0 || feedback.Incorrect < 0 ||
		feedback.Total() != s.length {
		return len(s.codes), fmt.Errorf("%w: feedback %s for %d pegs", peg.ErrLengthMismatch, feedback, s.length)
	}

	var kept []peg.Code
	for _, c := range s.codes {
		if peg.Score(guess, c) == feedback {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		return len(s.codes), fmt.Errorf("%w: no candidate scores %s against %s", ErrEmptySolutionSpace, feedback, guess)
	}
	s.set(kept)
	return len(kept), nil
}

// Len is the number of remaining candidates.
func (s *Space) Len() int { return len(s.codes) }

// Length is the code length.
func (s *Space) Length() int { return s.length }

// Alphabet returns the usable symbols.
func (s *Space) Alphabet() peg.Alphabet { return s.alphabet }

// UniverseSize is alphabet^length.
func (s *Space) UniverseSize() int { return s.universe }

// IsFull reports whether no candidate has been eliminated yet.
func (s *Space) IsFull() bool { return s.universe > 0 && len(s.codes) == s.universe }

// Contains reports whether c is still a candidate.
func (s *Space) Contains(c peg.Code) bool {
	_, ok := s.members[c.Key()]
	return ok
}

// Candidates returns the remaining codes in alphabet order.
// The returned codes must not be modified.
func (s *Space) Candidates() []peg.Code { return append([]peg.Code(nil), s.codes...) }

// All yields the remaining codes in alphabet order.
func (s *Space) All() iter.Seq[peg.Code] {
	return func(yield func(peg.Code) bool) {
		for _, c := range s.codes {
			if !yield(c) {
				return
			}
		}
	}
}

// Clone returns an independent space with the same candidates.
func (s *Space) Clone() *Space {
	c := &Space{length: s.length, alphabet: s.alphabet, universe: s.universe}
	c.set(append([]peg.Code(nil), s.codes...))
	return c
}

// derive returns a space over the same universe holding only codes.
// codes must be a subset of s in alphabet order.
func (s *Space) derive(codes []peg.Code) *Space {
	d := &Space{length: s.length, alphabet: s.alphabet, universe: s.universe}
	d.set(codes)
	return d
}

// set installs codes and rebuilds the membership index.
func (s *Space) set(codes []peg.Code) {
	s.codes = codes
	s.members = make(map[string]struct{}, len(codes))
	for _, c := range codes {
		s.members[c.Key()] = struct{}{}
	}
}

// checkGuess validates a guess against the space's length and alphabet.
func (s *Space) checkGuess(guess peg.Code) error {
	if s.universe == 0 {
		return ErrEmptySolutionSpace
	}
	return s.alphabet.Validate(guess, s.length)
}
