// internal/solver/adversary.go
//
// The "evil" responder. No secret is committed; each guess is answered with
// the truthful feedback shared by the largest group of remaining candidates,
// so the fewest codes are eliminated. The answer is always producible by at
// least one remaining candidate.
//
// Winning is not decided here. When one candidate is left and the guess equals
// it, the reported feedback is all-correct and the caller crystallizes that
// candidate as the secret.

package solver

import (
	"fmt"

	"github.com/vviseguy/mastermind/internal/peg"
)

// SelectFeedback picks the feedback of the largest class of Split(s, guess)
// and returns it with a new space holding exactly that class. s is not modified.
func SelectFeedback(s *Space, guess peg.Code) (peg.Feedback, *Space, error) {
	if s.Len() == 0 {
		return peg.Feedback{}, nil, ErrEmptySolutionSpace
	}
	p, err := Split(s, guess)
	if err != nil {
		return peg.Feedback{}, nil, err
	}
	fb, members := p.Largest()
	return fb, s.derive(members), nil
}

// Respond is SelectFeedback narrowing s in place.
func Respond(s *Space, guess peg.Code) (peg.Feedback, error) {
	fb, next, err := SelectFeedback(s, guess)
	if err != nil {
		return peg.Feedback{}, err
	}
	s.set(next.codes)
	return fb, nil
}

// ProcessSeries answers every guess in order with the adversarial policy,
// starting from the full universe. Applying the returned records one at a
// time with Space.Apply yields the same final space.
func ProcessSeries(length int, alphabet peg.Alphabet, guesses []peg.Code) ([]peg.Record, *Space, error) {
	s, err := New(length, alphabet)
	if err != nil {
		return nil, nil, err
	}
	records := make([]peg.Record, 0, len(guesses))
	for i, g := range guesses {
		fb, err := Respond(s, g)
		if err != nil {
			return nil, nil, fmt.Errorf("round %d: %w", i+1, err)
		}
		records = append(records, peg.Record{Guess: g, Feedback: fb})
	}
	return records, s, nil
}
