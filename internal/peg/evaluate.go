// internal/peg/evaluate.go
//
// Scoring of one guess against one candidate code.
//
// Pass 1:
//   - Exact positional matches count as Correct; both sides are consumed.
//
// Pass 2:
//   - Each unconsumed guess peg takes the first unconsumed candidate peg of the
//     same symbol (WrongPosition) or, if none is left, counts as Incorrect.
//
// Consuming one candidate peg per match keeps repeated symbols exact: two reds
// in the guess against one red in the candidate earn a single credit.

package peg

import "fmt"

// maxInline is the code length handled without heap allocation.
const maxInline = 16

// Evaluate scores guess against candidate.
// Both must have the same length and contain no Unset pegs.
// The result is symmetric: Evaluate(a, b) == Evaluate(b, a).
func Evaluate(guess, candidate Code) (Feedback, error) {
	if len(guess) != len(candidate) {
		return Feedback{}, fmt.Errorf("%w: guess has %d pegs, candidate has %d",
			ErrLengthMismatch, len(guess), len(candidate))
	}
	if !guess.IsComplete() || !candidate.IsComplete() {
		return Feedback{}, fmt.Errorf("%w: unset peg in scored code", ErrInvalidSymbol)
	}
	return Score(guess, candidate), nil
}

// Score is Evaluate without validation. Callers guarantee equal lengths;
// the solver uses it on the hot path after validating the guess once.
func Score(guess, candidate Code) Feedback {
	n := len(guess)
	var gBuf, cBuf [maxInline]bool
	var gUsed, cUsed []bool
	if n <= maxInline {
		gUsed, cUsed = gBuf[:n], cBuf[:n]
	} else {
		gUsed, cUsed = make([]bool, n), make([]bool, n)
	}

	var fb Feedback
	for i := 0; i < n; i++ {
		if guess[i] == candidate[i] {
			fb.Correct++
			gUsed[i], cUsed[i] = true, true
		}
	}

	for i := 0; i < n; i++ {
		if gUsed[i] {
			continue
		}
		found := false
		for j := 0; j < n; j++ {
			if !cUsed[j] && candidate[j] == guess[i] {
				cUsed[j] = true
				found = true
				break
			}
		}
		if found {
			fb.WrongPosition++
		} else {
			fb.Incorrect++
		}
	}
	return fb
}
