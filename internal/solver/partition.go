// internal/solver/partition.go
//
// Partitioning of a solution space by the feedback a guess would receive.
// Every candidate lands in exactly one class; the classes are disjoint and
// together cover the space. Split never mutates the space.

package solver

import (
	"slices"

	"github.com/vviseguy/mastermind/internal/peg"
)

// Partition maps each producible feedback to the candidates that produce it.
type Partition struct {
	Guess   peg.Code
	classes map[peg.Feedback][]peg.Code
	size    int
}

// Split scores every candidate of s against guess and groups them by feedback.
// Members of each class keep the space's order.
func Split(s *Space, guess peg.Code) (*Partition, error) {
	if err := s.checkGuess(guess); err != nil {
		return nil, err
	}
	p := &Partition{Guess: guess, classes: make(map[peg.Feedback][]peg.Code), size: len(s.codes)}
	for _, c := range s.codes {
		fb := peg.Score(guess, c)
		p.classes[fb] = append(p.classes[fb], c)
	}
	return p, nil
}

// Feedbacks lists the producible feedbacks in ascending Feedback.Less order.
func (p *Partition) Feedbacks() []peg.Feedback {
	out := make([]peg.Feedback, 0, len(p.classes))
	for fb := range p.classes {
		out = append(out, fb)
	}
	slices.SortFunc(out, compareFeedback)
	return out
}

// Class returns the candidates producing fb (nil if none).
func (p *Partition) Class(fb peg.Feedback) []peg.Code { return p.classes[fb] }

// Classes is the number of distinct feedbacks.
func (p *Partition) Classes() int { return len(p.classes) }

// Size is the total number of candidates across all classes.
func (p *Partition) Size() int { return p.size }

// Largest returns the biggest class. Equal sizes go to the greatest feedback
// in Less order, so (2,0,2) beats (1,1,2) beats (1,0,3), except that the
// solved feedback never wins a tie.
func (p *Partition) Largest() (peg.Feedback, []peg.Code) {
	var (
		best    peg.Feedback
		members []peg.Code
	)
	for fb, codes := range p.classes {
		if len(codes) > len(members) || (len(codes) == len(members) && p.tieBeats(fb, best)) {
			best, members = fb, codes
		}
	}
	return best, members
}

// tieBeats orders equally sized classes.
func (p *Partition) tieBeats(fb, best peg.Feedback) bool {
	n := len(p.Guess)
	if fb.Solved(n) != best.Solved(n) {
		return best.Solved(n)
	}
	return best.Less(fb)
}

// WorstCase is the size of the largest class.
func (p *Partition) WorstCase() int {
	_, members := p.Largest()
	return len(members)
}

// worstCase counts class sizes without materializing members.
// It returns the largest class size and the number of non-empty classes.
func worstCase(s *Space, guess peg.Code) (worst, classes int) {
	stride := s.length + 1
	counts := make([]int, stride*stride)
	for _, c := range s.codes {
		fb := peg.Score(guess, c)
		i := fb.Correct*stride + fb.WrongPosition
		if counts[i] == 0 {
			classes++
		}
		counts[i]++
		if counts[i] > worst {
			worst = counts[i]
		}
	}
	return worst, classes
}

func compareFeedback(a, b peg.Feedback) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	}
	return 0
}
