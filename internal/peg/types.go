// internal/peg/types.go
//
// Core value types shared by the engine.
// Defines:
//   - Symbol:   one peg color; Unset is the sentinel for an empty slot.
//   - Alphabet: the ordered set of usable symbols for a game.
//   - Code:     a fixed-length ordered sequence of symbols.
//   - Feedback: positionless (correct, wrongPosition, incorrect) histogram.
//   - Record:   one completed round (guess + the feedback it received).
//
// All values are plain data; Code slices are treated as immutable once built.

package peg

import (
	"fmt"
	"strconv"
	"strings"
)

// Symbol is a single peg value. Printable ASCII is used so codes read naturally ("RGBY").
type Symbol byte

// Unset marks an empty slot in an in-progress guess. It never appears in a
// complete Code or inside a solution space.
const Unset Symbol = 0

// String renders the symbol, using "." for Unset.
func (s Symbol) String() string {
	if s == Unset {
		return "."
	}
	return string(rune(s))
}

// Alphabet is an ordered, de-duplicated list of usable symbols.
// The zero value is an empty alphabet.
type Alphabet struct {
	symbols []Symbol
	pos     [256]uint8 // index+1 of each symbol; 0 means absent
}

// NewAlphabet builds an alphabet from symbols in the given order.
// Unset entries are dropped. Duplicates are rejected.
func NewAlphabet(symbols ...Symbol) (Alphabet, error) {
	var a Alphabet
	for _, s := range symbols {
		if s == Unset {
			continue
		}
		if a.pos[s] != 0 {
			return Alphabet{}, fmt.Errorf("%w: duplicate symbol %q", ErrInvalidSymbol, s)
		}
		if len(a.symbols) == 255 {
			return Alphabet{}, fmt.Errorf("%w: more than 255 symbols", ErrInvalidSymbol)
		}
		a.symbols = append(a.symbols, s)
		a.pos[s] = uint8(len(a.symbols))
	}
	if len(a.symbols) == 0 {
		return Alphabet{}, ErrEmptyAlphabet
	}
	return a, nil
}

// ParseAlphabet builds an alphabet from the bytes of s ("RGBYOP").
func ParseAlphabet(s string) (Alphabet, error) {
	syms := make([]Symbol, len(s))
	for i := 0; i < len(s); i++ {
		syms[i] = Symbol(s[i])
	}
	return NewAlphabet(syms...)
}

// Len reports the number of usable symbols.
func (a Alphabet) Len() int { return len(a.symbols) }

// Symbols returns a copy of the symbols in alphabet order.
func (a Alphabet) Symbols() []Symbol { return append([]Symbol(nil), a.symbols...) }

// Contains reports whether s is a usable symbol of a.
func (a Alphabet) Contains(s Symbol) bool { return a.pos[s] != 0 }

// Index returns the position of s in the alphabet, or -1 when absent.
func (a Alphabet) Index(s Symbol) int { return int(a.pos[s]) - 1 }

// String returns the symbols joined together ("RGBY").
func (a Alphabet) String() string {
	var b strings.Builder
	for _, s := range a.symbols {
		b.WriteByte(byte(s))
	}
	return b.String()
}

// Validate checks that c is complete, has the given length and only uses symbols of a.
func (a Alphabet) Validate(c Code, length int) error {
	if len(c) != length {
		return fmt.Errorf("%w: code %s has %d pegs, want %d", ErrLengthMismatch, c, len(c), length)
	}
	for i, s := range c {
		if s == Unset {
			return fmt.Errorf("%w: position %d is unset", ErrInvalidSymbol, i)
		}
		if !a.Contains(s) {
			return fmt.Errorf("%w: %q is not in alphabet %s", ErrInvalidSymbol, s, a)
		}
	}
	return nil
}

// Compare orders codes lexicographically by alphabet position.
// Shorter codes sort first when one is a prefix of the other.
func (a Alphabet) Compare(x, y Code) int {
	n := min(len(x), len(y))
	for i := 0; i < n; i++ {
		if x[i] == y[i] {
			continue
		}
		if a.Index(x[i]) < a.Index(y[i]) {
			return -1
		}
		return 1
	}
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	return 0
}

// CodeAt decodes index as a base-Len() number of the given length, most
// significant position first. Index 0 is the code of all first symbols, and
// increasing indices follow Compare order.
func (a Alphabet) CodeAt(length int, index uint64) Code {
	c := make(Code, length)
	base := uint64(len(a.symbols))
	for i := length - 1; i >= 0; i-- {
		c[i] = a.symbols[index%base]
		index /= base
	}
	return c
}

// Code is an ordered sequence of symbols.
type Code []Symbol

// ParseCode converts s into a code, requiring every byte to belong to a.
func ParseCode(s string, a Alphabet) (Code, error) {
	c := make(Code, len(s))
	for i := 0; i < len(s); i++ {
		sym := Symbol(s[i])
		if !a.Contains(sym) {
			return nil, fmt.Errorf("%w: %q is not in alphabet %s", ErrInvalidSymbol, s[i], a)
		}
		c[i] = sym
	}
	return c, nil
}

// String renders the code compactly ("RGBY"); unset slots print as ".".
func (c Code) String() string {
	var b strings.Builder
	for _, s := range c {
		b.WriteString(s.String())
	}
	return b.String()
}

// Key returns the canonical hashable form of the code.
func (c Code) Key() string {
	b := make([]byte, len(c))
	for i, s := range c {
		b[i] = byte(s)
	}
	return string(b)
}

// Equal reports whether both codes match at every position.
func (c Code) Equal(o Code) bool {
	if len(c) != len(o) {
		return false
	}
	for i := range c {
		if c[i] != o[i] {
			return false
		}
	}
	return true
}

// IsComplete reports whether no slot is Unset.
func (c Code) IsComplete() bool {
	for _, s := range c {
		if s == Unset {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (c Code) Clone() Code { return append(Code(nil), c...) }

// Feedback is the positionless score of a guess against a candidate.
type Feedback struct {
	Correct       int `json:"correct" yaml:"correct"`
	WrongPosition int `json:"wrongPosition" yaml:"wrongPosition"`
	Incorrect     int `json:"incorrect" yaml:"incorrect"`
}

// NewFeedback builds a feedback for a code of the given length, deriving Incorrect.
func NewFeedback(length, correct, wrongPosition int) (Feedback, error) {
	if correct < 0 || wrongPosition < 0 || correct+wrongPosition > length {
		return Feedback{}, fmt.Errorf("%w: %d correct + %d wrong position exceeds %d pegs",
			ErrLengthMismatch, correct, wrongPosition, length)
	}
	return Feedback{Correct: correct, WrongPosition: wrongPosition, Incorrect: length - correct - wrongPosition}, nil
}

// ParseFeedback reads "c/w" or "c/w/i" (commas also accepted).
func ParseFeedback(s string, length int) (Feedback, error) {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '/' || r == ',' || r == ' ' })
	if len(parts) != 2 && len(parts) != 3 {
		return Feedback{}, fmt.Errorf("feedback %q: want correct/wrong[/incorrect]", s)
	}
	n := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return Feedback{}, fmt.Errorf("feedback %q: %w", s, err)
		}
		n[i] = v
	}
	fb, err := NewFeedback(length, n[0], n[1])
	if err != nil {
		return Feedback{}, err
	}
	if len(n) == 3 && n[2] != fb.Incorrect {
		return Feedback{}, fmt.Errorf("%w: feedback %q does not sum to %d", ErrLengthMismatch, s, length)
	}
	return fb, nil
}

// Total is the number of pegs the feedback accounts for.
func (f Feedback) Total() int { return f.Correct + f.WrongPosition + f.Incorrect }

// Solved reports whether every one of length pegs is correct.
func (f Feedback) Solved(length int) bool { return f.Correct == length && f.Total() == length }

// Less orders feedback ascending by (Correct, WrongPosition, Incorrect).
func (f Feedback) Less(o Feedback) bool {
	if f.Correct != o.Correct {
		return f.Correct < o.Correct
	}
	if f.WrongPosition != o.WrongPosition {
		return f.WrongPosition < o.WrongPosition
	}
	return f.Incorrect < o.Incorrect
}

// String renders "correct/wrong/incorrect".
func (f Feedback) String() string {
	return fmt.Sprintf("%d/%d/%d", f.Correct, f.WrongPosition, f.Incorrect)
}

// Record is one completed round. Callers own records; the engine never mutates them.
type Record struct {
	Guess    Code
	Feedback Feedback
}
