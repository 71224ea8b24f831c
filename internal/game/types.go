// internal/game/types.go
//
// Type definitions for game orchestration.
// Defines:
//   - Mode:    how feedback is produced (normal / evil / assist).
//   - State:   coarse lifecycle of a game (playing / won / lost).
//   - Options: parameters for New.
//   - Game:    one session: configuration, rounds played, solution space.

package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vviseguy/mastermind/internal/peg"
	"github.com/vviseguy/mastermind/internal/solver"
)

// Mode selects who answers guesses.
//   - "normal": a fixed secret scores every guess.
//   - "evil":   no secret; the adversarial responder answers, and the secret
//               crystallizes only once it is forced.
//   - "assist": the player copies feedback from a physical board; rounds can be
//               corrected afterwards.
type Mode string

const (
	ModeNormal Mode = "normal"
	ModeEvil   Mode = "evil"
	ModeAssist Mode = "assist"
)

// ParseMode accepts a mode name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeNormal, ModeEvil, ModeAssist:
		return m, nil
	case "":
		return ModeNormal, nil
	}
	return "", fmt.Errorf("unknown mode %q (want normal, evil or assist)", s)
}

// State is the lifecycle of a game.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

var (
	ErrFinished    = errors.New("game finished")
	ErrWrongMode   = errors.New("operation not available in this mode")
	ErrNoSuchRound = errors.New("no such round")
)

// Options configures a new game.
type Options struct {
	Mode     Mode
	Length   int          // pegs per code
	Alphabet peg.Alphabet // usable colors
	Rows     int          // maximum guesses; 0 means unlimited
	Secret   peg.Code     // normal mode only; random when nil
}

// Game holds the state of a single session.
type Game struct {
	ID       string       // Unique game identifier (random hex string).
	Mode     Mode         // Feedback source.
	Length   int          // Pegs per code.
	Alphabet peg.Alphabet // Usable colors.
	Rows     int          // Maximum guesses (0 = unlimited).
	Secret   peg.Code     // Normal: fixed. Evil/assist: nil until decided.
	Finished bool         // True once the game is over (won or lost).
	Won      bool         // True if the game was finished with a win.

	records []peg.Record
	space   *solver.Space
}
