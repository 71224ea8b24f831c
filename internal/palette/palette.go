// internal/palette/palette.go
//
// Peg color palette management.
//
// Responsibilities:
//   - Load the palette from an environment-provided file or fall back to the
//     embedded default (assets/palette.txt).
//   - Build game alphabets from the first N colors.
//   - Map symbols back to color names for display.
//
// Palette file format:
//   - One color per line: "<symbol> <name>", e.g. "R red".
//   - Blank lines and lines starting with '#' are skipped.
//   - Symbols are single printable ASCII characters, unique, case-sensitive.
//
// Environment variables:
//   PALETTE_FILE=/path/to/palette.txt
//
// Initialization is run once (sync.Once).

package palette

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/vviseguy/mastermind/assets"
	"github.com/vviseguy/mastermind/internal/peg"
)

// Color is one palette entry.
type Color struct {
	Symbol peg.Symbol
	Name   string
}

var (
	initOnce   sync.Once
	colors     []Color
	names      map[peg.Symbol]string
	initialErr error
)

// Init loads the palette exactly once.
// Returns an error if the palette ends up empty or malformed.
func Init() error {
	initOnce.Do(func() {
		var lines []string
		var err error
		if path := os.Getenv("PALETTE_FILE"); path != "" {
			lines, err = readPaletteFile(path)
		} else {
			lines, err = assets.PaletteLines()
		}
		if err != nil {
			initialErr = err
			return
		}
		colors, initialErr = Parse(lines)
		names = make(map[peg.Symbol]string, len(colors))
		for _, c := range colors {
			names[c.Symbol] = c.Name
		}
	})
	return initialErr
}

// readPaletteFile loads the non-comment lines of a palette file.
func readPaletteFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// Parse converts "<symbol> <name>" lines into colors, keeping their order.
func Parse(lines []string) ([]Color, error) {
	seen := make(map[peg.Symbol]bool, len(lines))
	out := make([]Color, 0, len(lines))
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if len(fields[0]) != 1 || fields[0][0] <= ' ' || fields[0][0] > '~' {
			return nil, fmt.Errorf("palette: symbol %q must be one printable character", fields[0])
		}
		sym := peg.Symbol(fields[0][0])
		if seen[sym] {
			return nil, fmt.Errorf("palette: duplicate symbol %q", fields[0])
		}
		seen[sym] = true
		name := strings.ToLower(fields[0])
		if len(fields) > 1 {
			name = strings.Join(fields[1:], " ")
		}
		out = append(out, Color{Symbol: sym, Name: name})
	}
	if len(out) == 0 {
		return nil, errors.New("palette: no colors defined")
	}
	return out, nil
}

// Colors returns the loaded palette in order.
func Colors() []Color {
	return append([]Color(nil), colors...)
}

// Alphabet returns an alphabet of the first n palette colors.
func Alphabet(n int) (peg.Alphabet, error) {
	if n <= 0 {
		return peg.Alphabet{}, peg.ErrEmptyAlphabet
	}
	if n > len(colors) {
		return peg.Alphabet{}, fmt.Errorf("palette: %d colors requested, %d available", n, len(colors))
	}
	syms := make([]peg.Symbol, n)
	for i := 0; i < n; i++ {
		syms[i] = colors[i].Symbol
	}
	return peg.NewAlphabet(syms...)
}

// Name returns the color name of s, or the symbol itself when unknown.
func Name(s peg.Symbol) string {
	if n, ok := names[s]; ok {
		return n
	}
	return s.String()
}

// Describe spells a code out by color names ("red green blue yellow").
func Describe(c peg.Code) string {
	parts := make([]string, len(c))
	for i, s := range c {
		parts[i] = Name(s)
	}
	return strings.Join(parts, " ")
}

// Normalize prepares user input for peg.ParseCode: trimmed and, when the
// palette has no lowercase symbols, upper-cased.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	for _, c := range colors {
		if c.Symbol >= 'a' && c.Symbol <= 'z' {
			return s
		}
	}
	return strings.ToUpper(s)
}
