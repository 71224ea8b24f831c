// assets/embed.go
//
// Embedded default data files.
//   - palette.txt: default peg colors ("<symbol> <name>" per line).

package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed palette.txt
var FS embed.FS

// readLines returns the trimmed, non-empty, non-comment lines of an embedded file.
func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
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

// PaletteLines returns the default palette entries.
func PaletteLines() ([]string, error) {
	return readLines("palette.txt")
}
