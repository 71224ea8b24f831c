// internal/secret/secret.go
//
// Trivial secret-code generators for normal mode.
//   - Random: uniform pick using crypto/rand.
//   - Daily:  deterministic pick from HMAC(salt, YYYY-MM-DD), so every player
//             gets the same code on the same UTC day.
//
// Both pick an index into alphabet^length and decode it with Alphabet.CodeAt.

package secret

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/big"
	"time"

	"github.com/vviseguy/mastermind/internal/peg"
)

// Random returns a uniformly random code.
func Random(length int, alphabet peg.Alphabet) (peg.Code, error) {
	total, err := universe(length, alphabet)
	if err != nil {
		return nil, err
	}
	n, err := rand.Int(rand.Reader, new(big.Int).SetUint64(total))
	if err != nil {
		return nil, err
	}
	return alphabet.CodeAt(length, n.Uint64()), nil
}

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Daily returns the code for the UTC day of t using HMAC(salt, DateKey(t)) % alphabet^length.
func Daily(t time.Time, salt string, length int, alphabet peg.Alphabet) (peg.Code, error) {
	total, err := universe(length, alphabet)
	if err != nil {
		return nil, err
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(t)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	n := binary.BigEndian.Uint64(sum[:8])
	return alphabet.CodeAt(length, n%total), nil
}

// universe computes alphabet^length, rejecting empty or overflowing shapes.
func universe(length int, alphabet peg.Alphabet) (uint64, error) {
	if alphabet.Len() == 0 {
		return 0, peg.ErrEmptyAlphabet
	}
	if length <= 0 {
		return 0, fmt.Errorf("%w: code length %d", peg.ErrLengthMismatch, length)
	}
	total := uint64(1)
	base := uint64(alphabet.Len())
	for i := 0; i < length; i++ {
		if total > (1<<63)/base {
			return 0, fmt.Errorf("secret: %d^%d codes overflow", alphabet.Len(), length)
		}
		total *= base
	}
	return total, nil
}
