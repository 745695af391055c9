package random

import (
	"crypto/rand"
	"math/big"
)

// Random provides random draws that can be mocked for testing.
// Room code generation depends on uniform per-position draws.
type Random interface {
	// Code draws a string of the given length, each position uniform
	// over the given alphabet
	Code(length int, alphabet string) string
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Code draws a uniform random string from the alphabet
func (r *CryptoRandom) Code(length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	out := make([]byte, length)
	for i := range out {
		out[i] = alphabet[intn(len(alphabet))]
	}
	return string(out)
}

// intn returns a cryptographically random int in [0, n)
func intn(n int) int {
	result, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand should never fail; fall back to 0
		return 0
	}
	return int(result.Int64())
}
