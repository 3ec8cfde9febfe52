package game

import (
	"crypto/rand"
	"math/big"
)

// Rand is the injectable randomness source for endless-mode selection.
// *math/rand.Rand satisfies it, which is what tests use to pin outcomes.
type Rand interface {
	Intn(n int) int
}

// CryptoRand is the default Rand, backed by crypto/rand. On a failed
// read it falls back to index 0 rather than aborting the round.
type CryptoRand struct{}

// Intn returns a uniform value in [0,n).
func (CryptoRand) Intn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(v.Int64())
}
