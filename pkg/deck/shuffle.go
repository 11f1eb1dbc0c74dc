package deck

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand/v2"
	"time"
)

// Source supplies the random indices used by the shuffle.
// *math/rand/v2.Rand satisfies it.
type Source interface {
	// IntN returns a value in [0, n). n is always > 0.
	IntN(n int) int
}

// cryptoSource draws indices from crypto/rand. If crypto/rand fails, it
// switches to a time-seeded PCG for the rest of its life.
type cryptoSource struct {
	fallback *mrand.Rand
}

func (s *cryptoSource) IntN(n int) int {
	if s.fallback == nil {
		nBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
		if err == nil {
			return int(nBig.Int64())
		}
		seed := uint64(time.Now().UnixNano())
		s.fallback = mrand.New(mrand.NewPCG(seed, seed>>1|1))
	}
	return s.fallback.IntN(n)
}

// fisherYates permutes cards in place. Every permutation is equally likely
// provided src is uniform.
func fisherYates[T any](cards []T, src Source) {
	for i := len(cards) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}
