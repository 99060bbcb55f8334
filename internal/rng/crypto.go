package rng

import (
	"crypto/rand"
	"math/big"
)

// Crypto draws numbers from crypto/rand
// It is safe for concurrent use.
type Crypto struct{}

// Intn returns a random number in [0, n)
func (c Crypto) Intn(n int) int {
	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}
