package gen

import (
	"math/rand"
	"time"
)

// NewRNG creates a seeded random number generator. A zero seed picks a
// time-based one; the effective seed is returned so runs can be replayed.
func NewRNG(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}
