package slot

import (
	"math/rand/v2"
	"time"
)

// RNG is satisfied by *rand.Rand from math/rand/v2.
type RNG interface {
	Float64() float64
	IntN(n int) int
}

func NewRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func NewTimeSeededRNG() *rand.Rand {
	return NewRNG(uint64(time.Now().UnixNano()))
}
