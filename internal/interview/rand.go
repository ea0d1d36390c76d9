package interview

import (
	"math/rand"
	"sync"
)

// Rand is the policy-level random source shared by the evaluator, selector and
// report generator. It is part of the scoring contract, not an implementation
// detail: tests inject a fixed seed to pin down exact score bounds. It is not
// a cryptographic source and must not be used as one.
type Rand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRand(seed int64) *Rand {
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a uniform integer in [0, n).
func (r *Rand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(n)
}

// Between returns a uniform integer in [lo, hi], bounds inclusive.
func (r *Rand) Between(lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}
