package searcher

import "lukechampine.com/frand"

// Rand supplies the randomness playouts draw from: rollout moves and
// selection tie-breaks. The production default is frand's unpredictable
// generator; a seeded golang.org/x/exp/rand.Rand satisfies the
// interface too, for reproducible searches in tests.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

func defaultRand() Rand {
	return frand.New()
}
