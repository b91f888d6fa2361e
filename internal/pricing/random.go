package pricing

import (
	"math/rand/v2"
	"sync"
)

// RandomSource supplies the randomness for price perturbation and trend.
type RandomSource interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// NewRandomSource returns a goroutine-safe source. A zero seed uses the
// runtime's entropy-seeded generator.
func NewRandomSource(seed uint64) RandomSource {
	if seed == 0 {
		return entropySource{}
	}
	return &seededSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

type entropySource struct{}

func (entropySource) Float64() float64 { return rand.Float64() }
func (entropySource) IntN(n int) int   { return rand.IntN(n) }

type seededSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *seededSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

func (s *seededSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}
