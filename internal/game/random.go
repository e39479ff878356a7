package game

import (
	"math/rand"
	"time"
)

// RandomSource supplies the randomness used when the ball is served
type RandomSource interface {
	// Float64 returns a uniform value in [0, 1)
	Float64() float64
	// Sign returns +1 or -1 with equal probability
	Sign() float64
}

type randSource struct {
	r *rand.Rand
}

// NewRandSource returns a RandomSource backed by math/rand. A zero seed
// seeds from the clock.
func NewRandSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &randSource{r: rand.New(rand.NewSource(seed))}
}

func (s *randSource) Float64() float64 {
	return s.r.Float64()
}

func (s *randSource) Sign() float64 {
	if s.r.Intn(2) == 0 {
		return 1
	}
	return -1
}
