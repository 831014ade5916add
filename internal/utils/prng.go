// internal/utils/prng.go
package utils

import (
	"math"
	"math/rand"
	"time"
)

// PRNGService wraps a seeded generator so every random decision in a game
// comes from one reproducible source.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService seeds from the clock when seed is 0.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Float64 returns a value in [0, 1).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Chance reports true with probability p.
func (s *PRNGService) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// Angle returns a uniformly random heading in radians.
func (s *PRNGService) Angle() float64 {
	return s.rng.Float64() * 2 * math.Pi
}
