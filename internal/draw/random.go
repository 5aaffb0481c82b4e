package draw

import (
	"math/rand"
	"sync"
	"time"

	"github.com/osse101/PrizeDraw_Go/internal/domain"
)

// Source supplies uniform random integers in [0, n)
type Source interface {
	Intn(n int) int
}

// SeededSource is a math/rand generator safe for use from several goroutines.
// Draw randomness is not security critical.
type SeededSource struct {
	mu   sync.Mutex
	rng  *rand.Rand
	seed int64
}

// NewSource creates a seeded generator. A zero seed uses the current time.
func NewSource(seed int64) *SeededSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &SeededSource{
		rng:  rand.New(rand.NewSource(seed)), //nolint:gosec // draw randomness, not security critical
		seed: seed,
	}
}

// Intn returns a uniform integer in [0, n)
func (s *SeededSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// Seed returns the seed the generator was created with, for reproducing a run
func (s *SeededSource) Seed() int64 {
	return s.seed
}

// Shuffle permutes participants in place with Fisher-Yates. Every permutation
// is equally likely given a uniform source.
func Shuffle(participants []domain.Participant, rng Source) {
	for i := len(participants) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		participants[i], participants[j] = participants[j], participants[i]
	}
}

// Sample returns k participants chosen uniformly without replacement using a
// partial Fisher-Yates pass over a copy. The input is not modified.
func Sample(participants []domain.Participant, k int, rng Source) []domain.Participant {
	n := len(participants)
	if k > n {
		k = n
	}
	if k <= 0 {
		return []domain.Participant{}
	}

	pool := make([]domain.Participant, n)
	copy(pool, participants)
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
