// ABOUTME: Selection strategy for picking among alternative reply phrasings
// ABOUTME: Seedable random selector for runtime, deterministic first-pick for tests

package replies

import "math/rand"

// Selector picks an index in [0, n). Selection among phrasings is
// presentation only and must never influence matching outcomes.
type Selector interface {
	Pick(n int) int
}

// randomSelector picks uniformly from a seeded source.
type randomSelector struct {
	rng *rand.Rand
}

// NewRandomSelector returns a Selector backed by a rand source with the
// given seed, so runs can be reproduced.
func NewRandomSelector(seed int64) Selector {
	return &randomSelector{rng: rand.New(rand.NewSource(seed))}
}

func (s *randomSelector) Pick(n int) int {
	if n <= 1 {
		return 0
	}
	return s.rng.Intn(n)
}

// FirstSelector always picks index 0. Used by tests and anywhere
// deterministic output matters.
type FirstSelector struct{}

func (FirstSelector) Pick(int) int { return 0 }
