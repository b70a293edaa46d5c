package question

import (
	"math/rand"
	"time"
)

// Select draws n distinct records from pool in random order. The pool
// is not modified. When n meets or exceeds the pool size the whole pool
// is returned, shuffled. A nil rng gets a time-seeded one; tests pass
// their own for determinism.
func Select(pool []Record, n int, rng *rand.Rand) []Record {
	if n <= 0 || len(pool) == 0 {
		return nil
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if n > len(pool) {
		n = len(pool)
	}
	shuffled := make([]Record, len(pool))
	copy(shuffled, pool)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}
