package random

import (
	"math/rand"
	"time"
)

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// Float64 returns a random float in [0.0, 1.0)
	Float64() float64

	// Shuffle pseudo-randomizes the order of n elements via swap
	Shuffle(n int, swap func(i, j int))

	// String generates a random string of the given length from the given alphabet
	String(length int, alphabet string) string
}

// SeededRandom implements Random using a math/rand source. A fixed seed
// makes every run reproducible; New seeds from the wall clock instead.
type SeededRandom struct {
	rng *rand.Rand
}

// New creates a time-seeded SeededRandom (non-reproducible runs)
func New() *SeededRandom {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded creates a SeededRandom with a fixed seed
func NewSeeded(seed int64) *SeededRandom {
	return &SeededRandom{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a random int in [0, n)
func (r *SeededRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.Intn(n)
}

// Float64 returns a random float in [0.0, 1.0)
func (r *SeededRandom) Float64() float64 {
	return r.rng.Float64()
}

// Shuffle pseudo-randomizes the order of n elements via swap
func (r *SeededRandom) Shuffle(n int, swap func(i, j int)) {
	if n > 1 {
		r.rng.Shuffle(n, swap)
	}
}

// String generates a random string of the given length from the given alphabet
func (r *SeededRandom) String(length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	result := make([]byte, length)
	for i := 0; i < length; i++ {
		result[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(result)
}
