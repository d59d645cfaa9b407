package core

// RandomSource supplies uniform random numbers to the domain.
// Implementations must be safe for concurrent use.
type RandomSource interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0)
	Float64() float64
}
