package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"

	"github.com/amirhossein-jamali/party-bank/internal/domain/port/core"
)

// Source is a PCG generator guarded for concurrent handlers
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource creates a generator seeded with the given values
func NewSource(seed1, seed2 uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// NewSeededSource creates a generator seeded from crypto/rand
func NewSeededSource() (core.RandomSource, error) {
	var buf [16]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return nil, err
	}
	return NewSource(binary.LittleEndian.Uint64(buf[:8]), binary.LittleEndian.Uint64(buf[8:])), nil
}

// Float64 returns a pseudo-random number in [0.0, 1.0)
func (s *Source) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}
