// Package randutil centralises how random sources are built so that every
// call site gets the same split between reproducible seeded shuffles and
// system entropy.
package randutil

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// source is a splitmix64 counter generator: the state advances by a fixed
// golden-ratio increment and each output is an avalanche mix of the counter.
// Fast and well distributed, not cryptographically secure.
type source struct {
	state uint64
}

var _ mrand.Source64 = (*source)(nil)

func (s *source) Uint64() uint64 {
	s.state += goldenRatio64
	return mix(s.state)
}

func (s *source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

func (s *source) Seed(seed int64) {
	s.state = uint64(seed)
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// New returns a *rand.Rand seeded deterministically from the provided
// int64. The same seed always yields the same stream.
func New(seed int64) *mrand.Rand {
	return mrand.New(&source{state: uint64(seed)})
}

// NewSystem returns a *rand.Rand seeded from system entropy, for rounds
// where no seed was requested.
func NewSystem() *mrand.Rand {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand failing means the platform entropy source is broken;
		// nothing sensible to fall back to for a shuffle either.
		panic("randutil: reading system entropy: " + err.Error())
	}
	return New(int64(binary.LittleEndian.Uint64(b[:])))
}
