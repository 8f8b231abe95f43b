// Package sampling implements deterministic sources of randomness.
package sampling

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	mrand "math/rand/v2"

	"github.com/zeebo/blake3"
)

// Source is a deterministic stream of random bytes keyed by a 32-byte seed.
// The stream is the extendable output of keyed blake3.
// It implements [io.Reader] and the [math/rand/v2.Source] interface.
// A Source must not be shared between goroutines: use [Source.NewSource]
// to derive independent streams.
type Source struct {
	seed   [32]byte
	reader io.Reader
	buf    [8]byte
	rng    *mrand.Rand
}

// NewSeed returns a fresh seed read from crypto/rand.
func NewSeed() (seed [32]byte) {
	if _, err := rand.Read(seed[:]); err != nil {
		panic(fmt.Errorf("rand.Read: %w", err))
	}
	return
}

// NewSource returns a new [Source] keyed with seed.
func NewSource(seed [32]byte) *Source {
	h, err := blake3.NewKeyed(seed[:])
	if err != nil {
		// blake3 only rejects keys whose length differs from 32 bytes.
		panic(fmt.Errorf("blake3.NewKeyed: %w", err))
	}
	s := &Source{seed: seed, reader: h.Digest()}
	s.rng = mrand.New(s)
	return s
}

// NewSourceFromReader returns a new [Source] drawing its bytes from r,
// for example a [KeyedPRNG].
func NewSourceFromReader(r io.Reader) *Source {
	s := &Source{reader: r}
	s.rng = mrand.New(s)
	return s
}

// Seed returns the seed of the source.
func (s *Source) Seed() [32]byte {
	return s.seed
}

// NewSeed derives a new seed from the stream.
func (s *Source) NewSeed() (seed [32]byte) {
	s.Read(seed[:])
	return
}

// NewSource derives a new independent [Source] from the stream.
func (s *Source) NewSource() *Source {
	return NewSource(s.NewSeed())
}

// Read fills p with bytes of the stream.
func (s *Source) Read(p []byte) (n int, err error) {
	if n, err = io.ReadFull(s.reader, p); err != nil {
		panic(fmt.Errorf("source.Read: %w", err))
	}
	return
}

// Uint64 returns the next 64 bits of the stream.
func (s *Source) Uint64() uint64 {
	s.Read(s.buf[:])
	return binary.LittleEndian.Uint64(s.buf[:])
}

// Float64 returns a uniform float64 in [0, 1).
func (s *Source) Float64() float64 {
	return float64(s.Uint64()>>11) / (1 << 53)
}

// NormFloat64 returns a standard normal float64.
func (s *Source) NormFloat64() float64 {
	return s.rng.NormFloat64()
}

// Bounded returns a uniform value in [0, max) by rejection sampling.
// max must be greater than zero.
func (s *Source) Bounded(max uint64) uint64 {
	if max&(max-1) == 0 {
		return s.Uint64() & (max - 1)
	}
	// largest multiple of max representable on 64 bits
	lim := math.MaxUint64 - (math.MaxUint64%max+1)%max
	for {
		if x := s.Uint64(); x <= lim {
			return x % max
		}
	}
}
