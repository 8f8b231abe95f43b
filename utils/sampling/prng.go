package sampling

import (
	"sync"

	"golang.org/x/crypto/blake2b"
)

// KeyedPRNG deterministically generates a stream of bytes from a key using
// the extendable output of blake2b. Two instances with the same key produce
// the same stream. A KeyedPRNG with an empty key is insecure.
// Calls are serialized by a mutex, but concurrent readers will observe
// interleaved, hence non-reproducible, sequences.
type KeyedPRNG struct {
	mutex sync.Mutex
	key   []byte
	xof   blake2b.XOF
}

// NewKeyedPRNG creates a new instance of [KeyedPRNG].
// The key can be at most 64 bytes.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	var err error
	prng := &KeyedPRNG{key: append([]byte{}, key...)}
	prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	return prng, err
}

// Key returns a copy of the key used to seed the PRNG.
func (prng *KeyedPRNG) Key() (key []byte) {
	return append([]byte{}, prng.key...)
}

// Read reads bytes from the KeyedPRNG on sum.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	return prng.xof.Read(sum)
}

// Reset resets the PRNG to its initial state.
func (prng *KeyedPRNG) Reset() {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	prng.xof.Reset()
}
