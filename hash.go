package probingmap

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// HashFunc must be deterministic for the lifetime of a map: equal keys
// have to produce equal hashes.
type HashFunc[K comparable] func(K) uint64

// MakeDefaultHashFunc returns a maphash based hasher bound to the given seed.
func MakeDefaultHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// XXHashString hashes string-like keys with xxhash64. Unlike the default
// hasher it is not seeded, so probe positions are reproducible across runs.
func XXHashString[K ~string](key K) uint64 {
	return xxhash.Sum64String(string(key))
}

// XXHashBytes16 hashes 16-byte array keys such as UUIDs with xxhash64.
func XXHashBytes16[K ~[16]byte](key K) uint64 {
	return xxhash.Sum64(key[:])
}
