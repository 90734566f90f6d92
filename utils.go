package probingmap

import (
	"math/bits"
	"unsafe"
)

// Returns the next power of 2 for the given value `v`. Values above 1<<63
// have no representable power of two and saturate at 1<<63.
func NextPowerOf2(v uint64) uint64 {
	if v <= 1 {
		return 1
	}

	return uint64(1) << min(bits.Len64(v-1), 63)
}

// Estimates capacity (number of slots) from the given memory size in bytes.
// The result is rounded down to a power of two, so passing it to New never
// allocates more than size. Returns 0 if not even the smallest table fits.
func CapacityFromSize[K comparable, V any](size uintptr) int {
	sizeOfSlot := unsafe.Sizeof(slot[K, V]{})
	numSlots := uint64(size / sizeOfSlot)

	if numSlots < minCapacity {
		return 0
	}

	return 1 << (bits.Len64(numSlots) - 1)
}
