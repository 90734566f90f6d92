package probingmap

// probe is the double-hash probe sequence of a single key.
//
// Table capacity is always a power of two and the step is forced odd, so the
// step is coprime with the capacity and the first `capacity` probes visit every
// slot exactly once.
type probe struct {
	start uintptr
	step  uintptr
	mask  uintptr
}

func newProbe(hash uint64, capacity uintptr) probe {
	mask := capacity - 1

	return probe{
		// h1 = hash mod capacity
		start: uintptr(hash & uint64(mask)),
		// h2 = 1 + hash mod (capacity - 1), forced odd.
		step: uintptr(1+hash%uint64(mask)) | 1,
		mask: mask,
	}
}

// at returns the slot index of the i-th probe.
//
//go:inline
func (p probe) at(i uintptr) uintptr {
	return (p.start + i*p.step) & p.mask
}

// distance returns i such that p.at(i) == idx.
func (p probe) distance(idx uintptr) uintptr {
	return ((idx - p.start) & p.mask) * inverseOdd(p.step) & p.mask
}

// inverseOdd returns the multiplicative inverse of an odd v modulo 2^64,
// and therefore modulo every smaller power of two.
func inverseOdd(v uintptr) uintptr {
	x := uint64(v)
	inv := x // correct to 3 bits, every round doubles it
	for range 5 {
		inv *= 2 - x*inv
	}

	return uintptr(inv)
}
