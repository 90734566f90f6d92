package probingmap

// ProbingMap is an open-addressed hash map. Every entry lives directly in the
// backing slots, collisions are resolved with double hashing, and the table
// doubles once the load factor exceeds the growth threshold.
//
// Deletion leaves no tombstones: the freed slot becomes empty right away and
// the cluster following it is re-inserted.
//
// ProbingMap is not safe for concurrent use. Growth replaces the backing
// storage and removal re-enters the insert path.
type ProbingMap[K comparable, V any] struct {
	table[K, V]
}

// Returns a new instance of the probing map. Capacity is rounded up to a power
// of two; zero or negative capacity selects DefaultCapacity.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) *ProbingMap[K, V] {
	var m ProbingMap[K, V]
	m.init(capacity, opts...)

	return &m
}

// Insert puts key in the map or replaces its value.
// The only possible error is ErrTableFull.
func (m *ProbingMap[K, V]) Insert(key K, value V) error {
	return m.insert(key, value)
}

// Retrieve returns the value stored for key, or ErrKeyNotFound.
func (m *ProbingMap[K, V]) Retrieve(key K) (V, error) {
	return m.retrieve(key)
}

// Get is Retrieve in comma-ok form.
func (m *ProbingMap[K, V]) Get(key K) (V, bool) {
	idx, ok := m.find(key)
	if !ok {
		return m.emptyV, false
	}

	return m.slots[idx].value, true
}

// Remove deletes key. Missing keys are ignored; the result reports whether
// key was present.
func (m *ProbingMap[K, V]) Remove(key K) bool {
	return m.remove(key)
}

// Range calls f for every entry in unspecified order until f returns false.
// The map must not be modified during Range.
func (m *ProbingMap[K, V]) Range(f func(key K, value V) bool) {
	m.rangeSlots(f)
}
