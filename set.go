package probingmap

// ProbingSet is a set of keys on top of the same table as ProbingMap,
// with the same growth and deletion behaviour. Values take no space.
type ProbingSet[K comparable] struct {
	table[K, struct{}]
}

func NewSet[K comparable](capacity int, opts ...Option[K, struct{}]) *ProbingSet[K] {
	var ss ProbingSet[K]
	ss.init(capacity, opts...)

	return &ss
}

// Add puts key in the set. The only possible error is ErrTableFull.
func (ss *ProbingSet[K]) Add(key K) error {
	return ss.insert(key, struct{}{})
}

func (ss *ProbingSet[K]) Has(key K) bool {
	_, ok := ss.find(key)
	return ok
}

func (ss *ProbingSet[K]) Remove(key K) bool {
	return ss.remove(key)
}

// Range calls f for every key in unspecified order until f returns false.
func (ss *ProbingSet[K]) Range(f func(key K) bool) {
	ss.rangeSlots(func(k K, _ struct{}) bool {
		return f(k)
	})
}
