package probingmap

import (
	"hash/maphash"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

const (
	// DefaultCapacity is used when New is given a capacity <= 0.
	DefaultCapacity = 16

	// DefaultGrowthThreshold is the load factor the table is allowed to
	// exceed by at most one entry before the next insert doubles it.
	DefaultGrowthThreshold = 0.75

	// Smallest table; a single slot leaves no room for a probe step.
	minCapacity = 2
)

type slot[K comparable, V any] struct {
	key   K
	value V

	// Full hash of key, so growth and repair never rehash.
	hash uint64
	// Index of this slot within the key's probe sequence.
	dist uint32

	// Number of live entries whose probe path stepped over this slot before
	// reaching their own. An empty slot with passes == 0 terminates lookups.
	passes uint32

	occupied bool
}

type table[K comparable, V any] struct {
	slots []slot[K, V]

	capacity uintptr
	count    uintptr

	threshold float64
	fixed     bool

	hashFunc HashFunc[K]
	logger   *zap.Logger

	growths uint64
	repairs uint64

	emptyV V
}

func (t *table[K, V]) init(capacity int, opts ...Option[K, V]) {
	t.threshold = DefaultGrowthThreshold

	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = MakeDefaultHashFunc[K](maphash.MakeSeed())
	}

	if t.logger == nil {
		t.logger = zap.NewNop()
	}

	t.capacity = normalizeCapacity(capacity)
	t.slots = make([]slot[K, V], t.capacity)
	t.count = 0
}

func normalizeCapacity(capacity int) uintptr {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return uintptr(NextPowerOf2(uint64(max(capacity, minCapacity))))
}

// Size returns the number of slots.
func (t *table[K, V]) Size() int {
	return int(t.capacity)
}

// Count returns the number of live entries.
func (t *table[K, V]) Count() int {
	return int(t.count)
}

// Clear empties every slot and keeps the current capacity.
func (t *table[K, V]) Clear() {
	clear(t.slots)
	t.count = 0
}

func (t *table[K, V]) overloaded() bool {
	return float64(t.count)/float64(t.capacity) > t.threshold
}

func (t *table[K, V]) insert(key K, value V) error {
	if !t.fixed && t.overloaded() {
		t.grow()
	}

	hash := t.hashFunc(key)
	if t.place(hash, key, value) {
		return nil
	}

	t.logger.Warn("failed to insert key",
		zap.Any("key", key),
		zap.Int("capacity", int(t.capacity)),
		zap.Int("count", int(t.count)),
	)

	return errors.Wrapf(ErrTableFull, "capacity %d, count %d", t.capacity, t.count)
}

// place writes key into the first free slot of its probe sequence, or over
// the slot already holding it. It reports false only if every probe is
// occupied by another key, in which case the table is left untouched.
func (t *table[K, V]) place(hash uint64, key K, value V) bool {
	var (
		p = newProbe(hash, t.capacity)

		target    uintptr
		targetPos uintptr
		found     bool
	)

	for i := uintptr(0); i < t.capacity; i++ {
		idx := p.at(i)
		s := &t.slots[idx]

		// 1. Existing key is overwritten in place.
		if s.occupied {
			if s.hash == hash && s.key == key {
				s.value = value
				return true
			}

			continue
		}

		// 2. Cache first free slot.
		if !found {
			target, targetPos, found = idx, i, true
		}

		// 3. Nobody probed past this slot, so key can't be further along.
		if s.passes == 0 {
			break
		}
	}

	if !found {
		return false
	}

	for i := uintptr(0); i < targetPos; i++ {
		t.slots[p.at(i)].passes++
	}

	s := &t.slots[target]
	s.key = key
	s.value = value
	s.hash = hash
	s.dist = uint32(targetPos)
	s.occupied = true
	t.count++

	return true
}

func (t *table[K, V]) find(key K) (uintptr, bool) {
	hash := t.hashFunc(key)
	p := newProbe(hash, t.capacity)

	for i := uintptr(0); i < t.capacity; i++ {
		idx := p.at(i)
		s := &t.slots[idx]

		if s.occupied {
			if s.hash == hash && s.key == key {
				return idx, true
			}

			continue
		}

		if s.passes == 0 {
			return 0, false
		}
	}

	return 0, false
}

func (t *table[K, V]) retrieve(key K) (V, error) {
	idx, ok := t.find(key)
	if !ok {
		return t.emptyV, ErrKeyNotFound
	}

	return t.slots[idx].value, nil
}

func (t *table[K, V]) remove(key K) bool {
	idx, ok := t.find(key)
	if !ok {
		return false
	}

	t.evict(idx)
	t.repair(idx)

	return true
}

// evict empties slot idx and releases the passes its entry held on the slots
// it probed over. The removed entry is returned in a detached slot.
func (t *table[K, V]) evict(idx uintptr) slot[K, V] {
	s := &t.slots[idx]
	e := *s

	p := newProbe(e.hash, t.capacity)
	for i := uintptr(0); i < uintptr(e.dist); i++ {
		t.slots[p.at(i)].passes--
	}

	// Keep passes: it belongs to the position, not to the entry.
	*s = slot[K, V]{passes: s.passes}
	t.count--

	return e
}

// repair walks forward slot by slot from a freed position and re-inserts
// every entry of the following cluster, so entries that had to step over
// the freed slot move closer to the start of their probe sequence.
//
// Every re-insert has at least the slot it was evicted from available, so
// placement can't fail.
func (t *table[K, V]) repair(freed uintptr) {
	mask := t.capacity - 1

	for n, j := uintptr(1), (freed+1)&mask; n < t.capacity; n, j = n+1, (j+1)&mask {
		if !t.slots[j].occupied {
			return
		}

		e := t.evict(j)
		t.place(e.hash, e.key, e.value)
		t.repairs++
	}
}

// grow re-inserts every entry into a table twice the size. Probe positions
// depend on the capacity, so slots are never copied verbatim.
func (t *table[K, V]) grow() {
	next := table[K, V]{
		slots:    make([]slot[K, V], t.capacity*2),
		capacity: t.capacity * 2,
	}

	for i := range t.slots {
		s := &t.slots[i]
		if s.occupied {
			next.place(s.hash, s.key, s.value)
		}
	}

	t.logger.Debug("resizing table",
		zap.Int("from", int(t.capacity)),
		zap.Int("to", int(next.capacity)),
		zap.Int("count", int(next.count)),
	)

	t.slots = next.slots
	t.capacity = next.capacity
	t.count = next.count
	t.growths++
}

func (t *table[K, V]) rangeSlots(f func(k K, v V) bool) {
	for i := range t.slots {
		s := &t.slots[i]
		if !s.occupied {
			continue
		}

		if !f(s.key, s.value) {
			return
		}
	}
}

// Stats returns a snapshot of the table's shape.
func (t *table[K, V]) Stats() Stats {
	var longest int
	for i := range t.slots {
		if t.slots[i].occupied {
			longest = max(longest, int(t.slots[i].dist))
		}
	}

	return Stats{
		Count:           int(t.count),
		Capacity:        int(t.capacity),
		LoadFactor:      float64(t.count) / float64(t.capacity),
		Growths:         int(t.growths),
		Repairs:         int(t.repairs),
		LongestProbe:    longest,
		GrowthThreshold: t.threshold,
	}
}
