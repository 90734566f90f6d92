package probingmap

import "go.uber.org/zap"

type Option[K comparable, V any] func(t *table[K, V])

// Override default hash function.
func WithHashFunc[K comparable, V any](f HashFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.hashFunc = f
	}
}

// WithLogger sets the logger used for growth and table-full events.
// A nil logger is ignored.
func WithLogger[K comparable, V any](logger *zap.Logger) Option[K, V] {
	return func(t *table[K, V]) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithFixedCapacity disables growth. The table keeps the capacity it was
// created with and Insert reports ErrTableFull once a probe sequence is
// exhausted.
func WithFixedCapacity[K comparable, V any]() Option[K, V] {
	return func(t *table[K, V]) {
		t.fixed = true
	}
}

// WithGrowthThreshold overrides the load factor above which the table grows.
// Values outside (0, 1] are ignored.
func WithGrowthThreshold[K comparable, V any](ratio float64) Option[K, V] {
	return func(t *table[K, V]) {
		if ratio > 0 && ratio <= 1 {
			t.threshold = ratio
		}
	}
}
