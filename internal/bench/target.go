package bench

import (
	"github.com/cockroachdb/errors"
	"github.com/llxisdsh/pb"
	"go.uber.org/zap"

	"github.com/homier/probingmap"
)

// Target is a map under measurement.
type Target interface {
	Name() string
	Insert(key, value int) error
	Retrieve(key int) (int, bool)
	Remove(key int)
	// Size is the number of slots for tables that expose it, otherwise the
	// number of entries.
	Size() int
	Count() int
}

// NewTarget builds the target for a baseline name.
func NewTarget(name string) (Target, error) {
	switch name {
	case BaselineBuiltin:
		return &builtinTarget{m: make(map[int]int)}, nil
	case BaselinePB:
		return &pbTarget{m: pb.NewMapOf[int, int]()}, nil
	default:
		return nil, errors.Newf("unknown baseline %q", name)
	}
}

type probingTarget struct {
	m *probingmap.ProbingMap[int, int]
}

func NewProbingTarget(capacity int, logger *zap.Logger) Target {
	return &probingTarget{
		m: probingmap.New(capacity, probingmap.WithLogger[int, int](logger)),
	}
}

func (t *probingTarget) Name() string { return "probing" }

func (t *probingTarget) Insert(key, value int) error {
	return t.m.Insert(key, value)
}

func (t *probingTarget) Retrieve(key int) (int, bool) {
	v, err := t.m.Retrieve(key)
	return v, err == nil
}

func (t *probingTarget) Remove(key int) { t.m.Remove(key) }
func (t *probingTarget) Size() int      { return t.m.Size() }
func (t *probingTarget) Count() int     { return t.m.Count() }

type builtinTarget struct {
	m map[int]int
}

func (t *builtinTarget) Name() string { return BaselineBuiltin }

func (t *builtinTarget) Insert(key, value int) error {
	t.m[key] = value
	return nil
}

func (t *builtinTarget) Retrieve(key int) (int, bool) {
	v, ok := t.m[key]
	return v, ok
}

func (t *builtinTarget) Remove(key int) { delete(t.m, key) }
func (t *builtinTarget) Size() int      { return len(t.m) }
func (t *builtinTarget) Count() int     { return len(t.m) }

type pbTarget struct {
	m *pb.MapOf[int, int]
}

func (t *pbTarget) Name() string { return BaselinePB }

func (t *pbTarget) Insert(key, value int) error {
	t.m.Store(key, value)
	return nil
}

func (t *pbTarget) Retrieve(key int) (int, bool) {
	return t.m.Load(key)
}

func (t *pbTarget) Remove(key int) { t.m.Delete(key) }
func (t *pbTarget) Size() int      { return t.m.Size() }
func (t *pbTarget) Count() int     { return t.m.Size() }
