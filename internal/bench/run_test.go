package bench

import (
	"context"
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/smartystreets/goconvey/convey"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/homier/probingmap"
)

func TestKeys(t *testing.T) {
	convey.Convey("Keys stay in range", t, func() {
		keys := NewKeys(1, 5, 9)
		seen := make(map[int]bool)

		for range 1000 {
			k := keys.Next()
			convey.So(k, convey.ShouldBeBetweenOrEqual, 5, 9)
			seen[k] = true
		}
		convey.So(len(seen), convey.ShouldEqual, 5)
	})

	convey.Convey("Same seed, same keys", t, func() {
		a, b := NewKeys(42, 1, 1000000), NewKeys(42, 1, 1000000)
		for range 100 {
			convey.So(a.Next(), convey.ShouldEqual, b.Next())
		}
	})

	convey.Convey("Ranges as wide as int", t, func() {
		cases := []struct{ min, max int }{
			{0, math.MaxInt},
			{math.MinInt, math.MaxInt},
			{math.MinInt, 0},
			{math.MaxInt - 1, math.MaxInt},
		}

		for _, c := range cases {
			cfg := DefaultConfig()
			cfg.KeyMin, cfg.KeyMax = c.min, c.max
			convey.So(cfg.Validate(), convey.ShouldBeNil)

			keys := NewKeys(5, c.min, c.max)
			for range 100 {
				convey.So(keys.Next(), convey.ShouldBeBetweenOrEqual, c.min, c.max)
			}
		}
	})

	convey.Convey("Single key range", t, func() {
		keys := NewKeys(3, 7, 7)
		convey.So(keys.Next(), convey.ShouldEqual, 7)
	})
}

// fullTarget fails every insert after the first limit ones.
type fullTarget struct {
	Target
	limit int
}

func (t *fullTarget) Insert(key, value int) error {
	if t.Count() >= t.limit {
		return probingmap.ErrTableFull
	}
	return t.Target.Insert(key, value)
}

func TestRun(t *testing.T) {
	convey.Convey("One round", t, func() {
		target, err := NewTarget(BaselineBuiltin)
		convey.So(err, convey.ShouldBeNil)

		report, err := Run(context.Background(), target, 200, NewKeys(1, 1, 50))
		convey.So(err, convey.ShouldBeNil)

		convey.So(report.Target, convey.ShouldEqual, BaselineBuiltin)
		convey.So(report.Ops, convey.ShouldEqual, 200)
		convey.So(report.Inserts, convey.ShouldEqual, 200)
		convey.So(report.Removes, convey.ShouldEqual, 200)
		convey.So(report.Retrieves, convey.ShouldBeBetweenOrEqual, 1, 200)
		convey.So(report.InsertErr, convey.ShouldBeNil)
		convey.So(report.Count, convey.ShouldEqual, target.Count())
		convey.So(report.Size, convey.ShouldEqual, target.Size())
	})

	convey.Convey("Insert phase stops at the first error", t, func() {
		builtin, _ := NewTarget(BaselineBuiltin)
		target := &fullTarget{Target: builtin, limit: 3}

		report, err := Run(context.Background(), target, 100, NewKeys(1, 1, 1000000))
		convey.So(err, convey.ShouldBeNil)
		convey.So(report.Inserts, convey.ShouldEqual, 3)
		convey.So(errors.Is(report.InsertErr, probingmap.ErrTableFull), convey.ShouldBeTrue)
		convey.So(report.Removes, convey.ShouldEqual, 100)
	})

	convey.Convey("Cancelled context", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		target, _ := NewTarget(BaselineBuiltin)
		report, err := Run(ctx, target, 10, NewKeys(1, 1, 10))
		convey.So(err, convey.ShouldEqual, context.Canceled)
		convey.So(report.Inserts, convey.ShouldEqual, 10)
		convey.So(report.Retrieves, convey.ShouldEqual, 0)
	})
}

func TestRunner(t *testing.T) {
	convey.Convey("Runs every round for every target", t, func() {
		core, logs := observer.New(zapcore.InfoLevel)

		cfg := DefaultConfig()
		cfg.Rounds = []int{10, 100}
		cfg.KeyMax = 500
		cfg.Seed = 99
		cfg.Baselines = []string{BaselineBuiltin, BaselinePB}

		runner, err := NewRunner(cfg, zap.New(core))
		convey.So(err, convey.ShouldBeNil)

		reports, err := runner.Run(context.Background())
		convey.So(err, convey.ShouldBeNil)
		convey.So(len(reports), convey.ShouldEqual, 6)

		names := make([]string, 0, len(reports))
		for _, r := range reports {
			names = append(names, r.Target)
			convey.So(r.InsertErr, convey.ShouldBeNil)
		}
		convey.So(names, convey.ShouldResemble, []string{
			"probing", "probing",
			BaselineBuiltin, BaselineBuiltin,
			BaselinePB, BaselinePB,
		})

		convey.So(logs.FilterMessage("round finished").Len(), convey.ShouldEqual, 6)
	})

	convey.Convey("Invalid config is rejected", t, func() {
		cfg := DefaultConfig()
		cfg.Rounds = nil

		_, err := NewRunner(cfg, nil)
		convey.So(err, convey.ShouldNotBeNil)
	})

	convey.Convey("Cancelled context keeps earlier reports", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		runner, err := NewRunner(DefaultConfig(), nil)
		convey.So(err, convey.ShouldBeNil)

		reports, err := runner.Run(ctx)
		convey.So(errors.Is(err, context.Canceled), convey.ShouldBeTrue)
		convey.So(reports, convey.ShouldBeEmpty)
	})
}
