package bench

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Keys draws uniformly distributed keys and values.
type Keys struct {
	rng      *rand.Rand
	min, max int
}

func NewKeys(seed uint64, min, max int) *Keys {
	return &Keys{
		rng: rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)),
		min: min,
		max: max,
	}
}

// Next returns a key in [min, max]. The width is computed in uint64 so that
// ranges spanning most or all of int don't overflow.
func (k *Keys) Next() int {
	width := uint64(k.max) - uint64(k.min) + 1
	if width == 0 {
		return int(k.rng.Uint64())
	}

	return k.min + int(k.rng.Uint64N(width))
}

// Run times ops random inserts, then ops random retrieves, then ops random
// removes against target. A failed insert ends the insert phase and is kept
// in the report; the other phases still run. Missing keys are expected
// during retrieves and removes and only show up in the counters.
func Run(ctx context.Context, target Target, ops int, keys *Keys) (Report, error) {
	report := Report{
		Target: target.Name(),
		Ops:    ops,
	}

	start := time.Now()

	for range ops {
		key, value := keys.Next(), keys.Next()
		if err := target.Insert(key, value); err != nil {
			report.InsertErr = errors.Wrapf(err, "insert %d", key)
			break
		}
		report.Inserts++
	}

	if err := ctx.Err(); err != nil {
		return report, err
	}

	for range ops {
		if _, ok := target.Retrieve(keys.Next()); ok {
			report.Retrieves++
		}
	}

	if err := ctx.Err(); err != nil {
		return report, err
	}

	for range ops {
		target.Remove(keys.Next())
		report.Removes++
	}

	report.Duration = time.Since(start)
	report.Size = target.Size()
	report.Count = target.Count()

	return report, nil
}

// Runner runs every configured round against the probing map and then
// against each baseline, one target at a time.
type Runner struct {
	cfg    Config
	logger *zap.Logger
	keys   *Keys
}

func NewRunner(cfg Config, logger *zap.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &Runner{
		cfg:    cfg,
		logger: logger.With(zap.Uint64("seed", seed)),
		keys:   NewKeys(seed, cfg.KeyMin, cfg.KeyMax),
	}, nil
}

func (r *Runner) targets() ([]Target, error) {
	targets := []Target{NewProbingTarget(r.cfg.Capacity, r.logger.Named("probing"))}

	for _, name := range r.cfg.Baselines {
		t, err := NewTarget(name)
		if err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}

	return targets, nil
}

// Run returns the reports produced so far, also when it fails midway.
func (r *Runner) Run(ctx context.Context) ([]Report, error) {
	targets, err := r.targets()
	if err != nil {
		return nil, err
	}

	reports := make([]Report, 0, len(targets)*len(r.cfg.Rounds))

	for _, target := range targets {
		// Each target keeps its state across rounds.
		for _, ops := range r.cfg.Rounds {
			report, err := Run(ctx, target, ops, r.keys)
			if err != nil {
				return reports, errors.Wrapf(err, "%s: round of %d operations", target.Name(), ops)
			}

			if report.InsertErr != nil {
				r.logger.Error("insert phase stopped early", zap.Object("report", report))
			} else {
				r.logger.Info("round finished", zap.Object("report", report))
			}

			reports = append(reports, report)
		}
	}

	return reports, nil
}
