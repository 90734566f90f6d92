package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"

	"github.com/homier/probingmap/internal/bench"
)

type options struct {
	configPath string
	rounds     []int
	capacity   int
	seed       uint64
	baselines  []string
	verbose    bool
}

func (o *options) register(fs *pflag.FlagSet) {
	defaults := bench.DefaultConfig()

	fs.StringVarP(&o.configPath, "config", "c", "", "TOML config file")
	fs.IntSliceVar(&o.rounds, "ops", defaults.Rounds, "operation count of each round")
	fs.IntVar(&o.capacity, "capacity", defaults.Capacity, "initial capacity of the probing map, 0 for the default")
	fs.Uint64Var(&o.seed, "seed", defaults.Seed, "random seed, 0 derives one from the clock")
	fs.StringSliceVar(&o.baselines, "baseline", defaults.Baselines, "baseline maps: builtin, pb")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "development logging")
}

// config loads the config file, if any, and applies explicitly set flags on
// top of it.
func (o *options) config(fs *pflag.FlagSet) (bench.Config, error) {
	cfg := bench.DefaultConfig()

	if o.configPath != "" {
		loaded, err := bench.LoadConfig(o.configPath)
		if err != nil {
			return bench.Config{}, err
		}
		cfg = loaded
	}

	if fs.Changed("ops") {
		cfg.Rounds = o.rounds
	}
	if fs.Changed("capacity") {
		cfg.Capacity = o.capacity
	}
	if fs.Changed("seed") {
		cfg.Seed = o.seed
	}
	if fs.Changed("baseline") {
		cfg.Baselines = o.baselines
	}

	if err := cfg.Validate(); err != nil {
		return bench.Config{}, errors.Wrap(err, "invalid flags")
	}

	return cfg, nil
}
