package bench

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
)

const (
	BaselineBuiltin = "builtin"
	BaselinePB      = "pb"
)

// Config drives one benchmark session. Every round runs its operation count of
// inserts, then retrieves, then removes against the same target, so later
// rounds start from whatever the earlier ones left behind.
type Config struct {
	// Operation count of each round.
	Rounds []int `toml:"rounds"`

	// Keys and values are drawn uniformly from [KeyMin, KeyMax].
	KeyMin int `toml:"key_min"`
	KeyMax int `toml:"key_max"`

	// Initial capacity of the probing map, 0 selects its default.
	Capacity int `toml:"capacity"`

	// Random seed, 0 derives one from the clock.
	Seed uint64 `toml:"seed"`

	// Maps timed after the probing map: "builtin" and/or "pb".
	Baselines []string `toml:"baselines"`
}

func DefaultConfig() Config {
	return Config{
		Rounds:    []int{100, 1000, 10000},
		KeyMin:    1,
		KeyMax:    1000000,
		Baselines: []string{BaselineBuiltin},
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig. Unknown keys are
// rejected so typos don't silently fall back to defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "decode %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}

		return Config{}, errors.Newf("%s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if len(c.Rounds) == 0 {
		return errors.New("at least one round is required")
	}

	for i, ops := range c.Rounds {
		if ops <= 0 {
			return errors.Newf("round %d: operation count must be positive, got %d", i, ops)
		}
	}

	if c.KeyMin > c.KeyMax {
		return errors.Newf("key range [%d, %d] is empty", c.KeyMin, c.KeyMax)
	}

	if c.Capacity < 0 {
		return errors.Newf("capacity must not be negative, got %d", c.Capacity)
	}

	for _, b := range c.Baselines {
		switch b {
		case BaselineBuiltin, BaselinePB:
		default:
			return errors.Newf("unknown baseline %q", b)
		}
	}

	return nil
}
