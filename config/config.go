// Package config loads sllist settings from a TOML file.
package config

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

type Config struct {
	DB       string `toml:"db"`
	Mode     string `toml:"mode"`
	N        int    `toml:"n"`
	Trials   int    `toml:"trials"`
	Front    bool   `toml:"front"`
	Jobs     int    `toml:"jobs"`
	LogLevel string `toml:"log_level"`
}

func Default() Config {
	return Config{
		DB:       "sllist.db",
		Mode:     "load",
		N:        10000,
		Trials:   5,
		Jobs:     4,
		LogLevel: "info",
	}
}

// Load decodes path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrapf(err, "decode config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Mode {
	case "load", "bench", "runs":
	default:
		return errors.Errorf("unknown mode %q", c.Mode)
	}
	if c.N < 0 {
		return errors.Errorf("n must not be negative, got %d", c.N)
	}
	if c.Trials < 1 {
		return errors.Errorf("trials must be at least 1, got %d", c.Trials)
	}
	if c.Jobs < 1 {
		return errors.Errorf("jobs must be at least 1, got %d", c.Jobs)
	}
	return nil
}
