package cmd

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/jparise/durstr/durationstring"
	"github.com/spf13/pflag"
)

const envPrefix = "DURSTR_"

// envConfig holds settings read from DURSTR_* environment variables. They
// apply to flags that were not set on the command line; zero values are
// treated as unset.
type envConfig struct {
	Color    colorMode               `env:"COLOR"`
	Jobs     int                     `env:"JOBS"`
	CacheDir string                  `env:"CACHE_DIR"`
	CacheTTL durationstring.Duration `env:"CACHE_TTL"`
}

func loadEnv() (envConfig, error) {
	cfg, err := env.ParseAsWithOptions[envConfig](env.Options{Prefix: envPrefix})
	if err != nil {
		return envConfig{}, fmt.Errorf("invalid environment: %w", err)
	}
	return cfg, nil
}

// applyEnv fills flags the user did not set from the environment. Flags that
// the running command does not define are left alone.
func applyEnv(flags *pflag.FlagSet) error {
	cfg, err := loadEnv()
	if err != nil {
		return err
	}

	unset := func(name string) bool {
		return flags.Lookup(name) != nil && !flags.Changed(name)
	}

	if cfg.Color != "" && unset("color") {
		color = cfg.Color
	}
	if cfg.Jobs != 0 && unset("jobs") {
		jobs = cfg.Jobs
	}
	if cfg.CacheDir != "" && unset("cache-dir") {
		cacheDir = cfg.CacheDir
	}
	if cfg.CacheTTL != 0 && unset("cache-ttl") {
		cacheTTL = cfg.CacheTTL
	}

	return nil
}
