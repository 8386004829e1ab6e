// Package config loads the server configuration for `chicagotrail serve`.
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the YAML server configuration. Every field has a working
// default so `serve` runs with no config file at all; TRAIL_* env vars
// and flags layer on top.
type Config struct {
	Server struct {
		Addr         string   `yaml:"addr"`
		ReadTimeout  string   `yaml:"read_timeout"`
		WriteTimeout string   `yaml:"write_timeout"`
		CORSOrigins  []string `yaml:"cors_origins"`
	} `yaml:"server"`
	Cache struct {
		// Generated question batches are cached per date so one day's
		// batch is produced at most once per server process.
		TTL string `yaml:"ttl"`
	} `yaml:"cache"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	cfg := Config{}
	cfg.Server.Addr = ":8080"
	cfg.Server.CORSOrigins = []string{"*"}
	return cfg
}

// Load reads YAML config from path, layered over Default.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	return cfg, nil
}

// Duration parses a duration string or returns the fallback if empty
// or malformed.
func Duration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
