package config

import (
	"fmt"
	"strings"

	"carddeck/internal/ordering"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Players    int    `env:"DEALER_PLAYERS"    envDefault:"4"`
	HandSize   int    `env:"DEALER_HAND_SIZE"  envDefault:"5"`
	Seed       uint64 `env:"DEALER_SEED"       envDefault:"0"`
	Order      string `env:"DEALER_ORDER"      envDefault:"default"`
	Descending bool   `env:"DEALER_DESCENDING" envDefault:"false"`

	AppEnv       string `env:"APP_ENV"              envDefault:"development"`
	TracesExport string `env:"OTEL_TRACES_EXPORTER" envDefault:"none"`
	TracePretty  bool   `env:"DEALER_TRACE_PRETTY"  envDefault:"false"`
}

// Seeded reports whether shuffles should be reproducible.
func (c Config) Seeded() bool {
	return c.Seed != 0
}

func LoadFromEnv() (Config, error) {
	return load(env.Options{})
}

func load(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Order = strings.TrimSpace(cfg.Order)
	cfg.AppEnv = strings.TrimSpace(cfg.AppEnv)
	if cfg.AppEnv == "" {
		cfg.AppEnv = "development"
	}

	var invalid []string
	if cfg.Players < 1 {
		invalid = append(invalid, "DEALER_PLAYERS")
	}
	if cfg.HandSize < 0 {
		invalid = append(invalid, "DEALER_HAND_SIZE")
	}
	if !ordering.Default().Has(cfg.Order) {
		invalid = append(invalid, "DEALER_ORDER")
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("missing/invalid env: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}
