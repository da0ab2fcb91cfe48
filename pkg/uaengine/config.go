package uaengine

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config carries the engine settings an application layer typically wants
// to control per environment.
type Config struct {
	// Development enables diagnostic logging for absorbed input errors.
	Development bool `env:"UAKIT_DEV" envDefault:"false"`

	// CacheSize bounds the result cache; 0 keeps it unbounded.
	CacheSize int `env:"UAKIT_CACHE_SIZE" envDefault:"0"`
}

// NewFromEnv builds an Engine configured from UAKIT_* environment
// variables, plus any extra options.
func NewFromEnv(opts ...Option) (*Engine, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse uakit config: %w", err)
	}
	return NewFromConfig(cfg, opts...), nil
}

// NewFromConfig builds an Engine from an explicit Config.
func NewFromConfig(cfg Config, opts ...Option) *Engine {
	base := make([]Option, 0, len(opts)+2)
	if cfg.Development {
		base = append(base, WithDevelopment())
	}
	if cfg.CacheSize > 0 {
		base = append(base, WithCacheSize(cfg.CacheSize))
	}
	return New(append(base, opts...)...)
}
