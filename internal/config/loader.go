package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if VOYAGO_CONFIG is set
//  3. env (prefix VOYAGO_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("VOYAGO_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: VOYAGO_ADDR, VOYAGO_MAX_RESULTS, ...
	// Keys keep their underscores to match the koanf tags on the struct.
	envProvider := env.Provider("VOYAGO_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "voyago_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Basic validation
	switch {
	case cfg.Addr == "":
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case cfg.MaxResults < 1:
		return nil, fmt.Errorf("%w: max_results must be positive", ErrInvalidConfig)
	case cfg.RecentEventWindow < 1:
		return nil, fmt.Errorf("%w: recent_event_window must be positive", ErrInvalidConfig)
	case cfg.LowPriceCeiling > 0 && cfg.MidPriceCeiling > 0 && cfg.MidPriceCeiling <= cfg.LowPriceCeiling:
		return nil, fmt.Errorf("%w: mid_price_ceiling must exceed low_price_ceiling", ErrInvalidConfig)
	}
	return &cfg, nil
}
