// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults; Load layers file and env.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// MaxResults caps each ranked catalog slice in a recommendation response.
	MaxResults int `koanf:"max_results"`

	// RecentEventWindow caps the event log slice returned by the analytics
	// endpoint; the full log is retained in memory.
	RecentEventWindow int `koanf:"recent_event_window"`

	// Scoring signal weights. Zero values fall back to the engine defaults.
	PreferenceWeight    float64 `koanf:"preference_weight"`
	IntentWeight        float64 `koanf:"intent_weight"`
	CollaborativeWeight float64 `koanf:"collaborative_weight"`
	TrendingBoost       float64 `koanf:"trending_boost"`

	// Budget band boundaries in catalog price units.
	LowPriceCeiling int `koanf:"low_price_ceiling"`
	MidPriceCeiling int `koanf:"mid_price_ceiling"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                ":9080",
		MaxResults:          3,
		RecentEventWindow:   20,
		PreferenceWeight:    2.0,
		IntentWeight:        1.5,
		CollaborativeWeight: 1.0,
		TrendingBoost:       1.0,
		LowPriceCeiling:     10_000,
		MidPriceCeiling:     30_000,
	}
}
