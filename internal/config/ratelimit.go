package config

import (
	"time"
)

// RateLimitConfig controls the Redis token-bucket limiter.  The public
// booking endpoint is the main consumer: clients hammering POST
// /v1/bookings after a 409 should back off rather than spin.
type RateLimitConfig struct {
	Enabled        bool
	Capacity       int
	RefillTokens   int
	RefillInterval time.Duration
	TTL            time.Duration
	KeyStrategy    string
	Prefix         string
	Debug          bool
}

// LoadRateLimitConfig reads environment variables to build a
// RateLimitConfig, clamping values into sane ranges.
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled:        getenv("RATE_LIMIT_ENABLED", "true") == "true",
		Capacity:       atoiDef("RATE_LIMIT_CAPACITY", 60),
		RefillTokens:   atoiDef("RATE_LIMIT_REFILL_TOKENS", 1),
		RefillInterval: parseDurDef("RATE_LIMIT_REFILL_INTERVAL", time.Second),
		TTL:            parseDurDef("RATE_LIMIT_TTL", 10*time.Minute),
		KeyStrategy:    getenv("RATE_LIMIT_KEY_STRATEGY", "ip_route"),
		Prefix:         getenv("RATE_LIMIT_PREFIX", "rl"),
		Debug:          getenv("RATE_LIMIT_DEBUG", "false") == "true",
	}
	if cfg.Capacity < 1 {
		cfg.Capacity = 1
	}
	if cfg.RefillTokens < 1 {
		cfg.RefillTokens = 1
	}
	if cfg.RefillInterval <= 0 {
		cfg.RefillInterval = time.Second
	}
	if minTTL := 5 * cfg.RefillInterval; cfg.TTL < minTTL {
		cfg.TTL = minTTL
	}
	return cfg
}

func atoiDef(key string, def int) int {
	if v := getenv(key, ""); v != "" {
		if n := atoi(v); n != 0 {
			return n
		}
	}
	return def
}

func parseDurDef(key string, def time.Duration) time.Duration {
	if v := getenv(key, ""); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
