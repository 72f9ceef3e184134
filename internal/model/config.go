package model

import "time"

// Config holds the complete gleaner configuration
type Config struct {
	HTTP        HTTPConfig        `json:"http" yaml:"http"`
	Cache       CacheConfig       `json:"cache" yaml:"cache"`
	Concurrency ConcurrencyConfig `json:"concurrency" yaml:"concurrency"`
	Output      OutputConfig      `json:"output" yaml:"output"`
}

// HTTPConfig controls the listing fetcher
type HTTPConfig struct {
	Timeout       time.Duration `json:"timeout" yaml:"timeout"`
	UserAgent     string        `json:"user_agent" yaml:"user_agent"`
	MaxBodyBytes  int64         `json:"max_body_bytes" yaml:"max_body_bytes"`
	RatePerSecond float64       `json:"rate_per_second" yaml:"rate_per_second"`
	RateBurst     int           `json:"rate_burst" yaml:"rate_burst"`
	RespectRobots bool          `json:"respect_robots" yaml:"respect_robots"`
	HTTPProxy     string        `json:"http_proxy" yaml:"http_proxy"`
	HTTPSProxy    string        `json:"https_proxy" yaml:"https_proxy"`
}

// CacheConfig controls result caching in batch mode. Dir enables a
// persistent disk layer under the memory layer; empty means memory only.
type CacheConfig struct {
	Enabled         bool          `json:"enabled" yaml:"enabled"`
	TTL             time.Duration `json:"ttl" yaml:"ttl"`
	CleanupInterval time.Duration `json:"cleanup_interval" yaml:"cleanup_interval"`
	Dir             string        `json:"dir" yaml:"dir"`
}

// ConcurrencyConfig controls batch worker counts
type ConcurrencyConfig struct {
	Workers int `json:"workers" yaml:"workers"`
}

// OutputConfig controls result rendering
type OutputConfig struct {
	Format  string `json:"format" yaml:"format"` // json, yaml, plain
	Verbose bool   `json:"verbose" yaml:"verbose"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:       30 * time.Second,
			UserAgent:     "Gleaner/0.1 (+https://github.com/ppiankov/gleaner)",
			MaxBodyBytes:  2_000_000,
			RatePerSecond: 1.0,
			RateBurst:     3,
			RespectRobots: true,
		},
		Cache: CacheConfig{
			Enabled:         true,
			TTL:             1 * time.Hour,
			CleanupInterval: 10 * time.Minute,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			Format: "json",
		},
	}
}
