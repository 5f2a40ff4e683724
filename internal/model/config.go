package model

import (
	"path/filepath"
	"time"
)

// Config holds every tunable of a storylint run
type Config struct {
	WordLists    WordListConfig    `yaml:"wordlists" mapstructure:"wordlists"`
	Tagger       TaggerConfig      `yaml:"tagger" mapstructure:"tagger"`
	Cache        CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency  ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	RateLimiting RateLimitConfig   `yaml:"rate_limiting" mapstructure:"rate_limiting"`
	Output       OutputConfig      `yaml:"output" mapstructure:"output"`
	Logging      LoggingConfig     `yaml:"logging" mapstructure:"logging"`
}

// WordListConfig locates the exception and term lists
type WordListConfig struct {
	Dir   string `yaml:"dir" mapstructure:"dir"`     // Empty means the built-in lists
	Watch bool   `yaml:"watch" mapstructure:"watch"` // Reload lists when files change
}

// TaggerConfig selects the part-of-speech tagger
type TaggerConfig struct {
	Kind string `yaml:"kind" mapstructure:"kind"` // prose or lexicon
}

// CacheConfig controls tag memoisation
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskDir   string        `yaml:"disk_dir" mapstructure:"disk_dir"` // Empty disables the disk layer
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// ConcurrencyConfig sizes the batch worker pool
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// RateLimitConfig throttles batch throughput; zero disables throttling
type RateLimitConfig struct {
	RequestsPerSecond float64      `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	BurstSize         int          `yaml:"burst_size" mapstructure:"burst_size"`
	Sources           []SourceRate `yaml:"sources,omitempty" mapstructure:"sources"`
}

// SourceRate overrides the rate for one input file, matched by path or
// base name. A zero rate leaves that file unthrottled.
type SourceRate struct {
	Path              string  `yaml:"path" mapstructure:"path"`
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size,omitempty" mapstructure:"burst_size"`
}

// SourceRate returns the override for source, if any
func (c RateLimitConfig) SourceRate(source string) (SourceRate, bool) {
	for _, sr := range c.Sources {
		if sr.Path == source || sr.Path == filepath.Base(source) {
			return sr, true
		}
	}
	return SourceRate{}, false
}

// OutputConfig selects the report format
type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format"` // text, json, yaml or markdown
}

// LoggingConfig configures the zap logger
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"` // console or json
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		WordLists: WordListConfig{
			Dir:   "",
			Watch: false,
		},
		Tagger: TaggerConfig{
			Kind: "prose",
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 30 * time.Minute,
			DiskDir:   "",
			DiskTTL:   7 * 24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		RateLimiting: RateLimitConfig{
			RequestsPerSecond: 0,
			BurstSize:         5,
		},
		Output: OutputConfig{
			Format: "text",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}
