package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// keyPrefix is bumped whenever the cached value format changes
const keyPrefix = "storylint:v1:"

// Cache stores tagged chunks keyed by CacheKey
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// CacheKey derives a fixed-length key from arbitrary input text
func CacheKey(input string) string {
	hash := sha256.Sum256([]byte(input))
	return keyPrefix + hex.EncodeToString(hash[:])
}

// Options selects the cache layers built by New
type Options struct {
	MemoryTTL time.Duration
	DiskDir   string
	DiskTTL   time.Duration
}

// New builds a memory cache, layered over a disk cache when DiskDir is set
func New(opts Options) Cache {
	if opts.DiskDir == "" {
		return NewMemoryCache(opts.MemoryTTL, cleanupInterval(opts.MemoryTTL))
	}
	return NewLayeredCache(opts.MemoryTTL, opts.DiskDir, opts.DiskTTL)
}

func cleanupInterval(ttl time.Duration) time.Duration {
	if ttl <= 0 || ttl > 10*time.Minute {
		return 10 * time.Minute
	}
	return ttl
}
