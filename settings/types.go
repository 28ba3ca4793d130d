// Package settings defines the configuration types for the Store.
package settings

import "time"

// Config holds the internal configuration for a Store instance. It is
// populated by applying functional Options (e.g. WithStorage, WithCache)
// when a new Store is created with NewStore().
type Config struct {
	storage  Storage
	cache    Cache
	logger   Logger
	cacheTTL time.Duration
}

// Option defines the signature for a functional option that configures a
// Store instance.
type Option func(*Config)

// WithStorage sets the Storage implementation for the Store. This is a
// mandatory option for a functional Store.
func WithStorage(s Storage) Option {
	return func(c *Config) {
		c.storage = s
	}
}

// WithCache sets the Cache implementation for the Store. When provided,
// the Store caches serialized preference sets to reduce load on the
// storage backend. Optional.
func WithCache(cache Cache) Option {
	return func(c *Config) {
		c.cache = cache
	}
}

// WithLogger sets the Logger implementation for the Store. If not set, a
// default slog-backed logger writing to os.Stderr is used. Optional.
func WithLogger(l Logger) Option {
	return func(c *Config) {
		c.logger = l
	}
}

// WithCacheTTL overrides the time-to-live of cached preference sets. The
// default is 24 hours.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Config) {
		if ttl > 0 {
			c.cacheTTL = ttl
		}
	}
}
