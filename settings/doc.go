// Package settings provides a typed preferences system for configurable
// reading components.
//
// A Setting describes one configurable property: its stable key, default
// value, value codec, validator and activation rule. Preferences is the
// key-value override set layered on top of the settings' defaults; every
// mutation routes through the owning setting so that stored values are
// always validated, clamped or rejected at write time. Preferences
// serializes to a flat JSON object for persistence.
//
// The Store ties Preferences to pluggable storage backends (PostgreSQL,
// SQLite, in-memory) with optional caching (Redis, in-memory), keyed by
// user and publication.
package settings
