// Package settings defines interfaces for storage, caching, and the
// configurable components consuming resolved settings.
package settings

import (
	"context"
	"encoding/json"
	"time"
)

// Record is a serialized preference set as persisted by a storage
// backend, keyed by user and publication.
type Record struct {
	UserID        string          `json:"user_id"`
	PublicationID string          `json:"publication_id"`
	Preferences   json.RawMessage `json:"preferences"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Storage defines the methods required for a storage backend.
type Storage interface {
	Get(ctx context.Context, userID, publicationID string) (*Record, error)
	Set(ctx context.Context, rec *Record) error
	Delete(ctx context.Context, userID, publicationID string) error
	GetAll(ctx context.Context, userID string) (map[string]*Record, error)
	Close() error
}

// Cache defines the methods required for a caching backend.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Configurable is a component whose presentation can be tuned with
// Preferences: it exposes its current override set and recomputes its
// effective configuration when handed a new one.
type Configurable interface {
	Preferences() Preferences
	Apply(p Preferences)
}
