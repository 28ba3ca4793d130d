// store.go
package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const defaultCacheTTL = 24 * time.Hour

// Store persists serialized Preferences per user and publication through
// a pluggable storage backend, with optional cache-aside caching. Cache
// failures are logged and never surfaced; storage and parse failures are.
type Store struct {
	config *Config
}

// NewStore creates a Store from the given options. A Storage backend must
// be provided with WithStorage for the Store to be usable.
func NewStore(opts ...Option) *Store {
	cfg := &Config{
		logger:   NewDefaultLogger(),
		cacheTTL: defaultCacheTTL,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return &Store{config: cfg}
}

// Load returns the preferences stored for the user and publication. A
// missing record yields an empty preference set, not an error; a stored
// document that no longer parses is surfaced as ErrMalformedPreferences.
func (s *Store) Load(ctx context.Context, userID, publicationID string) (Preferences, error) {
	if userID == "" || publicationID == "" {
		return Preferences{}, ErrInvalidInput
	}
	if s.config.storage == nil {
		return Preferences{}, ErrStorageUnavailable
	}

	if s.config.cache != nil {
		if p, err := s.loadFromCache(ctx, userID, publicationID); err == nil {
			return p, nil
		}
	}

	rec, err := s.config.storage.Get(ctx, userID, publicationID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return NewPreferences(), nil
		}
		return Preferences{}, err
	}

	p, err := ParsePreferences(rec.Preferences)
	if err != nil {
		return Preferences{}, err
	}

	if s.config.cache != nil {
		s.saveToCache(ctx, userID, publicationID, rec.Preferences)
	}

	return p, nil
}

// Save persists the preferences for the user and publication.
func (s *Store) Save(ctx context.Context, userID, publicationID string, p Preferences) error {
	if userID == "" || publicationID == "" {
		return ErrInvalidInput
	}
	if s.config.storage == nil {
		return ErrStorageUnavailable
	}

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	rec := &Record{
		UserID:        userID,
		PublicationID: publicationID,
		Preferences:   data,
		UpdatedAt:     time.Now(),
	}

	if err := s.config.storage.Set(ctx, rec); err != nil {
		return err
	}

	if s.config.cache != nil {
		s.saveToCache(ctx, userID, publicationID, data)
	}

	return nil
}

// Delete removes the stored preferences for the user and publication.
func (s *Store) Delete(ctx context.Context, userID, publicationID string) error {
	if userID == "" || publicationID == "" {
		return ErrInvalidInput
	}
	if s.config.storage == nil {
		return ErrStorageUnavailable
	}

	if err := s.config.storage.Delete(ctx, userID, publicationID); err != nil {
		return err
	}

	if s.config.cache != nil {
		s.deleteFromCache(ctx, userID, publicationID)
	}

	return nil
}

// LoadAll returns every preference set stored for the user, keyed by
// publication. Records that no longer parse are skipped and logged.
func (s *Store) LoadAll(ctx context.Context, userID string) (map[string]Preferences, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	if s.config.storage == nil {
		return nil, ErrStorageUnavailable
	}

	recs, err := s.config.storage.GetAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make(map[string]Preferences, len(recs))
	for pubID, rec := range recs {
		p, err := ParsePreferences(rec.Preferences)
		if err != nil {
			s.config.logger.Warn("Skipping malformed preferences", "user", userID, "publication", pubID, "error", err)
			continue
		}
		out[pubID] = p
	}
	return out, nil
}

// Close releases the storage and cache backends.
func (s *Store) Close() error {
	var errs []error
	if s.config.storage != nil {
		if err := s.config.storage.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if s.config.cache != nil {
		if err := s.config.cache.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Store) cacheKey(userID, publicationID string) string {
	return fmt.Sprintf("prefs:%s:%s", userID, publicationID)
}

func (s *Store) loadFromCache(ctx context.Context, userID, publicationID string) (Preferences, error) {
	data, err := s.config.cache.Get(ctx, s.cacheKey(userID, publicationID))
	if err != nil {
		return Preferences{}, err
	}
	return ParsePreferences(data)
}

func (s *Store) saveToCache(ctx context.Context, userID, publicationID string, data []byte) {
	if err := s.config.cache.Set(ctx, s.cacheKey(userID, publicationID), data, s.config.cacheTTL); err != nil {
		s.config.logger.Error("Failed to cache preferences", "error", err)
	}
}

func (s *Store) deleteFromCache(ctx context.Context, userID, publicationID string) {
	if err := s.config.cache.Delete(ctx, s.cacheKey(userID, publicationID)); err != nil {
		s.config.logger.Error("Failed to delete preferences from cache", "error", err)
	}
}
