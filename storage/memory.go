package storage

import (
	"context"
	"sync"
	"time"

	"github.com/nwilmet-vivlio/swift-toolkit/settings"
)

// MemoryStorage implements the Storage interface using an in-memory map.
// This is useful for testing or simple applications where persistence is
// not required.
type MemoryStorage struct {
	mu   sync.RWMutex
	recs map[string]map[string]*settings.Record // userID -> publicationID -> Record
}

// NewMemoryStorage creates a new instance of MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		recs: make(map[string]map[string]*settings.Record),
	}
}

// Get retrieves the record for a given user and publication. It returns
// settings.ErrNotFound if no preferences were stored.
func (s *MemoryStorage) Get(_ context.Context, userID, publicationID string) (*settings.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	userRecs, ok := s.recs[userID]
	if !ok {
		return nil, settings.ErrNotFound
	}

	rec, ok := userRecs[publicationID]
	if !ok {
		return nil, settings.ErrNotFound
	}

	return copyRecord(rec), nil
}

// Set stores a record, updating UpdatedAt to the current time.
func (s *MemoryStorage) Set(_ context.Context, rec *settings.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.recs[rec.UserID]; !ok {
		s.recs[rec.UserID] = make(map[string]*settings.Record)
	}

	toStore := copyRecord(rec)
	toStore.UpdatedAt = time.Now()
	s.recs[rec.UserID][rec.PublicationID] = toStore
	return nil
}

// Delete removes the record for a given user and publication. Deleting a
// missing record is not an error.
func (s *MemoryStorage) Delete(_ context.Context, userID, publicationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	userRecs, ok := s.recs[userID]
	if !ok {
		return nil
	}

	delete(userRecs, publicationID)
	if len(userRecs) == 0 {
		delete(s.recs, userID)
	}
	return nil
}

// GetAll retrieves every record stored for a user, keyed by publication.
func (s *MemoryStorage) GetAll(_ context.Context, userID string) (map[string]*settings.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	userRecs, ok := s.recs[userID]
	if !ok {
		return make(map[string]*settings.Record), nil
	}

	out := make(map[string]*settings.Record, len(userRecs))
	for pubID, rec := range userRecs {
		out[pubID] = copyRecord(rec)
	}
	return out, nil
}

// Close is a no-op for MemoryStorage.
func (s *MemoryStorage) Close() error {
	return nil
}

// copyRecord clones a record so callers cannot mutate stored state
// through the returned pointer.
func copyRecord(rec *settings.Record) *settings.Record {
	c := *rec
	c.Preferences = append([]byte(nil), rec.Preferences...)
	return &c
}
