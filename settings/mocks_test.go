package settings

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MockStorage implements the Storage interface for testing.
type MockStorage struct {
	mu     sync.RWMutex
	data   map[string]map[string]*Record
	closed bool
}

func NewMockStorage() *MockStorage {
	return &MockStorage{
		data: make(map[string]map[string]*Record),
	}
}

func (m *MockStorage) Get(_ context.Context, userID, publicationID string) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStorageUnavailable
	}

	if userRecs, ok := m.data[userID]; ok {
		if rec, ok := userRecs[publicationID]; ok {
			c := *rec
			c.Preferences = append([]byte(nil), rec.Preferences...)
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MockStorage) Set(_ context.Context, rec *Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStorageUnavailable
	}

	if _, ok := m.data[rec.UserID]; !ok {
		m.data[rec.UserID] = make(map[string]*Record)
	}
	c := *rec
	c.Preferences = append([]byte(nil), rec.Preferences...)
	m.data[rec.UserID][rec.PublicationID] = &c
	return nil
}

func (m *MockStorage) Delete(_ context.Context, userID, publicationID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStorageUnavailable
	}

	if userRecs, ok := m.data[userID]; ok {
		if _, ok := userRecs[publicationID]; ok {
			delete(userRecs, publicationID)
			return nil
		}
	}
	return ErrNotFound
}

func (m *MockStorage) GetAll(_ context.Context, userID string) (map[string]*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStorageUnavailable
	}

	out := make(map[string]*Record)
	for pubID, rec := range m.data[userID] {
		c := *rec
		c.Preferences = append([]byte(nil), rec.Preferences...)
		out[pubID] = &c
	}
	return out, nil
}

func (m *MockStorage) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// MockCache implements the Cache interface for testing.
type MockCache struct {
	mu     sync.RWMutex
	data   map[string][]byte
	getErr error
	setErr error
	closed bool
}

func NewMockCache() *MockCache {
	return &MockCache{
		data: make(map[string][]byte),
	}
}

// FailGets makes every subsequent Get return the given error.
func (m *MockCache) FailGets(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getErr = err
}

// FailSets makes every subsequent Set return the given error.
func (m *MockCache) FailSets(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setErr = err
}

func (m *MockCache) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrCacheUnavailable
	}
	if m.getErr != nil {
		return nil, m.getErr
	}
	if data, ok := m.data[key]; ok {
		return data, nil
	}
	return nil, ErrNotFound
}

func (m *MockCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrCacheUnavailable
	}
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *MockCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrCacheUnavailable
	}
	delete(m.data, key)
	return nil
}

func (m *MockCache) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// MockLogger implements the Logger interface for testing.
type MockLogger struct {
	mu       sync.Mutex
	Messages []string
}

func (m *MockLogger) Debug(msg string, args ...any) { m.record("DEBUG", msg, args...) }
func (m *MockLogger) Info(msg string, args ...any)  { m.record("INFO", msg, args...) }
func (m *MockLogger) Warn(msg string, args ...any)  { m.record("WARN", msg, args...) }
func (m *MockLogger) Error(msg string, args ...any) { m.record("ERROR", msg, args...) }

func (m *MockLogger) record(level, msg string, args ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(args) > 0 {
		m.Messages = append(m.Messages, fmt.Sprintf("%s: %s %v", level, msg, args))
		return
	}
	m.Messages = append(m.Messages, fmt.Sprintf("%s: %s", level, msg))
}
