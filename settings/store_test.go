package settings

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestStoreSaveLoad(t *testing.T) {
	store := NewStore(WithStorage(NewMockStorage()), WithLogger(&MockLogger{}))
	ctx := context.Background()

	theme := themeSetting()
	p := NewPreferences()
	theme.Set(&p, "dark")

	if err := store.Save(ctx, "user1", "book1", p); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load(ctx, "user1", "book1")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got, _ := theme.Get(loaded); got != "dark" {
		t.Errorf("Expected theme 'dark' after load, got %q", got)
	}
}

func TestStoreLoadMissingIsEmpty(t *testing.T) {
	store := NewStore(WithStorage(NewMockStorage()), WithLogger(&MockLogger{}))

	p, err := store.Load(context.Background(), "user1", "unknown")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if p.Len() != 0 {
		t.Errorf("Expected empty preferences for missing record, got %d entries", p.Len())
	}
}

func TestStoreLoadMalformed(t *testing.T) {
	storage := NewMockStorage()
	ctx := context.Background()
	_ = storage.Set(ctx, &Record{
		UserID:        "user1",
		PublicationID: "book1",
		Preferences:   []byte(`{"theme":`),
		UpdatedAt:     time.Now(),
	})

	store := NewStore(WithStorage(storage), WithLogger(&MockLogger{}))
	_, err := store.Load(ctx, "user1", "book1")
	if !errors.Is(err, ErrMalformedPreferences) {
		t.Errorf("Expected ErrMalformedPreferences, got %v", err)
	}
}

func TestStoreInvalidInput(t *testing.T) {
	store := NewStore(WithStorage(NewMockStorage()))
	ctx := context.Background()

	if _, err := store.Load(ctx, "", "book1"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
	if err := store.Save(ctx, "user1", "", NewPreferences()); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
	if err := store.Delete(ctx, "", ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
	if _, err := store.LoadAll(ctx, ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestStoreWithoutStorage(t *testing.T) {
	store := NewStore(WithLogger(&MockLogger{}))

	if _, err := store.Load(context.Background(), "user1", "book1"); !errors.Is(err, ErrStorageUnavailable) {
		t.Errorf("Expected ErrStorageUnavailable, got %v", err)
	}
}

func TestStoreDelete(t *testing.T) {
	storage := NewMockStorage()
	store := NewStore(WithStorage(storage), WithLogger(&MockLogger{}))
	ctx := context.Background()

	p := NewPreferences()
	themeSetting().Set(&p, "dark")
	if err := store.Save(ctx, "user1", "book1", p); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := store.Delete(ctx, "user1", "book1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := store.Delete(ctx, "user1", "book1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second delete, got %v", err)
	}
}

func TestStoreLoadAll(t *testing.T) {
	storage := NewMockStorage()
	store := NewStore(WithStorage(storage), WithLogger(&MockLogger{}))
	ctx := context.Background()

	theme := themeSetting()
	p1 := NewPreferences()
	theme.Set(&p1, "dark")
	p2 := NewPreferences()
	theme.Set(&p2, "sepia")

	_ = store.Save(ctx, "user1", "book1", p1)
	_ = store.Save(ctx, "user1", "book2", p2)

	// A malformed record is skipped, not fatal.
	_ = storage.Set(ctx, &Record{
		UserID:        "user1",
		PublicationID: "book3",
		Preferences:   []byte(`broken`),
		UpdatedAt:     time.Now(),
	})

	all, err := store.LoadAll(ctx, "user1")
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected 2 preference sets, got %d", len(all))
	}
	if got, _ := theme.Get(all["book2"]); got != "sepia" {
		t.Errorf("Expected 'sepia' for book2, got %q", got)
	}
}

func TestStoreCache(t *testing.T) {
	storage := NewMockStorage()
	cache := NewMockCache()
	store := NewStore(WithStorage(storage), WithCache(cache), WithLogger(&MockLogger{}))
	ctx := context.Background()

	theme := themeSetting()
	p := NewPreferences()
	theme.Set(&p, "dark")
	if err := store.Save(ctx, "user1", "book1", p); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// The cached copy answers even when storage goes away.
	_ = storage.Close()
	loaded, err := store.Load(ctx, "user1", "book1")
	if err != nil {
		t.Fatalf("Load from cache failed: %v", err)
	}
	if got, _ := theme.Get(loaded); got != "dark" {
		t.Errorf("Expected cached theme 'dark', got %q", got)
	}
}

func TestStoreCacheFailureIsSoft(t *testing.T) {
	storage := NewMockStorage()
	cache := NewMockCache()
	cache.FailSets(ErrCacheUnavailable)
	logger := &MockLogger{}
	store := NewStore(WithStorage(storage), WithCache(cache), WithLogger(logger))
	ctx := context.Background()

	p := NewPreferences()
	themeSetting().Set(&p, "dark")
	if err := store.Save(ctx, "user1", "book1", p); err != nil {
		t.Fatalf("Expected cache failure to be soft, got %v", err)
	}

	found := false
	for _, msg := range logger.Messages {
		if strings.Contains(msg, "ERROR") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected cache failure to be logged")
	}
}

func TestStoreClose(t *testing.T) {
	store := NewStore(WithStorage(NewMockStorage()), WithCache(NewMockCache()))
	if err := store.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}

func TestStoreCacheTTLOption(t *testing.T) {
	cfg := Config{}
	WithCacheTTL(time.Hour)(&cfg)
	if cfg.cacheTTL != time.Hour {
		t.Errorf("Expected TTL override, got %v", cfg.cacheTTL)
	}
	WithCacheTTL(-1)(&cfg)
	if cfg.cacheTTL != time.Hour {
		t.Errorf("Expected non-positive TTL ignored, got %v", cfg.cacheTTL)
	}
}
