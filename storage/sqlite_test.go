package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nwilmet-vivlio/swift-toolkit/settings"
)

func newTestSQLite(t *testing.T) *SQLiteStorage {
	t.Helper()
	s, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err, "in-memory sqlite should open")
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteStorage_SetGet(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	rec := &settings.Record{
		UserID:        "user1",
		PublicationID: "book1",
		Preferences:   []byte(`{"theme":"dark","fontSize":2}`),
		UpdatedAt:     time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, s.Set(ctx, rec))

	got, err := s.Get(ctx, "user1", "book1")
	require.NoError(t, err)
	assert.Equal(t, "user1", got.UserID)
	assert.Equal(t, "book1", got.PublicationID)
	assert.JSONEq(t, `{"theme":"dark","fontSize":2}`, string(got.Preferences))
}

func TestSQLiteStorage_Upsert(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, s.Set(ctx, &settings.Record{
		UserID: "user1", PublicationID: "book1",
		Preferences: []byte(`{"theme":"dark"}`), UpdatedAt: now,
	}))
	require.NoError(t, s.Set(ctx, &settings.Record{
		UserID: "user1", PublicationID: "book1",
		Preferences: []byte(`{"theme":"sepia"}`), UpdatedAt: now.Add(time.Minute),
	}))

	got, err := s.Get(ctx, "user1", "book1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"theme":"sepia"}`, string(got.Preferences))

	all, err := s.GetAll(ctx, "user1")
	require.NoError(t, err)
	assert.Len(t, all, 1, "upsert must not duplicate rows")
}

func TestSQLiteStorage_GetMissing(t *testing.T) {
	s := newTestSQLite(t)

	_, err := s.Get(context.Background(), "nobody", "book1")
	assert.True(t, errors.Is(err, settings.ErrNotFound))
}

func TestSQLiteStorage_Delete(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, &settings.Record{
		UserID: "user1", PublicationID: "book1",
		Preferences: []byte(`{}`), UpdatedAt: time.Now(),
	}))

	require.NoError(t, s.Delete(ctx, "user1", "book1"))
	err := s.Delete(ctx, "user1", "book1")
	assert.True(t, errors.Is(err, settings.ErrNotFound))
}

func TestSQLiteStorage_GetAll(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, s.Set(ctx, &settings.Record{UserID: "user1", PublicationID: "book1", Preferences: []byte(`{"scroll":true}`), UpdatedAt: now}))
	require.NoError(t, s.Set(ctx, &settings.Record{UserID: "user1", PublicationID: "book2", Preferences: []byte(`{"fontSize":2}`), UpdatedAt: now}))
	require.NoError(t, s.Set(ctx, &settings.Record{UserID: "user2", PublicationID: "book1", Preferences: []byte(`{}`), UpdatedAt: now}))

	all, err := s.GetAll(ctx, "user1")
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.JSONEq(t, `{"fontSize":2}`, string(all["book2"].Preferences))
}
