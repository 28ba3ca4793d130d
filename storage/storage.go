// storage/storage.go
package storage

import (
	"context"

	"github.com/nwilmet-vivlio/swift-toolkit/settings"
)

// Storage persists serialized preference sets keyed by user and
// publication.
type Storage interface {
	Get(ctx context.Context, userID, publicationID string) (*settings.Record, error)
	Set(ctx context.Context, rec *settings.Record) error
	Delete(ctx context.Context, userID, publicationID string) error
	GetAll(ctx context.Context, userID string) (map[string]*settings.Record, error)
	Close() error
}
