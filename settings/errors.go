// errors.go
package settings

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input parameters")
	ErrMalformedPreferences = errors.New("malformed preferences document")
	ErrNotFound             = errors.New("preferences not found")
	ErrStorageUnavailable   = errors.New("storage backend unavailable")
	ErrCacheUnavailable     = errors.New("cache backend unavailable")
)
