// Package prefs persists user preferences such as the theme flag.
package prefs

import (
	"context"
	"fmt"

	"github.com/tinytelemetry/boardroom/internal/duckdb"
)

// Store is a durable key/value preference store.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendDuckDB = "duckdb"
)

// Open opens the store for backend at path.
func Open(backend, path string) (Store, error) {
	switch backend {
	case "", BackendFile:
		store, err := OpenFile(path)
		if err != nil {
			return nil, err
		}
		return store, nil
	case BackendDuckDB:
		store, err := duckdb.NewStore(path)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("prefs: unknown backend %q", backend)
	}
}

// Watchable reports whether another process can write the store while this
// one holds it open. DuckDB keeps an exclusive lock on its file.
func Watchable(backend string) bool {
	return backend == "" || backend == BackendFile
}
