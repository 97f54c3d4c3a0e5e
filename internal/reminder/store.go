package reminder

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
)

// Storage drivers.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

// Store persists the whole item collection.
//
// Load returns an empty slice, not an error, when nothing was stored yet.
// Save replaces the stored collection atomically: either the full sequence
// is persisted or the previous state is left untouched.
type Store interface {
	Load(ctx context.Context) ([]Item, error)
	Save(ctx context.Context, items []Item) error
	Close() error
}

// OpenStore opens the store for driver at path.
func OpenStore(driver, path string) (Store, error) {
	switch driver {
	case DriverFile, "":
		return NewFileStore(afero.NewOsFs(), path), nil
	case DriverSQLite:
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("unknown storage driver: %s (supported: %s, %s)", driver, DriverFile, DriverSQLite)
	}
}
