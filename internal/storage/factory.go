package storage

import "fmt"

// NewStore selects the row-store backend by name. The memory backend is
// always available and is the default; the sqlite backend requires the
// sqlite build tag.
func NewStore(kind, sqlitePath string) (Store, error) {
	switch kind {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return newSQLiteStore(sqlitePath)
	default:
		return nil, fmt.Errorf("unknown row store backend %q (want memory or sqlite)", kind)
	}
}

// CloseIfSupported releases backends holding external resources, such as the
// sqlite database handle. The memory store needs no cleanup.
func CloseIfSupported(store Store) error {
	closer, ok := store.(interface{ Close() error })
	if !ok {
		return nil
	}
	return closer.Close()
}
