// Package kv is the persisted collection store: named JSON blobs that are
// loaded once and rewritten whole on every change.
package kv

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidKey is returned for keys that cannot be mapped to storage.
var ErrInvalidKey = errors.New("invalid key")

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Store holds serialized values by key.
type Store interface {
	// Get returns the stored bytes for key. found is false when nothing has
	// been stored under key yet.
	Get(key string) (data []byte, found bool, err error)
	// Put replaces the value stored under key.
	Put(key string, data []byte) error
	Close() error
}

// Open returns the store for backend. path is a directory for the file
// backend and a database file for the sqlite backend; memory ignores it.
func Open(backend, path string) (Store, error) {
	switch backend {
	case BackendFile, "":
		return NewFileStore(path)
	case BackendSQLite:
		return NewSQLiteStore(path)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

// Load decodes the JSON value stored under key into dst.
func Load(s Store, key string, dst any) (bool, error) {
	data, found, err := s.Get(key)
	if err != nil {
		return false, fmt.Errorf("loading %s: %w", key, err)
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return true, fmt.Errorf("decoding %s: %w", key, err)
	}
	return true, nil
}

// Save encodes v as JSON and stores it under key.
func Save(s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := s.Put(key, data); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

func validateKey(key string) error {
	if key == "" || key == "." || key == ".." ||
		strings.ContainsAny(key, `/\`) || strings.ContainsRune(key, 0) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
