package kv

import "bytes"

// MemoryStore is a Store that lives only as long as the process.
type MemoryStore struct {
	data map[string][]byte
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Get returns a copy of the bytes stored under key.
func (s *MemoryStore) Get(key string) ([]byte, bool, error) {
	if err := validateKey(key); err != nil {
		return nil, false, err
	}
	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	return bytes.Clone(v), true, nil
}

// Put stores a copy of data under key.
func (s *MemoryStore) Put(key string, data []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	s.data[key] = bytes.Clone(data)
	return nil
}

// Keys returns the number of stored keys.
func (s *MemoryStore) Keys() int {
	return len(s.data)
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}
