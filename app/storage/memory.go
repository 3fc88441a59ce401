package storage

import (
	"encoding/json"
	"sync"
)

// MemoryStore is a map-backed Store for tests. Documents are held as raw JSON
// so Load/Save round-trip exactly like the file store.
type MemoryStore struct {
	mu   sync.Mutex
	docs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]byte)}
}

func (s *MemoryStore) Load(collection string, v any) error {
	s.mu.Lock()
	data, ok := s.docs[collection]
	s.mu.Unlock()
	if !ok {
		data = emptyDefault(collection)
	}
	return json.Unmarshal(data, v)
}

func (s *MemoryStore) Save(collection string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.docs[collection] = data
	s.mu.Unlock()
	return nil
}
