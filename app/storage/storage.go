package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store persists named collections as whole JSON documents. Load fills v with
// the parsed document, or with the collection's empty default when nothing has
// been saved yet. Save overwrites the whole document. There are no partial
// updates and no transactions; a read-modify-write cycle across two calls is
// last-writer-wins.
type Store interface {
	Load(collection string, v any) error
	Save(collection string, v any) error
}

// emptyDefault returns the JSON document an absent collection loads as. The
// users collection is an object keyed by username; everything else is a list.
func emptyDefault(collection string) []byte {
	if collection == "users" {
		return []byte("{}")
	}
	return []byte("[]")
}

// FileStore keeps one <collection>.json file per collection under Dir. Writes
// to the same collection are serialized with a per-collection mutex so two
// requests cannot interleave partial file writes.
type FileStore struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dir: dir, locks: make(map[string]*sync.Mutex)}, nil
}

func (s *FileStore) lock(collection string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[collection]
	if !ok {
		l = &sync.Mutex{}
		s.locks[collection] = l
	}
	return l
}

func (s *FileStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

func (s *FileStore) Load(collection string, v any) error {
	l := s.lock(collection)
	l.Lock()
	defer l.Unlock()

	data, err := os.ReadFile(s.path(collection))
	if os.IsNotExist(err) {
		data = emptyDefault(collection)
	} else if err != nil {
		return fmt.Errorf("read %s: %w", collection, err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		data = emptyDefault(collection)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", collection, err)
	}
	return nil
}

func (s *FileStore) Save(collection string, v any) error {
	l := s.lock(collection)
	l.Lock()
	defer l.Unlock()

	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}
	if err := os.WriteFile(s.path(collection), data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", collection, err)
	}
	return nil
}
