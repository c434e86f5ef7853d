// Package store is a tiny key/value persistence layer, the local stand-in
// for browser storage.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// Store reads and writes string values by key.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// FileStore keeps every key in a single JSON object on disk. The file is
// re-read on each Get so that several processes see each other's writes.
type FileStore struct {
	path  string
	mutex sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (fs *FileStore) Path() string {
	return fs.path
}

func (fs *FileStore) Get(key string) (string, bool, error) {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	values, err := fs.load()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

func (fs *FileStore) Set(key, value string) error {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	values, err := fs.load()
	if err != nil {
		// A corrupt file is replaced rather than blocking every later write.
		values = make(map[string]string)
	}
	values[key] = value

	if err := os.MkdirAll(filepath.Dir(fs.path), 0755); err != nil {
		return errors.Wrap(err, "create store directory")
	}
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal store")
	}
	if err := os.WriteFile(fs.path, data, 0644); err != nil {
		return errors.Wrapf(err, "write store %s", fs.path)
	}
	return nil
}

func (fs *FileStore) load() (map[string]string, error) {
	values := make(map[string]string)
	data, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return values, nil
		}
		return nil, errors.Wrapf(err, "read store %s", fs.path)
	}
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, errors.Wrapf(err, "decode store %s", fs.path)
	}
	return values, nil
}

// MemoryStore is a Store that lives for the process only.
type MemoryStore struct {
	values map[string]string
	mutex  sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (ms *MemoryStore) Get(key string) (string, bool, error) {
	ms.mutex.RLock()
	defer ms.mutex.RUnlock()
	v, ok := ms.values[key]
	return v, ok, nil
}

func (ms *MemoryStore) Set(key, value string) error {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()
	ms.values[key] = value
	return nil
}
