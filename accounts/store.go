package accounts

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/osuushi/support/internal/logging"
)

type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string]string{}}
}

func (s *MemoryStore) UserData(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}

func (s *MemoryStore) SetUserData(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

// FileStore keeps user data in a YAML mapping file, rewritten on every set.
type FileStore struct {
	path string

	mu   sync.RWMutex
	data map[string]string
}

// OpenFileStore loads the store at path. A missing file is an empty store;
// it is created on the first write.
func OpenFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, data: map[string]string{}}
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read account store")
	}
	if err := yaml.Unmarshal(raw, &s.data); err != nil {
		return nil, errors.Wrapf(err, "parse account store %s", path)
	}
	if s.data == nil {
		s.data = map[string]string{}
	}
	return s, nil
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) UserData(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}

func (s *FileStore) SetUserData(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	previous, had := s.data[key]
	s.data[key] = value
	if err := s.flush(); err != nil {
		if had {
			s.data[key] = previous
		} else {
			delete(s.data, key)
		}
		return err
	}
	return nil
}

// flush writes the data to a temporary file beside the store and renames it
// into place.
func (s *FileStore) flush() error {
	raw, err := yaml.Marshal(s.data)
	if err != nil {
		return errors.Wrap(err, "encode account store")
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*")
	if err != nil {
		return errors.Wrap(err, "write account store")
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return errors.Wrap(err, "write account store")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "write account store")
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return errors.Wrap(err, "write account store")
	}
	logging.Logger().Debug("account store written", "path", s.path, "keys", len(s.data))
	return nil
}
