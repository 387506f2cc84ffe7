package session

import (
	"os"
	"path/filepath"
	"sync"

	"dating/internal/errors"
)

// ErrNoSnapshot is returned by Storage.Load when nothing has been saved.
var ErrNoSnapshot = errors.New("no session snapshot")

// Storage is the durable mirror of the session. It holds one snapshot, not a live channel.
type Storage interface {
	Load() ([]byte, error)
	Save(data []byte) error
	Remove() error
}

// FileStorage keeps the snapshot in a single file, replaced atomically on every save.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (s *FileStorage) Load() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSnapshot
		}

		return nil, errors.Wrapf(err, "read session snapshot %s", s.path)
	}

	return data, nil
}

// Save writes to a temp file in the same directory and renames it over the snapshot,
// so a concurrent reader sees either the old or the new snapshot.
func (s *FileStorage) Save(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return errors.Wrapf(err, "create session directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return errors.Wrap(err, "create session temp file")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()

		return errors.Wrap(err, "write session snapshot")
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()

		return errors.Wrap(err, "chmod session snapshot")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close session snapshot")
	}

	return errors.Wrap(os.Rename(tmpName, s.path), "replace session snapshot")
}

func (s *FileStorage) Remove() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "remove session snapshot %s", s.path)
	}

	return nil
}

// MemoryStorage keeps the snapshot in memory.
type MemoryStorage struct {
	mu   sync.Mutex
	data []byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Load() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		return nil, ErrNoSnapshot
	}

	return append([]byte(nil), s.data...), nil
}

func (s *MemoryStorage) Save(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = append([]byte(nil), data...)

	return nil
}

func (s *MemoryStorage) Remove() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = nil

	return nil
}
