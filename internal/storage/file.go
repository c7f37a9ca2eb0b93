package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/riordanpawley/taskboard/internal/domain"
)

// FileStore keeps each entry in <dir>/<key>.json
type FileStore struct {
	dir    string
	key    string
	logger *slog.Logger
}

// NewFileStore creates a file-backed store for the given entry
func NewFileStore(dir, key string, logger *slog.Logger) *FileStore {
	if logger == nil {
		logger = slog.Default()
	}
	if key == "" {
		key = DefaultKey
	}
	return &FileStore{
		dir:    dir,
		key:    key,
		logger: logger,
	}
}

// Path returns the file backing the entry
func (s *FileStore) Path() string {
	return filepath.Join(s.dir, s.key+".json")
}

// Load reads the stored task list. Missing or corrupt data yields an empty list.
func (s *FileStore) Load() []domain.Task {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("failed to read task list, starting empty",
				"error", &domain.StorageError{Op: "load", Key: s.key, Err: err})
		}
		return []domain.Task{}
	}

	tasks, err := decode(data)
	if err != nil {
		s.logger.Warn("stored task list is unreadable, starting empty",
			"path", s.Path(),
			"error", &domain.StorageError{Op: "decode", Key: s.key, Err: err})
		return []domain.Task{}
	}

	s.logger.Debug("loaded tasks", "path", s.Path(), "count", len(tasks))
	return tasks
}

// Save replaces the stored task list
func (s *FileStore) Save(tasks []domain.Task) error {
	data, err := encode(tasks)
	if err != nil {
		return &domain.StorageError{Op: "save", Key: s.key, Err: err}
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return &domain.StorageError{Op: "save", Key: s.key, Err: err}
	}

	if err := s.writeAtomic(data); err != nil {
		return &domain.StorageError{Op: "save", Key: s.key, Err: err}
	}

	return nil
}

// writeAtomic writes to a temp file in the same directory and renames it
// over the target so a crash never leaves a half-written entry.
func (s *FileStore) writeAtomic(data []byte) error {
	tmp, err := os.CreateTemp(s.dir, s.key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.Path()); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", s.Path(), err)
	}
	return nil
}
