package storage

import (
	"log/slog"

	"github.com/riordanpawley/taskboard/internal/domain"
)

// MemoryStore keeps the serialized task list in memory.
// Used for tests and ephemeral sessions.
type MemoryStore struct {
	data   []byte
	saves  int
	logger *slog.Logger
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore(logger *slog.Logger) *MemoryStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &MemoryStore{logger: logger}
}

// NewMemoryStoreWithData creates a store seeded with raw serialized data
func NewMemoryStoreWithData(data []byte, logger *slog.Logger) *MemoryStore {
	s := NewMemoryStore(logger)
	s.data = append([]byte(nil), data...)
	return s
}

// Load decodes the held data, returning an empty list if absent or corrupt
func (s *MemoryStore) Load() []domain.Task {
	if s.data == nil {
		return []domain.Task{}
	}
	tasks, err := decode(s.data)
	if err != nil {
		s.logger.Warn("stored task list is unreadable, starting empty",
			"error", &domain.StorageError{Op: "decode", Key: DefaultKey, Err: err})
		return []domain.Task{}
	}
	return tasks
}

// Save replaces the held data
func (s *MemoryStore) Save(tasks []domain.Task) error {
	data, err := encode(tasks)
	if err != nil {
		return &domain.StorageError{Op: "save", Key: DefaultKey, Err: err}
	}
	s.data = data
	s.saves++
	return nil
}

// Raw returns a copy of the serialized data
func (s *MemoryStore) Raw() []byte {
	return append([]byte(nil), s.data...)
}

// Saves returns how many times Save succeeded
func (s *MemoryStore) Saves() int {
	return s.saves
}
