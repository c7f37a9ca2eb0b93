// Package store holds the in-memory task list and writes it through to
// storage on every change.
package store

import (
	"log/slog"
	"strings"
	"time"

	"github.com/riordanpawley/taskboard/internal/domain"
	"github.com/riordanpawley/taskboard/internal/storage"
)

// Store is the single source of truth for the session's tasks.
// It is not safe for concurrent use; the UI event loop serializes all calls.
type Store struct {
	tasks   []domain.Task
	storage storage.Storage
	now     func() time.Time
	lastID  int64
	saveErr error
	logger  *slog.Logger
}

// Option configures a Store
type Option func(*Store)

// WithClock overrides the time source used to derive task ids
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a store seeded from storage
func New(st storage.Storage, opts ...Option) *Store {
	s := &Store{
		storage: st,
		now:     time.Now,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.tasks = st.Load()
	for _, t := range s.tasks {
		if t.ID > s.lastID {
			s.lastID = t.ID
		}
	}

	s.logger.Info("task store initialized", "count", len(s.tasks))
	return s
}

// Add appends a new Todo task. Titles that are empty after trimming are
// ignored and report false.
func (s *Store) Add(title string) (domain.Task, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		s.logger.Debug("ignoring task with empty title")
		return domain.Task{}, false
	}

	task := domain.Task{
		ID:     s.nextID(),
		Title:  title,
		Status: domain.StatusTodo,
	}
	s.tasks = append(s.tasks, task)
	s.logger.Debug("task added", "id", task.ID, "title", task.Title)

	s.persist()
	return task, true
}

// Advance moves the task one step along the pipeline. Unknown ids and
// tasks already in the terminal status are left untouched and report false.
func (s *Store) Advance(id int64) (domain.Task, bool) {
	i := s.indexOf(id)
	if i < 0 {
		s.logger.Debug("advance on unknown task", "id", id)
		return domain.Task{}, false
	}

	current := s.tasks[i].Status
	if current.IsTerminal() {
		return s.tasks[i], false
	}

	s.tasks[i].Status = current.Next()
	s.logger.Debug("task advanced", "id", id, "from", current, "to", s.tasks[i].Status)

	s.persist()
	return s.tasks[i], true
}

// Tasks returns a copy of all tasks in insertion order
func (s *Store) Tasks() []domain.Task {
	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Get returns the task with the given id
func (s *Store) Get(id int64) (domain.Task, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return domain.Task{}, false
	}
	return s.tasks[i], true
}

// Len returns the number of tasks
func (s *Store) Len() int {
	return len(s.tasks)
}

// LastSaveErr returns the error from the most recent write-through, if any
func (s *Store) LastSaveErr() error {
	return s.saveErr
}

func (s *Store) indexOf(id int64) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// nextID derives an id from the creation time, bumped past the largest id
// seen so ids stay unique even for two adds in the same millisecond.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Store) persist() {
	s.saveErr = s.storage.Save(s.tasks)
	if s.saveErr != nil {
		s.logger.Error("failed to persist tasks", "count", len(s.tasks), "error", s.saveErr)
	}
}
