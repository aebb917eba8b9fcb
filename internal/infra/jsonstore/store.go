// Package jsonstore provides JSON file-based persistence for tasks,
// settings and the onboarding profile. Every mutation writes the full
// snapshot; loads tolerate absent or malformed data.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"syscall"

	"tugasku/internal/domain"
)

// storeData represents the tasks.json file structure.
type storeData struct {
	Tasks map[string]json.RawMessage `json:"tasks"`
	Meta  meta                       `json:"meta"`
}

// meta contains store metadata.
type meta struct {
	NextTaskID int `json:"nextTaskID"`
}

// Store implements domain.TaskRepository using a JSON file.
type Store struct {
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first write.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Get retrieves a task by ID. Returns nil if not found or if the
// record cannot be rehydrated.
func (s *Store) Get(id int) (*domain.Task, error) {
	var task *domain.Task
	err := s.withLock(func(data *storeData) error {
		raw, ok := data.Tasks[strconv.Itoa(id)]
		if !ok {
			return nil
		}
		task = decodeTask(id, raw)
		return nil
	})
	return task, err
}

// List retrieves all tasks in ID (insertion) order. Malformed records
// are dropped individually; load never fails because of them.
func (s *Store) List() ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := s.withLock(func(data *storeData) error {
		for key, raw := range data.Tasks {
			id, convErr := strconv.Atoi(key)
			if convErr != nil {
				continue
			}
			if t := decodeTask(id, raw); t != nil {
				tasks = append(tasks, t)
			}
		}
		return nil
	})

	slices.SortFunc(tasks, func(a, b *domain.Task) int {
		return a.ID - b.ID
	})

	return tasks, err
}

// Save creates or updates a task.
func (s *Store) Save(task *domain.Task) error {
	return s.withLockWrite(func(data *storeData) error {
		raw, err := json.Marshal(task)
		if err != nil {
			return fmt.Errorf("marshal task: %w", err)
		}
		data.Tasks[strconv.Itoa(task.ID)] = raw
		return nil
	})
}

// Delete removes a task by ID. Deleting an absent ID is a no-op.
func (s *Store) Delete(id int) error {
	return s.withLockWrite(func(data *storeData) error {
		delete(data.Tasks, strconv.Itoa(id))
		return nil
	})
}

// NextID returns the next available task ID.
func (s *Store) NextID() (int, error) {
	var id int
	err := s.withLockWrite(func(data *storeData) error {
		id = data.Meta.NextTaskID
		data.Meta.NextTaskID++
		return nil
	})
	return id, err
}

// IsInitialized checks if the store file exists.
func (s *Store) IsInitialized() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Initialize creates an empty store file if it doesn't exist.
func (s *Store) Initialize() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	if s.IsInitialized() {
		return nil
	}

	data := &storeData{
		Meta:  meta{NextTaskID: 1},
		Tasks: make(map[string]json.RawMessage),
	}
	return s.write(data)
}

// decodeTask rehydrates a single record. Records that fail to parse or
// violate basic invariants (empty title, zero due time) are dropped by
// returning nil.
func decodeTask(id int, raw json.RawMessage) *domain.Task {
	var t domain.Task
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil
	}
	if t.Title == "" || t.Due.IsZero() {
		return nil
	}
	t.ID = id
	return &t
}

// withLock executes fn with a shared (read) lock.
func (s *Store) withLock(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	return fn(s.read())
}

// withLockWrite executes fn with an exclusive (write) lock and writes
// the result.
func (s *Store) withLockWrite(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data := s.read()
	if err := fn(data); err != nil {
		return err
	}

	return s.write(data)
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

// read loads the snapshot. An absent or unparseable file yields an
// empty store rather than an error: startup must always proceed.
func (s *Store) read() *storeData {
	empty := &storeData{
		Meta:  meta{NextTaskID: 1},
		Tasks: make(map[string]json.RawMessage),
	}

	content, err := os.ReadFile(s.path)
	if err != nil {
		return empty
	}

	var data storeData
	if err := json.Unmarshal(content, &data); err != nil {
		return empty
	}
	if data.Tasks == nil {
		data.Tasks = make(map[string]json.RawMessage)
	}
	if data.Meta.NextTaskID < 1 {
		data.Meta.NextTaskID = 1
	}

	// Keep NextTaskID ahead of any existing record even if the meta
	// block was lost.
	for key := range data.Tasks {
		if id, convErr := strconv.Atoi(key); convErr == nil && id >= data.Meta.NextTaskID {
			data.Meta.NextTaskID = id + 1
		}
	}

	return &data
}

func (s *Store) write(data *storeData) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store data: %w", err)
	}
	return writeAtomic(s.path, content)
}

// writeAtomic writes to a temp file and renames it into place.
func writeAtomic(path string, content []byte) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// Ensure Store implements the task ports.
var (
	_ domain.TaskRepository   = (*Store)(nil)
	_ domain.StoreInitializer = (*Store)(nil)
)
