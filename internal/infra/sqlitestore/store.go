// Package sqlitestore provides a SQLite-backed implementation of
// TaskRepository, selectable with [tasks].store = "sqlite".
package sqlitestore

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"tugasku/internal/domain"
)

// Store implements domain.TaskRepository using a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at dbPath.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, errors.New("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, err
	}
	db, err := sql.Open("sqlite", sqliteDSN(dbPath))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.Initialize(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// IsInitialized reports whether the schema exists.
func (s *Store) IsInitialized() bool {
	var name string
	err := s.db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'tasks';`).Scan(&name)
	return err == nil
}

// Initialize creates the schema if it doesn't exist.
func (s *Store) Initialize() error {
	if s.IsInitialized() {
		return nil
	}
	const ddl = `
CREATE TABLE IF NOT EXISTS tasks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	description TEXT DEFAULT '',
	category TEXT DEFAULT '',
	priority TEXT NOT NULL DEFAULT 'medium',
	due TEXT NOT NULL,
	reminder_lead INTEGER NOT NULL DEFAULT 30,
	completed INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
);`
	_, err := s.db.Exec(ddl)
	return err
}

// Get retrieves a task by ID. Returns nil if not found. A row whose
// content fails validation is treated as absent; driver and connection
// errors are surfaced so callers do not mistake them for a missing
// task.
func (s *Store) Get(id int) (*domain.Task, error) {
	row := s.db.QueryRow(`SELECT id, title, description, category, priority, due, reminder_lead, completed, created_at FROM tasks WHERE id = ?;`, id)
	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, errBadRow) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	return task, nil
}

// List retrieves all tasks in ID (insertion) order. Rows with invalid
// content are dropped individually; read failures are surfaced.
func (s *Store) List() ([]*domain.Task, error) {
	rows, err := s.db.Query(`SELECT id, title, description, category, priority, due, reminder_lead, completed, created_at FROM tasks ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var tasks []*domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if errors.Is(err, errBadRow) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// Save creates or updates a task.
func (s *Store) Save(task *domain.Task) error {
	_, err := s.db.Exec(`INSERT INTO tasks (id, title, description, category, priority, due, reminder_lead, completed, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
	title = excluded.title,
	description = excluded.description,
	category = excluded.category,
	priority = excluded.priority,
	due = excluded.due,
	reminder_lead = excluded.reminder_lead,
	completed = excluded.completed;`,
		task.ID,
		task.Title,
		task.Description,
		string(task.Category),
		string(task.Priority),
		task.Due.UTC().Format(time.RFC3339),
		task.ReminderLead,
		boolInt(task.Completed),
		task.Created.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save task: %w", err)
	}
	return nil
}

// Delete removes a task by ID. Deleting an absent ID is a no-op.
func (s *Store) Delete(id int) error {
	_, err := s.db.Exec(`DELETE FROM tasks WHERE id = ?;`, id)
	return err
}

// NextID returns the next available task ID.
func (s *Store) NextID() (int, error) {
	var maxID sql.NullInt64
	if err := s.db.QueryRow(`SELECT MAX(id) FROM tasks;`).Scan(&maxID); err != nil {
		return 0, fmt.Errorf("next id: %w", err)
	}
	if !maxID.Valid {
		return 1, nil
	}
	return int(maxID.Int64) + 1, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// errBadRow marks a row whose stored content cannot be turned into a
// task. Such rows are dropped individually; any other scan error
// means the read itself failed and must be surfaced.
var errBadRow = errors.New("unreadable task row")

func scanTask(row rowScanner) (*domain.Task, error) {
	var t domain.Task
	var category, priority, dueStr, createdStr string
	var completed int

	if err := row.Scan(&t.ID, &t.Title, &t.Description, &category, &priority, &dueStr, &t.ReminderLead, &completed, &createdStr); err != nil {
		return nil, err
	}

	due, err := time.Parse(time.RFC3339, dueStr)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid due time: %v", errBadRow, err)
	}
	created, err := time.Parse(time.RFC3339, createdStr)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid created time: %v", errBadRow, err)
	}
	if t.Title == "" {
		return nil, fmt.Errorf("%w: empty title", errBadRow)
	}

	t.Category = domain.Category(category)
	t.Priority = domain.Priority(priority)
	t.Due = due.Local()
	t.Created = created.Local()
	t.Completed = completed == 1
	return &t, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func sqliteDSN(path string) string {
	if strings.HasPrefix(path, "file:") {
		return path
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	u := url.URL{Scheme: "file", Path: path}
	q := u.Query()
	q.Set("mode", "rwc")
	q.Set("_pragma", "busy_timeout(5000)")
	u.RawQuery = q.Encode()
	return u.String()
}

// Ensure Store implements the task ports.
var (
	_ domain.TaskRepository   = (*Store)(nil)
	_ domain.StoreInitializer = (*Store)(nil)
)
