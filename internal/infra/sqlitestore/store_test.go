package sqlitestore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tugasku/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "tasks.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_SaveAndGet(t *testing.T) {
	store := newTestStore(t)

	due := time.Date(2030, 1, 2, 9, 0, 0, 0, time.Local)
	task := &domain.Task{
		ID:           1,
		Title:        "Write report",
		Description:  "for Monday",
		Category:     domain.CategoryWork,
		Priority:     domain.PriorityHigh,
		Due:          due,
		ReminderLead: 60,
		Created:      time.Now().Truncate(time.Second),
	}
	require.NoError(t, store.Save(task))

	got, err := store.Get(1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Write report", got.Title)
	assert.Equal(t, domain.CategoryWork, got.Category)
	assert.Equal(t, 60, got.ReminderLead)
	assert.True(t, due.Equal(got.Due))
}

func TestStore_Get_Missing(t *testing.T) {
	store := newTestStore(t)
	got, err := store.Get(5)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_SaveUpdatesExisting(t *testing.T) {
	store := newTestStore(t)
	due := time.Now().Add(time.Hour).Truncate(time.Second)
	task := &domain.Task{ID: 1, Title: "a", Priority: domain.PriorityMedium, Due: due, Created: time.Now().Truncate(time.Second)}
	require.NoError(t, store.Save(task))

	task.Completed = true
	task.Title = "a (done)"
	require.NoError(t, store.Save(task))

	got, err := store.Get(1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Completed)
	assert.Equal(t, "a (done)", got.Title)

	tasks, err := store.List()
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestStore_Get_SurfacesDriverErrors(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Close())

	got, err := store.Get(1)
	require.Error(t, err, "a failed read must not look like a missing task")
	assert.Nil(t, got)
}

func TestStore_List_SurfacesQueryErrors(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Close())

	_, err := store.List()
	require.Error(t, err)
}

func TestStore_DropsRowsWithInvalidContent(t *testing.T) {
	store := newTestStore(t)
	due := time.Now().Add(time.Hour).Truncate(time.Second)
	require.NoError(t, store.Save(&domain.Task{ID: 1, Title: "keep", Priority: domain.PriorityMedium, Due: due, Created: time.Now().Truncate(time.Second)}))

	// Bypass Save to plant a row with an unparseable due timestamp.
	_, err := store.db.Exec(`INSERT INTO tasks (id, title, due, created_at) VALUES (2, 'broken', 'not-a-time', 'also-not-a-time');`)
	require.NoError(t, err)

	got, err := store.Get(2)
	require.NoError(t, err)
	assert.Nil(t, got)

	tasks, err := store.List()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "keep", tasks[0].Title)
}

func TestStore_DeleteAndNextID(t *testing.T) {
	store := newTestStore(t)
	due := time.Now().Add(time.Hour).Truncate(time.Second)

	id, err := store.NextID()
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	require.NoError(t, store.Save(&domain.Task{ID: id, Title: "a", Priority: domain.PriorityLow, Due: due, Created: time.Now().Truncate(time.Second)}))

	id, err = store.NextID()
	require.NoError(t, err)
	assert.Equal(t, 2, id)

	require.NoError(t, store.Delete(1))
	require.NoError(t, store.Delete(1)) // idempotent

	tasks, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
