package jsonstore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tugasku/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := New(filepath.Join(t.TempDir(), "tasks.json"))
	require.NoError(t, store.Initialize())
	return store
}

func TestStore_SaveAndLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)

	due := time.Date(2024, 3, 16, 9, 0, 0, 0, time.Local)
	created := time.Date(2024, 3, 15, 8, 0, 0, 0, time.Local)
	task := &domain.Task{
		ID:           1,
		Title:        "Pay rent",
		Description:  "before noon",
		Category:     domain.CategoryPersonal,
		Priority:     domain.PriorityHigh,
		Due:          due,
		ReminderLead: 30,
		Created:      created,
	}
	require.NoError(t, store.Save(task))

	// Re-open to prove the snapshot, not memory, is the source.
	reopened := New(store.path)
	got, err := reopened.Get(1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Pay rent", got.Title)
	assert.Equal(t, domain.PriorityHigh, got.Priority)
	assert.True(t, due.Equal(got.Due))
	assert.True(t, created.Equal(got.Created))
	assert.False(t, got.Completed)
}

func TestStore_Get_Missing(t *testing.T) {
	store := newTestStore(t)
	got, err := store.Get(42)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_List_InsertionOrder(t *testing.T) {
	store := newTestStore(t)
	due := time.Now().Add(time.Hour)
	for i := 1; i <= 3; i++ {
		id, err := store.NextID()
		require.NoError(t, err)
		require.NoError(t, store.Save(&domain.Task{ID: id, Title: "t", Due: due, Created: time.Now()}))
	}

	tasks, err := store.List()
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{tasks[0].ID, tasks[1].ID, tasks[2].ID})
}

func TestStore_List_DropsMalformedRecords(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.json")
	content := `{
  "meta": {"nextTaskID": 4},
  "tasks": {
    "1": {"title": "good", "due": "2030-01-02T09:00:00Z", "created": "2024-01-01T00:00:00Z", "priority": "medium"},
    "2": {"title": "", "due": "2030-01-02T09:00:00Z"},
    "3": "not an object"
  }
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	store := New(path)
	tasks, err := store.List()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, 1, tasks[0].ID)
	assert.Equal(t, "good", tasks[0].Title)
}

func TestStore_CorruptFileLoadsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.json")
	require.NoError(t, os.WriteFile(path, []byte("{{{"), 0o600))

	store := New(path)
	tasks, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestStore_Delete(t *testing.T) {
	store := newTestStore(t)
	due := time.Now().Add(time.Hour)
	require.NoError(t, store.Save(&domain.Task{ID: 1, Title: "a", Due: due, Created: time.Now()}))
	require.NoError(t, store.Save(&domain.Task{ID: 2, Title: "b", Due: due, Created: time.Now()}))

	require.NoError(t, store.Delete(1))

	// The persisted snapshot must contain no trace of the id.
	reopened := New(store.path)
	tasks, err := reopened.List()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, 2, tasks[0].ID)
}

func TestStore_Delete_AbsentIDIsNoop(t *testing.T) {
	store := newTestStore(t)
	due := time.Now().Add(time.Hour)
	require.NoError(t, store.Save(&domain.Task{ID: 1, Title: "a", Due: due, Created: time.Now()}))

	require.NoError(t, store.Delete(99))

	tasks, err := store.List()
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestStore_NextID_Monotonic(t *testing.T) {
	store := newTestStore(t)

	first, err := store.NextID()
	require.NoError(t, err)
	second, err := store.NextID()
	require.NoError(t, err)
	assert.Equal(t, first+1, second)
}

func TestStore_NextID_RecoversFromLostMeta(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.json")
	content := `{"tasks": {"7": {"title": "x", "due": "2030-01-02T09:00:00Z", "created": "2024-01-01T00:00:00Z"}}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	store := New(path)
	id, err := store.NextID()
	require.NoError(t, err)
	assert.Equal(t, 8, id)
}
