package inmemory

import (
	"sync"
	"testing"
	"todoServer/internal/domain/todo/todomodels"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTodo(id int, name string) todomodels.Todo {
	return todomodels.Todo{
		ID:          id,
		Name:        name,
		Description: "desc " + name,
		Notes:       "notes " + name,
	}
}

func ids(todos []todomodels.Todo) []int {
	out := make([]int, 0, len(todos))
	for _, t := range todos {
		out = append(out, t.ID)
	}
	return out
}

func TestStorage_Todos(t *testing.T) {
	storage := NewInMemoryStorage()

	tests := []struct {
		name    string
		action  func() string
		wantMsg string
		check   func(t *testing.T)
	}{
		{
			name: "ListTodos_empty",
			action: func() string {
				return ""
			},
			check: func(t *testing.T) {
				todos := storage.ListTodos()
				assert.NotNil(t, todos)
				assert.Empty(t, todos)
			},
		},
		{
			name: "DeleteTodo_empty_store",
			action: func() string {
				return storage.DeleteTodo(1)
			},
			wantMsg: todomodels.NotFoundMessage(1),
			check: func(t *testing.T) {
				assert.Empty(t, storage.ListTodos())
			},
		},
		{
			name: "AddOrUpdateTodo_append",
			action: func() string {
				storage.AddOrUpdateTodo(newTodo(1, "A"))
				storage.AddOrUpdateTodo(newTodo(2, "B"))
				storage.AddOrUpdateTodo(newTodo(3, "C"))
				return ""
			},
			check: func(t *testing.T) {
				assert.Equal(t, []int{1, 2, 3}, ids(storage.ListTodos()))
			},
		},
		{
			name: "AddOrUpdateTodo_replace_in_place",
			action: func() string {
				storage.AddOrUpdateTodo(newTodo(2, "B2"))
				return ""
			},
			check: func(t *testing.T) {
				todos := storage.ListTodos()
				assert.Equal(t, []int{1, 2, 3}, ids(todos))
				assert.Equal(t, "B2", todos[1].Name)
			},
		},
		{
			name: "UpdateTodo_success",
			action: func() string {
				todo := newTodo(3, "C2")
				todo.Completed = true
				return storage.UpdateTodo(todo)
			},
			wantMsg: todomodels.UpdatedMessage(3),
			check: func(t *testing.T) {
				todos := storage.ListTodos()
				assert.Equal(t, []int{1, 2, 3}, ids(todos))
				assert.Equal(t, "C2", todos[2].Name)
				assert.True(t, todos[2].Completed)
			},
		},
		{
			name: "UpdateTodo_not_found_does_not_append",
			action: func() string {
				return storage.UpdateTodo(newTodo(42, "X"))
			},
			wantMsg: todomodels.NotFoundMessage(42),
			check: func(t *testing.T) {
				assert.Equal(t, []int{1, 2, 3}, ids(storage.ListTodos()))
			},
		},
		{
			name: "DeleteTodo_success",
			action: func() string {
				return storage.DeleteTodo(2)
			},
			wantMsg: todomodels.DeletedMessage(2),
			check: func(t *testing.T) {
				assert.Equal(t, []int{1, 3}, ids(storage.ListTodos()))
			},
		},
		{
			name: "DeleteTodo_not_found",
			action: func() string {
				return storage.DeleteTodo(99)
			},
			wantMsg: todomodels.NotFoundMessage(99),
			check: func(t *testing.T) {
				assert.Equal(t, []int{1, 3}, ids(storage.ListTodos()))
			},
		},
		{
			name: "DeleteAllTodos",
			action: func() string {
				return storage.DeleteAllTodos()
			},
			wantMsg: todomodels.MsgAllDeleted,
			check: func(t *testing.T) {
				assert.Empty(t, storage.ListTodos())
			},
		},
		{
			name: "DeleteAllTodos_idempotent",
			action: func() string {
				return storage.DeleteAllTodos()
			},
			wantMsg: todomodels.MsgAllDeleted,
			check: func(t *testing.T) {
				assert.Empty(t, storage.ListTodos())
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := tc.action()
			assert.Equal(t, tc.wantMsg, msg)
			tc.check(t)
		})
	}
}

func TestTodoStore_UpsertKeepsLatestValues(t *testing.T) {
	store := NewTodoStore()

	store.AddOrUpdateTodo(newTodo(1, "A"))
	store.AddOrUpdateTodo(newTodo(1, "B"))

	todos := store.ListTodos()
	require.Len(t, todos, 1)
	assert.Equal(t, "B", todos[0].Name)
	assert.Equal(t, "desc B", todos[0].Description)
}

func TestTodoStore_ListIsSnapshot(t *testing.T) {
	store := NewTodoStore()
	store.AddOrUpdateTodo(newTodo(1, "A"))

	snapshot := store.ListTodos()
	snapshot[0].Name = "changed"
	store.AddOrUpdateTodo(newTodo(2, "B"))

	assert.Len(t, snapshot, 1)
	assert.Equal(t, "A", store.ListTodos()[0].Name)
}

func TestTodoStore_ConcurrentUpserts(t *testing.T) {
	store := NewTodoStore()
	const workers = 50

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			store.AddOrUpdateTodo(newTodo(id, "first"))
			store.AddOrUpdateTodo(newTodo(id%10, "shared"))
			store.ListTodos()
		}(i)
	}
	wg.Wait()

	todos := store.ListTodos()
	assert.Len(t, todos, workers)

	seen := make(map[int]bool, len(todos))
	for _, todo := range todos {
		assert.False(t, seen[todo.ID], "duplicate id %d", todo.ID)
		seen[todo.ID] = true
	}
}

func TestTodoStore_ConcurrentDeletes(t *testing.T) {
	store := NewTodoStore()
	store.AddOrUpdateTodo(newTodo(1, "A"))
	store.AddOrUpdateTodo(newTodo(2, "B"))

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		deleted int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if store.DeleteTodo(1) == todomodels.DeletedMessage(1) {
				mu.Lock()
				deleted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, deleted)
	assert.Equal(t, []int{2}, ids(store.ListTodos()))
}
