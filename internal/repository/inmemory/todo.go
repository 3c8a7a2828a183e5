package inmemory

import (
	"sync"
	"todoServer/internal/domain/todo/todomodels"
)

// TodoStore хранит todo в порядке добавления, id уникален.
type TodoStore struct {
	mu    sync.Mutex
	todos []todomodels.Todo
}

func NewTodoStore() *TodoStore {
	return &TodoStore{todos: make([]todomodels.Todo, 0)}
}

// AddOrUpdateTodo заменяет запись с тем же id на месте, иначе добавляет в конец.
func (store *TodoStore) AddOrUpdateTodo(todo todomodels.Todo) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if i := store.indexOf(todo.ID); i >= 0 {
		store.todos[i] = todo
		return
	}
	store.todos = append(store.todos, todo)
}

func (store *TodoStore) ListTodos() []todomodels.Todo {
	store.mu.Lock()
	defer store.mu.Unlock()

	todos := make([]todomodels.Todo, len(store.todos))
	copy(todos, store.todos)
	return todos
}

func (store *TodoStore) DeleteTodo(id int) string {
	store.mu.Lock()
	defer store.mu.Unlock()

	i := store.indexOf(id)
	if i < 0 {
		return todomodels.NotFoundMessage(id)
	}
	store.todos = append(store.todos[:i], store.todos[i+1:]...)
	return todomodels.DeletedMessage(id)
}

func (store *TodoStore) DeleteAllTodos() string {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.todos = make([]todomodels.Todo, 0)
	return todomodels.MsgAllDeleted
}

// UpdateTodo в отличие от AddOrUpdateTodo ничего не добавляет, если id не найден.
func (store *TodoStore) UpdateTodo(todo todomodels.Todo) string {
	store.mu.Lock()
	defer store.mu.Unlock()

	i := store.indexOf(todo.ID)
	if i < 0 {
		return todomodels.NotFoundMessage(todo.ID)
	}
	store.todos[i] = todo
	return todomodels.UpdatedMessage(todo.ID)
}

// indexOf вызывается только под mu.
func (store *TodoStore) indexOf(id int) int {
	for i, t := range store.todos {
		if t.ID == id {
			return i
		}
	}
	return -1
}
