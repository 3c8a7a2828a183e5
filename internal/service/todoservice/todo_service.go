package todoservice

import (
	"strconv"
	"todoServer/internal/domain/todo/todoerrors"
	"todoServer/internal/domain/todo/todomodels"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

type TodoStorage interface {
	AddOrUpdateTodo(todo todomodels.Todo)
	ListTodos() []todomodels.Todo
	DeleteTodo(id int) string
	DeleteAllTodos() string
	UpdateTodo(todo todomodels.Todo) string
}

type TodoService struct {
	db    TodoStorage
	valid *validator.Validate
}

func NewTodoService(db TodoStorage) *TodoService {
	return &TodoService{db: db, valid: validator.New()}
}

func (ts *TodoService) GetAllTodos() []todomodels.Todo {
	return ts.db.ListTodos()
}

// GetTodoByID всегда отдаёт список: пустой или из одного элемента.
func (ts *TodoService) GetTodoByID(rawID string) ([]todomodels.Todo, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}

	found := make([]todomodels.Todo, 0, 1)
	for _, todo := range ts.db.ListTodos() {
		if todo.ID == id {
			found = append(found, todo)
		}
	}
	return found, nil
}

// CreateOrUpdateTodo возвращает весь список после upsert, а не только затронутый элемент.
func (ts *TodoService) CreateOrUpdateTodo(req todomodels.TodoRequest) ([]todomodels.Todo, error) {
	todo, err := ts.parseTodo(req)
	if err != nil {
		return nil, err
	}

	ts.db.AddOrUpdateTodo(todo)
	return ts.db.ListTodos(), nil
}

func (ts *TodoService) UpdateTodo(req todomodels.TodoRequest) (string, error) {
	todo, err := ts.parseTodo(req)
	if err != nil {
		return "", err
	}

	return ts.db.UpdateTodo(todo), nil
}

func (ts *TodoService) DeleteTodoByID(rawID string) (string, error) {
	id, err := parseID(rawID)
	if err != nil {
		return "", err
	}

	return ts.db.DeleteTodo(id), nil
}

func (ts *TodoService) DeleteAllTodos() string {
	return ts.db.DeleteAllTodos()
}

func (ts *TodoService) parseTodo(req todomodels.TodoRequest) (todomodels.Todo, error) {
	if err := ts.valid.Struct(req); err != nil {
		return todomodels.Todo{}, errors.Wrap(todoerrors.ErrMandatoryParams, err.Error())
	}

	id, err := strconv.Atoi(req.ID)
	if err != nil {
		return todomodels.Todo{}, errors.Wrapf(todoerrors.ErrMandatoryParams, "id %q", req.ID)
	}

	completed, err := strconv.ParseBool(req.Completed)
	if err != nil {
		return todomodels.Todo{}, errors.Wrapf(todoerrors.ErrMandatoryParams, "completed %q", req.Completed)
	}

	synced, err := strconv.ParseBool(req.Synced)
	if err != nil {
		return todomodels.Todo{}, errors.Wrapf(todoerrors.ErrMandatoryParams, "synced %q", req.Synced)
	}

	return todomodels.Todo{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Notes:       req.Notes,
		Completed:   completed,
		Synced:      synced,
	}, nil
}

func parseID(rawID string) (int, error) {
	if rawID == "" {
		return 0, todoerrors.ErrMissingID
	}

	id, err := strconv.Atoi(rawID)
	if err != nil {
		return 0, errors.Wrapf(todoerrors.ErrMissingID, "id %q", rawID)
	}
	return id, nil
}
