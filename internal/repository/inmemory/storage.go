package inmemory

// Storage собирает оба хранилища под одним значением, чтобы отдать его серверу целиком.
type Storage struct {
	*TodoStore
	*RegistrationStore
}

func NewInMemoryStorage() *Storage {
	return &Storage{
		TodoStore:         NewTodoStore(),
		RegistrationStore: NewRegistrationStore(),
	}
}
