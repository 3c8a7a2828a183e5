package inmemory

import (
	"sync"
	"todoServer/internal/domain/user/usermodels"
)

// RegistrationStore - журнал регистраций, только добавление.
// Дубликаты имён не проверяются.
type RegistrationStore struct {
	mu    sync.Mutex
	users []usermodels.RegisteredUser
}

func NewRegistrationStore() *RegistrationStore {
	return &RegistrationStore{users: make([]usermodels.RegisteredUser, 0)}
}

func (store *RegistrationStore) AddNewRegisteredUser(user usermodels.RegisteredUser) {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.users = append(store.users, user)
}

func (store *RegistrationStore) ListRegisteredUsers() []usermodels.RegisteredUser {
	store.mu.Lock()
	defer store.mu.Unlock()

	users := make([]usermodels.RegisteredUser, len(store.users))
	copy(users, store.users)
	return users
}
