package userservice

import (
	"todoServer/internal/domain/user/usererrors"
	"todoServer/internal/domain/user/usermodels"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

type UserStorage interface {
	AddNewRegisteredUser(user usermodels.RegisteredUser)
	ListRegisteredUsers() []usermodels.RegisteredUser
}

type UserService struct {
	db    UserStorage
	valid *validator.Validate
}

func NewUserService(db UserStorage) *UserService {
	return &UserService{db: db, valid: validator.New()}
}

// Register сохраняет пару логин/пароль как есть: без хеша и без проверки на дубликат.
func (us *UserService) Register(req usermodels.RegisterRequest) error {
	if err := us.valid.Struct(req); err != nil {
		return errors.Wrap(usererrors.ErrMissingCreds, err.Error())
	}

	us.db.AddNewRegisteredUser(usermodels.RegisteredUser{
		Name: req.UserName,
		Pass: req.Password,
	})
	return nil
}

func (us *UserService) GetAllUsers() []usermodels.PublicUser {
	registered := us.db.ListRegisteredUsers()

	users := make([]usermodels.PublicUser, 0, len(registered))
	for _, user := range registered {
		users = append(users, usermodels.PublicUser{Name: user.Name})
	}
	return users
}

func (us *UserService) GetUserByName(name string) (usermodels.PublicUser, error) {
	if name == "" {
		return usermodels.PublicUser{}, usererrors.ErrEmptyName
	}

	for _, user := range us.db.ListRegisteredUsers() {
		if user.Name == name {
			return usermodels.PublicUser{Name: user.Name}, nil
		}
	}
	return usermodels.PublicUser{}, usererrors.ErrUserNotFound
}
