package usermodels

// RegisteredUser хранится как есть, пароль без хеширования.
type RegisteredUser struct {
	Name string `json:"name"`
	Pass string `json:"-"`
}

type RegisterRequest struct {
	UserName string `validate:"required"`
	Password string `validate:"required"`
}

// PublicUser - то, что отдаём наружу из /users.
type PublicUser struct {
	Name string `json:"name"`
}
