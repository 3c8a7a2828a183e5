package todoerrors

import "errors"

var (
	ErrMandatoryParams = errors.New("Please include mandatory parameters") //nolint:staticcheck // текст уходит клиенту как есть
	ErrMissingID       = errors.New("Please provide the id of todo item") //nolint:staticcheck // текст уходит клиенту как есть
)
