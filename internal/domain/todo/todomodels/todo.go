package todomodels

import "fmt"

type Todo struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Notes       string `json:"notes"`
	Completed   bool   `json:"completed"`
	Synced      bool   `json:"synced"`
}

// TodoRequest - сырые поля запроса, до приведения типов.
type TodoRequest struct {
	ID          string `validate:"required"`
	Name        string `validate:"required"`
	Description string `validate:"required"`
	Notes       string `validate:"required"`
	Completed   string `validate:"required"`
	Synced      string `validate:"required"`
}

const (
	msgDeleted    = "Todo with id %d was deleted"
	msgNotFound   = "Todo with id %d was not found"
	msgUpdated    = "Todo with id %d was updated"
	MsgAllDeleted = "All todos were deleted"
)

func DeletedMessage(id int) string {
	return fmt.Sprintf(msgDeleted, id)
}

func NotFoundMessage(id int) string {
	return fmt.Sprintf(msgNotFound, id)
}

func UpdatedMessage(id int) string {
	return fmt.Sprintf(msgUpdated, id)
}
