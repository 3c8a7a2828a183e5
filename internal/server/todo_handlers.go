package server

import (
	"net/http"
	"todoServer/internal/domain/todo/todoerrors"
	"todoServer/internal/domain/todo/todomodels"
	"todoServer/internal/service/todoservice"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Ошибки валидации отдаём со статусом 200: клиенты различают их только по телу ответа.

func todoRequestFromCtx(ctx *gin.Context) todomodels.TodoRequest {
	return todomodels.TodoRequest{
		ID:          requestField(ctx, "id"),
		Name:        requestField(ctx, "name"),
		Description: requestField(ctx, "description"),
		Notes:       requestField(ctx, "notes"),
		Completed:   requestField(ctx, "completed"),
		Synced:      requestField(ctx, "synced"),
	}
}

func (api *TodoAPI) respondTodoError(ctx *gin.Context, err error) {
	zerolog.Ctx(ctx.Request.Context()).Debug().Err(err).Msg("todo request rejected")

	switch {
	case errors.Is(err, todoerrors.ErrMandatoryParams):
		ctx.JSON(http.StatusOK, gin.H{"message": todoerrors.ErrMandatoryParams.Error()})
	case errors.Is(err, todoerrors.ErrMissingID):
		ctx.JSON(http.StatusOK, gin.H{"message": todoerrors.ErrMissingID.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func (api *TodoAPI) postTodo(ctx *gin.Context) {
	todoService := todoservice.NewTodoService(api.db)
	todos, err := todoService.CreateOrUpdateTodo(todoRequestFromCtx(ctx))
	if err != nil {
		api.respondTodoError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, todos)
}

func (api *TodoAPI) getTodos(ctx *gin.Context) {
	todoService := todoservice.NewTodoService(api.db)
	ctx.JSON(http.StatusOK, todoService.GetAllTodos())
}

func (api *TodoAPI) getTodoByID(ctx *gin.Context) {
	todoService := todoservice.NewTodoService(api.db)
	todos, err := todoService.GetTodoByID(requestField(ctx, "id"))
	if err != nil {
		api.respondTodoError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, todos)
}

func (api *TodoAPI) deleteTodo(ctx *gin.Context) {
	todoService := todoservice.NewTodoService(api.db)
	msg, err := todoService.DeleteTodoByID(requestField(ctx, "id"))
	if err != nil {
		api.respondTodoError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": msg})
}

func (api *TodoAPI) deleteAllTodos(ctx *gin.Context) {
	todoService := todoservice.NewTodoService(api.db)
	ctx.JSON(http.StatusOK, gin.H{"message": todoService.DeleteAllTodos()})
}

// updateTodo в отличие от postTodo отвечает статусом, а не списком.
func (api *TodoAPI) updateTodo(ctx *gin.Context) {
	todoService := todoservice.NewTodoService(api.db)
	msg, err := todoService.UpdateTodo(todoRequestFromCtx(ctx))
	if err != nil {
		api.respondTodoError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": msg})
}
