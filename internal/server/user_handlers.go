package server

import (
	"net/http"
	"todoServer/internal/domain/user/usererrors"
	"todoServer/internal/domain/user/usermodels"
	"todoServer/internal/service/userservice"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

func (api *TodoAPI) register(ctx *gin.Context) {
	req := usermodels.RegisterRequest{
		UserName: requestField(ctx, "userName"),
		Password: requestField(ctx, "password"),
	}

	service := userservice.NewUserService(api.db)
	if err := service.Register(req); err != nil {
		zerolog.Ctx(ctx.Request.Context()).Debug().Err(err).Msg("registration rejected")
		ctx.JSON(http.StatusOK, gin.H{"success": false})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

func (api *TodoAPI) getAllUsers(ctx *gin.Context) {
	usersService := userservice.NewUserService(api.db)
	ctx.JSON(http.StatusOK, usersService.GetAllUsers())
}

func (api *TodoAPI) getUserByName(ctx *gin.Context) {
	usersService := userservice.NewUserService(api.db)
	user, err := usersService.GetUserByName(ctx.Param("name"))
	if err != nil {
		if errors.Is(err, usererrors.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, user)
}
