package server

import (
	"net/http"
	"todoServer/internal/domain/todo/todoerrors"
	"todoServer/internal/server/middleware"

	"github.com/gin-gonic/gin"
)

func (api *TodoAPI) getSession(ctx *gin.Context) {
	name := ctx.GetString(middleware.SessionNameKey)
	if name == "" {
		ctx.JSON(http.StatusOK, gin.H{"message": "Session is empty"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"name": name})
}

func (api *TodoAPI) setSession(ctx *gin.Context) {
	name := requestField(ctx, "name")
	if name == "" {
		ctx.JSON(http.StatusOK, gin.H{"message": todoerrors.ErrMandatoryParams.Error()})
		return
	}

	token, err := api.sessions.NewSessionToken(name)
	if err != nil {
		api.log.Error().Err(err).Msg("failed to create session token")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	middleware.SetSessionCookie(ctx, token, api.sessions.GetTTL(), api.cfg.SecureProtocol)
	ctx.JSON(http.StatusOK, gin.H{"name": name})
}

func (api *TodoAPI) clearSession(ctx *gin.Context) {
	middleware.ClearSessionCookie(ctx, api.cfg.SecureProtocol)
	ctx.JSON(http.StatusOK, gin.H{"message": "Session was cleared"})
}
