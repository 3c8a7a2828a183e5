package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const appVersion = "1.0.0"

func (api *TodoAPI) langPrefs(ctx *gin.Context) []string {
	return []string{ctx.Query("lang"), ctx.GetHeader("Accept-Language")}
}

func (api *TodoAPI) welcome(ctx *gin.Context) {
	ctx.String(http.StatusOK, api.localizer.Welcome(api.langPrefs(ctx)...))
}

func (api *TodoAPI) hello(ctx *gin.Context) {
	ctx.String(http.StatusOK, api.localizer.Hello(ctx.Param("name"), api.langPrefs(ctx)...))
}

func (api *TodoAPI) jsonSample(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"name":    "todoServer",
		"version": appVersion,
		"routes":  []string{"/postTodo", "/todos", "/todo", "/deleteTodo", "/deleteAll", "/updateTodo", "/register"},
	})
}

// jsonEcho возвращает присланный JSON-объект как есть.
func (api *TodoAPI) jsonEcho(ctx *gin.Context) {
	var body map[string]any
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, body)
}
