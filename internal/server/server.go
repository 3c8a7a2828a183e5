package server

import (
	"context"
	"fmt"
	"net/http"
	"todoServer/internal"
	"todoServer/internal/domain/todo/todomodels"
	"todoServer/internal/domain/user/usermodels"
	"todoServer/internal/localization"
	"todoServer/internal/server/middleware"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type TodoStorage interface {
	AddOrUpdateTodo(todo todomodels.Todo)
	ListTodos() []todomodels.Todo
	DeleteTodo(id int) string
	DeleteAllTodos() string
	UpdateTodo(todo todomodels.Todo) string
}

type UserStorage interface {
	AddNewRegisteredUser(user usermodels.RegisteredUser)
	ListRegisteredUsers() []usermodels.RegisteredUser
}

type Storage interface {
	TodoStorage
	UserStorage
}

type TodoAPI struct {
	srv       *http.Server
	cfg       internal.Config
	db        Storage
	sessions  middleware.SessionSigner
	localizer *localization.Localizer
	log       zerolog.Logger
}

func NewServer(
	cfg internal.Config,
	db Storage,
	sessions middleware.SessionSigner,
	localizer *localization.Localizer,
	log zerolog.Logger,
) *TodoAPI {
	HTTPSrv := http.Server{ //nolint:gocritic // Линтеры противоречат друг другу, оставил так
		Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		ReadHeaderTimeout: internal.SecFive,
	}

	api := TodoAPI{
		srv:       &HTTPSrv,
		cfg:       cfg,
		db:        db,
		sessions:  sessions,
		localizer: localizer,
		log:       log,
	}

	api.configRouter()

	return &api
}

func (api *TodoAPI) Run() error {
	if api.cfg.SecureProtocol {
		return api.srv.ListenAndServeTLS(api.cfg.CertCert, api.cfg.KeyCert)
	}
	return api.srv.ListenAndServe()
}

func (api *TodoAPI) ShutDown(ctx context.Context) error {
	return api.srv.Shutdown(ctx)
}

func (api *TodoAPI) Handler() http.Handler {
	return api.srv.Handler
}

func (api *TodoAPI) configRouter() {
	if !api.cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(api.log))

	secureConfig := secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}
	if api.cfg.SecureProtocol {
		secureConfig.STSSeconds = 31536000
		secureConfig.STSIncludeSubdomains = true
	}
	router.Use(secure.New(secureConfig))

	// сжатие ответов и распаковка тел запросов с Content-Encoding: gzip
	router.Use(gzip.Gzip(gzip.DefaultCompression,
		gzip.WithExcludedExtensions([]string{".png", ".jpg", ".gif", ".mp4"}),
		gzip.WithDecompressFn(gzip.DefaultDecompressHandle),
	))

	router.Use(middleware.SessionMiddleware(api.sessions, api.cfg.SecureProtocol))

	router.GET("/", api.welcome)
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	router.GET("/hello", api.hello)
	router.GET("/hello/:name", api.hello)
	router.GET("/json", api.jsonSample)
	router.POST("/json", api.jsonEcho)

	router.POST("/postTodo", api.postTodo)
	router.GET("/todos", api.getTodos)
	router.GET("/todo", api.getTodoByID)
	router.DELETE("/deleteTodo", api.deleteTodo)
	router.DELETE("/deleteAll", api.deleteAllTodos)
	router.POST("/updateTodo", api.updateTodo)

	router.GET("/register", api.register)

	users := router.Group("/users")
	{
		users.GET("", api.getAllUsers)
		users.GET("/:name", api.getUserByName)
	}

	session := router.Group("/session")
	{
		session.GET("", api.getSession)
		session.POST("", api.setSession)
		session.DELETE("", api.clearSession)
	}

	api.srv.Handler = router
}

// requestField ищет поле в заголовке, потом в query, потом в форме.
// Пустое значение считается отсутствующим.
func requestField(ctx *gin.Context, name string) string {
	if v := ctx.GetHeader(name); v != "" {
		return v
	}
	if v := ctx.Query(name); v != "" {
		return v
	}
	return ctx.PostForm(name)
}
