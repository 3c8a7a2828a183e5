package middleware

import (
	"net/http"
	"time"
	"todoServer/internal"
	auth "todoServer/internal/server/auth/session_auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "requestID"
	SessionNameKey  = "sessionName"
)

type SessionSigner interface {
	NewSessionToken(name string) (string, error)
	ParseSessionToken(token string, opt auth.ParseOptions) (*auth.Claims, error)
	GetIssuer() string
	GetAudience() string
	GetTTL() time.Duration
}

// SessionMiddleware кладёт имя из сессионной куки в контекст.
// Без куки или с битой кукой запрос идёт дальше без сессии, битая кука стирается.
// secure - выдавать куку только для HTTPS.
func SessionMiddleware(signer SessionSigner, secure bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie(internal.SessionCookieName)
		if err != nil || token == "" {
			ctx.Next()
			return
		}

		claims, err := signer.ParseSessionToken(token, auth.ParseOptions{
			ExpectedIssuer:   signer.GetIssuer(),
			ExpectedAudience: signer.GetAudience(),
			AllowMethods:     []string{"HS256"},
			Leeway:           internal.MinOne,
		})
		if err != nil {
			zerolog.Ctx(ctx.Request.Context()).Debug().Err(err).Msg("dropping session cookie")
			ClearSessionCookie(ctx, secure)
			ctx.Next()
			return
		}

		ctx.Set(SessionNameKey, claims.Name)
		ctx.Next()
	}
}

func SetSessionCookie(ctx *gin.Context, token string, ttl time.Duration, secure bool) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(internal.SessionCookieName, token, int(ttl.Seconds()), "/", "", secure, true)
}

func ClearSessionCookie(ctx *gin.Context, secure bool) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(internal.SessionCookieName, "", -1, "/", "", secure, true)
}

// RequestID берёт X-Request-ID клиента или выдаёт новый.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Set(RequestIDKey, id)
		ctx.Header(RequestIDHeader, id)
		ctx.Next()
	}
}

// RequestLogger пишет по строке на запрос и прокидывает логгер с request id в context запроса.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		reqLog := logger.With().Str("request_id", ctx.GetString(RequestIDKey)).Logger()
		ctx.Request = ctx.Request.WithContext(reqLog.WithContext(ctx.Request.Context()))

		ctx.Next()

		event := reqLog.Info()
		if ctx.Writer.Status() >= http.StatusInternalServerError {
			event = reqLog.Error()
		}
		event.
			Str("method", ctx.Request.Method).
			Str("path", ctx.Request.URL.Path).
			Int("status", ctx.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
