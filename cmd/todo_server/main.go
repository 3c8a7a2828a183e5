package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"todoServer/internal"
	"todoServer/internal/localization"
	"todoServer/internal/repository/inmemory"
	"todoServer/internal/server"
	auth "todoServer/internal/server/auth/session_auth"
	"todoServer/pkg/logger"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT)
		defer signal.Stop(c)
		<-c
		cancel()
	}()

	cfg := internal.ReadConfig()

	log := logger.Init(cfg.Debug)
	log.Debug().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("locale", cfg.DefaultLocale).
		Bool("https", cfg.SecureProtocol).
		Msg("config loaded")

	if cfg.DefaultSessionSecret() {
		log.Warn().Msg("Session secret is not set, using the built-in default. Set SESSION_SECRET or -session-secret")
	}

	log.Info().Msg("Server starting...")

	// хранилища живут столько же, сколько процесс
	storage := inmemory.NewInMemoryStorage()

	localizer, err := localization.New(cfg.DefaultLocale)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build localization catalog")
	}

	signer := auth.HS256Signer{
		Secret:   []byte(cfg.SessionSecret),
		Issuer:   internal.SessionIssuer,
		Audience: internal.SessionAudience,
		TTL:      cfg.SessionTTL,
	}

	srv := server.NewServer(cfg, storage, signer, localizer, log)

	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if runErr := srv.Run(); runErr != nil {
			if errors.Is(runErr, http.ErrServerClosed) {
				return
			}
			log.Fatal().Err(runErr).Msg("failed to start server")
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), internal.SecTen)
		defer shutdownCancel()
		if shutdownErr := srv.ShutDown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown server")
		}
		log.Info().Msg("Server stopped")
	}()

	wg.Wait()
}
