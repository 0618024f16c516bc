package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/forgebound/forge-api/internal/errors"
	"github.com/forgebound/forge-api/internal/handlers/httpapi"
	"github.com/forgebound/forge-api/internal/pkg/idgen"
	redisclient "github.com/forgebound/forge-api/internal/redis"
	saverepo "github.com/forgebound/forge-api/internal/repositories/save"
	userrepo "github.com/forgebound/forge-api/internal/repositories/user"
	"github.com/forgebound/forge-api/internal/services/auth"
	"github.com/forgebound/forge-api/internal/services/save"
)

type serverEnv struct {
	Addr      string        `env:"FORGE_API_ADDR" envDefault:":8080"`
	RedisAddr string        `env:"FORGE_API_REDIS_ADDR" envDefault:"localhost:6379"`
	JWTSecret string        `env:"FORGE_API_JWT_SECRET"`
	TokenTTL  time.Duration `env:"FORGE_API_TOKEN_TTL" envDefault:"168h"`
}

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP API server",
	Long:  `Start the forge-api HTTP server with the auth and save services.`,
	RunE:  runServer,
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	var cfg serverEnv
	if err := env.Parse(&cfg); err != nil {
		return errors.Wrap(err, "failed to parse environment")
	}
	if cfg.JWTSecret == "" {
		return errors.InvalidArgument("FORGE_API_JWT_SECRET is required")
	}

	redis, err := redisclient.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create redis client")
	}

	userRepo, err := userrepo.NewRedis(&userrepo.RedisConfig{Client: redis})
	if err != nil {
		return errors.Wrap(err, "failed to create user repository")
	}
	saveRepo, err := saverepo.NewRedis(&saverepo.RedisConfig{Client: redis})
	if err != nil {
		return errors.Wrap(err, "failed to create save repository")
	}

	tokens, err := auth.NewTokenManager(&auth.TokenManagerConfig{
		Secret: []byte(cfg.JWTSecret),
		TTL:    cfg.TokenTTL,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create token manager")
	}

	authService, err := auth.NewOrchestrator(&auth.Config{
		UserRepo: userRepo,
		Tokens:   tokens,
		IDGen:    idgen.NewPrefixed("user"),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create auth service")
	}

	saveService, err := save.NewOrchestrator(&save.Config{SaveRepo: saveRepo})
	if err != nil {
		return errors.Wrap(err, "failed to create save service")
	}

	handler, err := httpapi.NewHandler(&httpapi.HandlerConfig{
		AuthService: authService,
		SaveService: saveService,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create handler")
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("http server starting", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- errors.Wrap(err, "failed to serve")
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down http server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown timeout exceeded, forcing close")
			return srv.Close()
		}
		slog.Info("server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}
