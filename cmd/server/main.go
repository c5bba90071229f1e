package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/clearview/jobtracker/internal/api"
	"github.com/clearview/jobtracker/internal/api/handler"
	"github.com/clearview/jobtracker/internal/core/service"
	mongodb "github.com/clearview/jobtracker/internal/infrastructure/db/mongo"
	redisdb "github.com/clearview/jobtracker/internal/infrastructure/db/redis"
	"github.com/clearview/jobtracker/internal/infrastructure/queue"
	"github.com/clearview/jobtracker/internal/infrastructure/security"
	"github.com/clearview/jobtracker/internal/pkg/config"
	"github.com/clearview/jobtracker/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title                       Job Tracker API
// @version                     1.0
// @description                 Multi-tenant job tracker for small service businesses.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "jobtracker",
	})

	if err := run(cfg, log); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Stores ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	// --- Security ---
	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)
	codec, err := security.NewJWTCodec(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return fmt.Errorf("token codec: %w", err)
	}

	// --- Audit trail ---
	audit := queue.NewAuditDispatcher(cfg.Audit.Workers, mongodb.NewAuditRepository(db), log)
	audit.Start(ctx)
	defer audit.Close()

	// --- Services ---
	accounts := mongodb.NewAccountRepository(db)
	customers := mongodb.NewCustomerRepository(db)
	jobs := mongodb.NewJobRepository(db)
	throttle := redisdb.NewLoginThrottle(rdb, cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginWindow)

	authService, err := service.NewAuthService(accounts, hasher, codec, throttle, audit, log)
	if err != nil {
		return err
	}

	e := api.NewRouter(api.Dependencies{
		AuthService:     authService,
		CustomerService: service.NewCustomerService(customers, log),
		JobService:      service.NewJobService(jobs, customers, log),
		Tokens:          codec,
		Directory:       accounts,
		HealthChecks: map[string]handler.DependencyCheck{
			"mongodb": mongodb.Ping(db),
			"redis":   redisdb.Ping(rdb),
		},
		Logger: log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
