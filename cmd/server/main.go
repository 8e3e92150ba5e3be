package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/paydash/payment-tracker/internal/api"
	"github.com/paydash/payment-tracker/internal/core/service"
	"github.com/paydash/payment-tracker/internal/infrastructure/config"
	"github.com/paydash/payment-tracker/internal/infrastructure/db/postgres"
	"github.com/paydash/payment-tracker/internal/infrastructure/db/redis"
	"github.com/paydash/payment-tracker/pkg/logger"
)

func main() {
	// Local development convenience; in deployment the environment is set
	// by the platform and no .env file exists.
	_ = godotenv.Load()

	cfg, err := config.Load(context.Background())
	if err != nil {
		logger.Init(logger.Options{})
		l := logger.Get()
		l.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	pool, err := postgres.Connect(ctx, postgres.Config{URL: cfg.Postgres.URL})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()

	if err := postgres.Migrate(cfg.Postgres.URL); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() { _ = rdb.Close() }()

	userRepo := postgres.NewUserRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	idemStore := redis.NewIdempotencyStore(rdb)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService, cfg.AdminPassword, log)
	paymentService := service.NewPaymentService(paymentRepo, idemStore, log)
	statsService := service.NewStatsService(paymentRepo, log)

	if err := authService.SeedAdmin(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin user")
	}

	e := api.NewRouter(api.Dependencies{
		Pool:     pool,
		Redis:    rdb,
		Tokens:   tokenService,
		Auth:     authService,
		Payments: paymentService,
		Stats:    statsService,
		Logger:   log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting payment tracker API")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server error")
		}
	}()

	// --- Graceful shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
