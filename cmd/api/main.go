package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotel/internal/config"
	"hotel/internal/database"
	"hotel/internal/logging"
	"hotel/internal/modules/auth"
	"hotel/internal/modules/feed"
	jwtsvc "hotel/internal/pkg/jwt"
	"hotel/internal/server"
	"hotel/internal/throttle"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("load config")
	}
	logger := logging.New(cfg)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("api stopped with error")
	}
}

func run(cfg *config.Config, logger zerolog.Logger) error {
	db, err := database.Connect(cfg.DatabaseURL, logger)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	if err := database.Migrate(db); err != nil {
		return err
	}

	limiter, redisClient := initLimiter(cfg, logger)
	if redisClient != nil {
		defer redisClient.Close()
	}

	hub := feed.NewHub(logger.With().Str("component", "feed").Logger())
	defer hub.Close()

	router := server.NewRouter(server.Deps{
		DB:             db,
		JWT:            jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL),
		Limiter:        limiter,
		Hub:            hub,
		Log:            logger,
		CORSOrigins:    cfg.CORSOrigins,
		MetricsEnabled: cfg.MetricsEnabled,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("http server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info().Msg("http server stopped")
	return nil
}

// initLimiter prefers Redis so attempts are counted across replicas and
// falls back to an in-process limiter.
func initLimiter(cfg *config.Config, logger zerolog.Logger) (auth.Limiter, *redis.Client) {
	if cfg.RedisURL != "" {
		client, err := throttle.NewRedisClient(cfg.RedisURL)
		if err == nil {
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err = client.Ping(pingCtx).Err()
			cancel()
			if err == nil {
				logger.Info().Msg("redis connected, login throttling shared")
				return throttle.NewRedisLimiter(client, "hotel:login", cfg.LoginMaxAttempts, cfg.LoginWindow), client
			}
			_ = client.Close()
		}
		logger.Warn().Err(err).Msg("redis connection failed, using in-memory login throttling")
	}
	return throttle.NewMemoryLimiter(cfg.LoginMaxAttempts, cfg.LoginWindow), nil
}
