// Command server starts the task-tracking HTTP API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campusworks/tasktrack/internal/api"
	"github.com/campusworks/tasktrack/internal/infrastructure/db/mongo"
	"github.com/campusworks/tasktrack/internal/infrastructure/db/redis"
	"github.com/campusworks/tasktrack/internal/infrastructure/sweep"
	"github.com/campusworks/tasktrack/internal/pkg/config"
	"github.com/campusworks/tasktrack/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongo.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	rdb, err := redis.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	studentRepo := mongo.NewStudentRepository(db)
	taskRepo := mongo.NewTaskRepository(db)
	if err := studentRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("student indexes failed")
	}
	if err := taskRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("task indexes failed")
	}

	sweeper := sweep.NewSweeper(taskRepo, cfg.SweepInterval, log)
	sweeper.Start(ctx)

	e := api.NewRouter(db, rdb, api.Options{
		JWTSecret:     cfg.JWTSecret,
		TokenTTL:      cfg.TokenTTL,
		AdminEmail:    cfg.AdminEmail,
		AdminPassword: cfg.AdminPassword,
	}, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
