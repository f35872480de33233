package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/luminastudio/backoffice/internal/api"
	"github.com/luminastudio/backoffice/internal/infrastructure/config"
	mongodb "github.com/luminastudio/backoffice/internal/infrastructure/db/mongo"
	redisdb "github.com/luminastudio/backoffice/internal/infrastructure/db/redis"
	"github.com/luminastudio/backoffice/internal/infrastructure/mail"
	"github.com/luminastudio/backoffice/internal/infrastructure/queue"
	"github.com/luminastudio/backoffice/pkg/logger"
)

// @title        Back-office API
// @version      1.0
// @description  Authentication, staff management, and portal endpoints for the
// @description  marketing site and internal back-office.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet; a missing secret must still kill the process.
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongodb index setup failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	mailer := mail.NewSMTPMailer(cfg.SMTP)
	welcomeQueue := queue.NewMailDispatcher(0, mailer, log)
	welcomeQueue.Start(ctx)

	e := api.NewRouter(db, rdb, cfg, log, mailer, welcomeQueue)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
