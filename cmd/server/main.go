package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/InnovaCleean/innovacleannew-sub000/internal/config"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/infra"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/repository"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/router"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/service"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	if os.Getenv("APP_ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	// Worker handlers are wired here (composition root) so that the pool
	// has full access to all infrastructure dependencies.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mailer := infra.NewMailer(cfg)
	smtpCB := infra.NewCircuitBreaker(infra.DefaultCBConfig())
	dispatcher := worker.NewDispatcher(rdb)

	// The corte worker needs the same cash-flow report the API exposes.
	reporteSvc := service.NewReporteService(
		repository.NewVentaRepository(db),
		repository.NewGastoRepository(db),
		repository.NewCompraRepository(db),
	)

	pool := worker.NewPool(rdb, map[string]worker.Handler{
		"ticket": worker.NewTicketWorker(mailer, smtpCB),
		"corte":  worker.NewCorteWorker(reporteSvc, mailer, smtpCB, cfg.CorteEmail),
	})
	pool.Start(ctx, cfg.WorkerPoolSize)

	corteCron, err := worker.StartCorteCron(dispatcher, cfg.CorteCron)
	if err != nil {
		log.Fatal().Err(err).Str("spec", cfg.CorteCron).Msg("invalid corte cron spec")
	}
	defer corteCron.Stop()

	r := router.New(cfg, db, rdb, dispatcher)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("POS backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
