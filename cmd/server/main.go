package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"retroboard/internal/config"
	"retroboard/internal/db"
	"retroboard/internal/logger"
	"retroboard/internal/router"
	"retroboard/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", true)
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Database
	gdb, err := db.Open(cfg.Database, log, cfg.Log.SlowThreshold)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close(gdb)

	engine := router.New(router.Deps{
		Store: store.New(gdb),
		Ping: func(ctx context.Context) error {
			return db.Ping(ctx, gdb)
		},
		Log:          log,
		CookieSecret: cfg.CookieSecret(),
		SecureCookie: !cfg.IsDevelopment(),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	if err := run(srv, log); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		db.Close(gdb)
		os.Exit(1)
	}
}

// run serves until SIGINT/SIGTERM, then drains in-flight requests.
func run(srv *http.Server, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("retroboard server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info().Msg("server exited")
	return nil
}
