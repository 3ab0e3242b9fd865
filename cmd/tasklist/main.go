package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gosuda/tasklist/internal/config"
	"github.com/gosuda/tasklist/internal/console"
	"github.com/gosuda/tasklist/internal/server"
	"github.com/gosuda/tasklist/internal/tasklist"
)

func main() {
	initLogging()

	if len(os.Args) > 1 && os.Args[1] == "serve" {
		if err := runServe(); err != nil {
			log.Fatal().Err(err).Msg("startup failed")
		}
		return
	}

	if err := runConsole(); err != nil {
		// Hard dispatcher errors land here; the console contract is that
		// the process stops on input it cannot interpret.
		log.Fatal().Err(err).Msg("console terminated")
	}
}

func initLogging() {
	level, parseErr := zerolog.ParseLevel(os.Getenv("TASKLIST_LOG_LEVEL"))
	if parseErr != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if os.Getenv("TASKLIST_LOG_FORMAT") == "text" {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
}

func runConsole() error {
	store := tasklist.New()
	return console.New(store, os.Stdin, os.Stdout).Run()
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Single store instance shared by all requests behind a mutex wrapper.
	svc := tasklist.NewLocked(tasklist.New())

	// Graceful shutdown on SIGINT / SIGTERM.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	srv := server.New(ctx, cfg, svc)

	go func() {
		log.Info().
			Str("addr", cfg.Server.Addr).
			Str("instance", uuid.NewString()).
			Msg("starting server")
		if startErr := srv.Start(ctx); startErr != nil {
			log.Error().Err(startErr).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
		return shutdownErr
	}

	log.Info().Msg("stopped")
	return nil
}
