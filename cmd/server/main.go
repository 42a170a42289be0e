// cmd/server/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/alphington/skittles/internal/config"
	"github.com/alphington/skittles/internal/db"
	"github.com/alphington/skittles/internal/scheduler"
)

const shutdownTimeout = 30 * time.Second

func loadConfig() (*config.Config, error) {
	configPath := flag.String("config", "", "path to config.yaml")
	flag.Parse()

	if *configPath == "" {
		if fromEnv := os.Getenv("CONFIG_PATH"); fromEnv != "" {
			return config.Load(fromEnv)
		}
		return config.Default(), nil
	}
	return config.Load(*configPath)
}

func setupLogger(environment string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	setupLogger(cfg.App.Environment)

	database, err := db.NewFromConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer database.Close()

	if cfg.Audit.Schedule != "" {
		if err := scheduler.Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize scheduler")
		}
		if err := scheduler.RegisterAuditJob(database, cfg.Audit.Schedule); err != nil {
			log.Fatal().Err(err).Msg("Failed to register score audit job")
		}
		if err := scheduler.Start(); err != nil {
			log.Fatal().Err(err).Msg("Failed to start scheduler")
		}
		defer func() {
			if err := scheduler.Stop(); err != nil {
				log.Error().Err(err).Msg("Failed to stop scheduler")
			}
		}()
	}

	// Create server instance
	server := newServer(cfg, database)

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// Run server
	g.Go(func() error {
		log.Info().Int("port", cfg.App.Port).Str("app", cfg.App.Name).Msg("Starting server")
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Wait for interrupt signal
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		log.Info().Msg("Shutting down server")
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Server terminated with error")
		os.Exit(1)
	}
}
