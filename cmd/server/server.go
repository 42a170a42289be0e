// cmd/server/server.go
package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/alphington/skittles/internal/api"
	"github.com/alphington/skittles/internal/api/league"
	"github.com/alphington/skittles/internal/api/matches"
	"github.com/alphington/skittles/internal/api/rankings"
	"github.com/alphington/skittles/internal/api/teams"
	"github.com/alphington/skittles/internal/config"
	"github.com/alphington/skittles/internal/db"
	"github.com/alphington/skittles/internal/metrics"
)

func newServer(cfg *config.Config, database *db.DB) *http.Server {
	router := http.NewServeMux()

	// Setup middleware chain
	middleware := []api.Middleware{
		api.WithLogging,
		api.WithRecovery,
		api.WithRequestID,
		api.WithContentType,
	}
	if cfg.Features.EnableMetrics {
		middleware = append(middleware, metrics.WithHTTP)
	}
	handler := api.ChainMiddleware(router, middleware...)

	// Register routes
	registerRoutes(router, cfg, database)

	return &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.App.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func registerRoutes(mux *http.ServeMux, cfg *config.Config, database *db.DB) {
	league.InitHandlers(database)
	rankings.InitHandlers(database, cfg.Rankings.TopN)
	teams.InitHandlers(database)
	matches.InitHandlers(database)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// League table
	mux.HandleFunc("GET /api/v1/league/table", league.HandleLeagueTable)

	// Rankings
	mux.HandleFunc("GET /api/v1/rankings/averages", rankings.HandleAverages)
	mux.HandleFunc("GET /api/v1/rankings/nines", rankings.HandleNines)

	// Teams and players
	mux.HandleFunc("GET /api/v1/teams", teams.HandleTeamsList)
	mux.HandleFunc("POST /api/v1/teams", teams.HandleTeamCreate)
	mux.HandleFunc("GET /api/v1/teams/{id}", teams.HandleTeamDetail)
	mux.HandleFunc("POST /api/v1/teams/{id}/players", teams.HandlePlayerCreate)

	// Matches
	mux.HandleFunc("GET /api/v1/matches", matches.HandleMatchesList)
	mux.HandleFunc("POST /api/v1/matches", matches.HandleMatchCreate)

	if cfg.Features.EnableMetrics {
		mux.Handle("GET /metrics", metrics.Handler())
	}
}
