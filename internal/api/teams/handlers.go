// internal/api/teams/handlers.go
package teams

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/alphington/skittles/internal/api/apiutil"
	appdb "github.com/alphington/skittles/internal/db"
	dbgen "github.com/alphington/skittles/internal/db/generated"
	"github.com/alphington/skittles/internal/engine"
)

const (
	teamQueryTimeout = 5 * time.Second
	teamIDPathKey    = "id"
)

var database *appdb.DB

type teamRequest struct {
	Name string `json:"name"`
}

type playerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    string `json:"gender"`
}

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(db *appdb.DB) {
	database = db
}

// GET /api/v1/teams
func HandleTeamsList(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	q, ok := loadQueries(w, logger)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), teamQueryTimeout)
	defer cancel()

	teams, err := q.ListTeamsWithCounts(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list teams")
		apiutil.WriteError(w, http.StatusInternalServerError, "Failed to load teams")
		return
	}

	apiutil.WriteJSON(w, http.StatusOK, map[string]any{"teams": teams})
}

// POST /api/v1/teams
func HandleTeamCreate(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	q, ok := loadQueries(w, logger)
	if !ok {
		return
	}

	var req teamRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		apiutil.WriteError(w, http.StatusBadRequest, "team name is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), teamQueryTimeout)
	defer cancel()

	team, err := q.CreateTeam(ctx, name)
	if err != nil {
		if isUniqueViolation(err) {
			apiutil.WriteError(w, http.StatusConflict, "a team with that name already exists")
			return
		}
		logger.Error().Err(err).Str("name", name).Msg("Failed to create team")
		apiutil.WriteError(w, http.StatusInternalServerError, "Failed to create team")
		return
	}

	logger.Info().Int64("team_id", team.ID).Str("name", team.Name).Msg("Team created")
	apiutil.WriteJSON(w, http.StatusCreated, team)
}

// GET /api/v1/teams/{id}
func HandleTeamDetail(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	q, ok := loadQueries(w, logger)
	if !ok {
		return
	}

	teamID, ok := teamIDFromPath(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), teamQueryTimeout)
	defer cancel()

	team, err := q.GetTeam(ctx, teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			apiutil.WriteError(w, http.StatusNotFound, "team not found")
			return
		}
		logger.Error().Err(err).Int64("team_id", teamID).Msg("Failed to load team")
		apiutil.WriteError(w, http.StatusInternalServerError, "Failed to load team")
		return
	}

	players, err := q.ListTeamPlayers(ctx, teamID)
	if err != nil {
		logger.Error().Err(err).Int64("team_id", teamID).Msg("Failed to list players")
		apiutil.WriteError(w, http.StatusInternalServerError, "Failed to load team")
		return
	}

	apiutil.WriteJSON(w, http.StatusOK, map[string]any{
		"team":    team,
		"players": players,
	})
}

// POST /api/v1/teams/{id}/players
func HandlePlayerCreate(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	q, ok := loadQueries(w, logger)
	if !ok {
		return
	}

	teamID, ok := teamIDFromPath(w, r)
	if !ok {
		return
	}

	var req playerRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	if firstName == "" || lastName == "" {
		apiutil.WriteError(w, http.StatusBadRequest, "first and last name are required")
		return
	}
	if req.Gender != string(engine.GenderMen) && req.Gender != string(engine.GenderLadies) {
		apiutil.WriteError(w, http.StatusBadRequest, "gender must be 'men' or 'ladies'")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), teamQueryTimeout)
	defer cancel()

	if _, err := q.GetTeam(ctx, teamID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			apiutil.WriteError(w, http.StatusNotFound, "team not found")
			return
		}
		logger.Error().Err(err).Int64("team_id", teamID).Msg("Failed to load team")
		apiutil.WriteError(w, http.StatusInternalServerError, "Failed to create player")
		return
	}

	player, err := q.CreatePlayer(ctx, dbgen.CreatePlayerParams{
		TeamID:    teamID,
		FirstName: firstName,
		LastName:  lastName,
		Gender:    req.Gender,
	})
	if err != nil {
		logger.Error().Err(err).Int64("team_id", teamID).Msg("Failed to create player")
		apiutil.WriteError(w, http.StatusInternalServerError, "Failed to create player")
		return
	}

	logger.Info().Int64("player_id", player.ID).Int64("team_id", teamID).Msg("Player created")
	apiutil.WriteJSON(w, http.StatusCreated, player)
}

func loadQueries(w http.ResponseWriter, logger *zerolog.Logger) (*dbgen.Queries, bool) {
	if database == nil {
		logger.Error().Msg("Database not initialized")
		apiutil.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
		return nil, false
	}
	return database.Queries, true
}

func teamIDFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := strings.TrimSpace(r.PathValue(teamIDPathKey))
	teamID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || teamID < 1 {
		apiutil.WriteError(w, http.StatusBadRequest, "invalid team id")
		return 0, false
	}
	return teamID, true
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
