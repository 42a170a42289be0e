// internal/api/league/handlers.go
package league

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/alphington/skittles/internal/api/apiutil"
	appdb "github.com/alphington/skittles/internal/db"
	"github.com/alphington/skittles/internal/engine"
)

const leagueQueryTimeout = 5 * time.Second

var database *appdb.DB

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(db *appdb.DB) {
	database = db
}

// GET /api/v1/league/table
func HandleLeagueTable(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if database == nil {
		logger.Error().Msg("Database not initialized")
		apiutil.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), leagueQueryTimeout)
	defer cancel()

	teams, err := database.Queries.ListTeams(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list teams")
		apiutil.WriteError(w, http.StatusInternalServerError, "Failed to load league table")
		return
	}

	scoreRows, err := database.Queries.ListScoreRows(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list score rows")
		apiutil.WriteError(w, http.StatusInternalServerError, "Failed to load league table")
		return
	}

	matches, err := engine.BuildMatches(appdb.ScoreRows(scoreRows))
	if err != nil {
		// Malformed stored data taints every downstream number.
		logger.Error().Err(err).Msg("Stored score data is invalid")
		apiutil.WriteError(w, http.StatusInternalServerError, "Score data is invalid")
		return
	}

	results := make([]engine.MatchResult, 0, len(matches))
	for _, match := range matches {
		result, err := engine.ScoreMatch(match)
		if err != nil {
			if errors.Is(err, engine.ErrIncompleteMatch) || errors.Is(err, engine.ErrEmptyInput) {
				// In-progress or partially entered match. Missing legs are
				// never scored as zero.
				logger.Warn().Err(err).Int64("match_id", match.MatchID).Msg("Skipping unscoreable match")
				continue
			}
			logger.Error().Err(err).Int64("match_id", match.MatchID).Msg("Failed to score match")
			apiutil.WriteError(w, http.StatusInternalServerError, "Score data is invalid")
			return
		}
		results = append(results, result)
	}

	standings := engine.BuildStandings(appdb.TeamSeeds(teams), results)

	apiutil.WriteJSON(w, http.StatusOK, map[string]any{
		"standings": standings,
	})
}
