// internal/api/rankings/handlers.go
package rankings

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/alphington/skittles/internal/api/apiutil"
	appdb "github.com/alphington/skittles/internal/db"
	"github.com/alphington/skittles/internal/engine"
)

const rankingQueryTimeout = 5 * time.Second

var (
	database *appdb.DB
	topN     int
)

// InitHandlers must be called during server startup before handling
// requests. limit is the default top-N cutoff for ranking tables.
func InitHandlers(db *appdb.DB, limit int) {
	database = db
	topN = limit
	if topN <= 0 {
		topN = engine.DefaultRankingLimit
	}
}

// highestLegFact mirrors the two rendering modes of the highest single-leg
// card: a lone leader keeps full context, joint leaders collapse to a
// sorted name list.
type highestLegFact struct {
	Score   int                 `json:"score"`
	Holders []engine.MatchTotal `json:"holders"`
	Joint   string              `json:"joint,omitempty"`
}

// GET /api/v1/rankings/averages?gender=men|ladies&limit=N
func HandleAverages(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	gender, ok := genderFromQuery(w, r)
	if !ok {
		return
	}
	limit, ok := limitFromQuery(w, r)
	if !ok {
		return
	}

	scores, ok := fetchPlayerScores(w, r)
	if !ok {
		return
	}

	averages := engine.Averages(scores, gender, limit)
	totals := engine.MatchTotals(scores, gender)

	payload := map[string]any{
		"averages": averages,
	}
	if best, found := engine.HighestTotal(totals); found {
		payload["highestTotal"] = best
	}
	if leaders := engine.HighestLeg(totals); len(leaders) > 0 {
		fact := highestLegFact{
			Score:   leaders[0].HighestLeg,
			Holders: leaders,
		}
		if len(leaders) > 1 {
			fact.Joint = engine.JointHolders(leaders)
		}
		payload["highestLeg"] = fact
	}

	logger.Debug().Int("players", len(averages)).Str("gender", string(gender)).Msg("Averages computed")
	apiutil.WriteJSON(w, http.StatusOK, payload)
}

// GET /api/v1/rankings/nines?limit=N
func HandleNines(w http.ResponseWriter, r *http.Request) {
	limit, ok := limitFromQuery(w, r)
	if !ok {
		return
	}

	scores, ok := fetchPlayerScores(w, r)
	if !ok {
		return
	}

	apiutil.WriteJSON(w, http.StatusOK, map[string]any{
		"nines": engine.NinesLeague(scores, limit),
	})
}

// fetchPlayerScores loads every stored score in ranking shape. A false
// return means the response has already been written.
func fetchPlayerScores(w http.ResponseWriter, r *http.Request) ([]engine.PlayerScore, bool) {
	logger := log.Ctx(r.Context())

	if database == nil {
		logger.Error().Msg("Database not initialized")
		apiutil.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
		return nil, false
	}

	ctx, cancel := context.WithTimeout(r.Context(), rankingQueryTimeout)
	defer cancel()

	rows, err := database.Queries.ListScoreRows(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list score rows")
		apiutil.WriteError(w, http.StatusInternalServerError, "Failed to load rankings")
		return nil, false
	}

	scores, err := engine.BuildPlayerScores(appdb.ScoreRows(rows))
	if err != nil {
		logger.Error().Err(err).Msg("Stored score data is invalid")
		apiutil.WriteError(w, http.StatusInternalServerError, "Score data is invalid")
		return nil, false
	}
	return scores, true
}

func genderFromQuery(w http.ResponseWriter, r *http.Request) (engine.Gender, bool) {
	switch value := r.URL.Query().Get("gender"); value {
	case "":
		return "", true
	case string(engine.GenderMen):
		return engine.GenderMen, true
	case string(engine.GenderLadies):
		return engine.GenderLadies, true
	default:
		apiutil.WriteError(w, http.StatusBadRequest, "gender must be 'men' or 'ladies'")
		return "", false
	}
}

func limitFromQuery(w http.ResponseWriter, r *http.Request) (int, bool) {
	value := r.URL.Query().Get("limit")
	if value == "" {
		return topN, true
	}
	limit, err := strconv.Atoi(value)
	if err != nil || limit < 1 {
		apiutil.WriteError(w, http.StatusBadRequest, "limit must be a positive integer")
		return 0, false
	}
	return limit, true
}
