// internal/api/matches/handlers.go
package matches

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/alphington/skittles/internal/api/apiutil"
	appdb "github.com/alphington/skittles/internal/db"
	dbgen "github.com/alphington/skittles/internal/db/generated"
	"github.com/alphington/skittles/internal/engine"
)

const matchQueryTimeout = 10 * time.Second

var database *appdb.DB

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(db *appdb.DB) {
	database = db
}

type scoreRequest struct {
	Leg  int `json:"leg"`
	Pins int `json:"pins"`
}

type matchPlayerRequest struct {
	PlayerID int64          `json:"playerId"`
	Position int            `json:"position"`
	Scores   []scoreRequest `json:"scores"`
}

type matchRequest struct {
	HomeTeamID int64                `json:"homeTeamId"`
	AwayTeamID int64                `json:"awayTeamId"`
	PlayedAt   time.Time            `json:"playedAt"`
	Players    []matchPlayerRequest `json:"players"`
}

type matchView struct {
	dbgen.ListMatchesRow
	Result     *engine.MatchResult `json:"result,omitempty"`
	Incomplete bool                `json:"incomplete,omitempty"`
}

// GET /api/v1/matches
func HandleMatchesList(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if database == nil {
		logger.Error().Msg("Database not initialized")
		apiutil.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), matchQueryTimeout)
	defer cancel()

	matchRows, err := database.Queries.ListMatches(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list matches")
		apiutil.WriteError(w, http.StatusInternalServerError, "Failed to load matches")
		return
	}

	scoreRows, err := database.Queries.ListScoreRows(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list score rows")
		apiutil.WriteError(w, http.StatusInternalServerError, "Failed to load matches")
		return
	}

	records, err := engine.BuildMatches(appdb.ScoreRows(scoreRows))
	if err != nil {
		logger.Error().Err(err).Msg("Stored score data is invalid")
		apiutil.WriteError(w, http.StatusInternalServerError, "Score data is invalid")
		return
	}

	results := make(map[int64]engine.MatchResult, len(records))
	for _, record := range records {
		result, err := engine.ScoreMatch(record)
		if err != nil {
			if errors.Is(err, engine.ErrIncompleteMatch) || errors.Is(err, engine.ErrEmptyInput) {
				continue
			}
			logger.Error().Err(err).Int64("match_id", record.MatchID).Msg("Failed to score match")
			apiutil.WriteError(w, http.StatusInternalServerError, "Score data is invalid")
			return
		}
		results[record.MatchID] = result
	}

	views := make([]matchView, 0, len(matchRows))
	for _, row := range matchRows {
		view := matchView{ListMatchesRow: row}
		if result, ok := results[row.ID]; ok {
			view.Result = &result
		} else {
			// No scores at all, or entry not yet finished.
			view.Incomplete = true
		}
		views = append(views, view)
	}

	apiutil.WriteJSON(w, http.StatusOK, map[string]any{"matches": views})
}

// POST /api/v1/matches
func HandleMatchCreate(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if database == nil {
		logger.Error().Msg("Database not initialized")
		apiutil.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	var req matchRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validateMatchRequest(req); err != nil {
		apiutil.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), matchQueryTimeout)
	defer cancel()

	var created dbgen.Match
	err := database.RunInTx(ctx, func(tx *appdb.DB) error {
		match, err := tx.Queries.CreateMatch(ctx, dbgen.CreateMatchParams{
			HomeTeamID: req.HomeTeamID,
			AwayTeamID: req.AwayTeamID,
			PlayedAt:   req.PlayedAt,
		})
		if err != nil {
			return fmt.Errorf("create match: %w", err)
		}

		for _, entry := range req.Players {
			player, err := tx.Queries.GetPlayer(ctx, entry.PlayerID)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return apiutil.HandlerError{
						Status:  http.StatusBadRequest,
						Message: fmt.Sprintf("player %d not found", entry.PlayerID),
					}
				}
				return fmt.Errorf("load player %d: %w", entry.PlayerID, err)
			}
			// The side a player appears for is always their own team.
			if player.TeamID != req.HomeTeamID && player.TeamID != req.AwayTeamID {
				return apiutil.HandlerError{
					Status:  http.StatusBadRequest,
					Message: fmt.Sprintf("player %d does not play for either team", entry.PlayerID),
				}
			}

			appearance, err := tx.Queries.CreateMatchPlayer(ctx, dbgen.CreateMatchPlayerParams{
				MatchID:  match.ID,
				PlayerID: player.ID,
				TeamID:   player.TeamID,
				Position: int64(entry.Position),
			})
			if err != nil {
				return fmt.Errorf("create appearance for player %d: %w", player.ID, err)
			}

			for _, score := range entry.Scores {
				if _, err := tx.Queries.CreateScore(ctx, dbgen.CreateScoreParams{
					MatchPlayerID: appearance.ID,
					Leg:           int64(score.Leg),
					Pins:          int64(score.Pins),
					Spare:         score.Pins > engine.NinePins,
				}); err != nil {
					return fmt.Errorf("create score leg %d for player %d: %w", score.Leg, player.ID, err)
				}
			}
		}

		created = match
		return nil
	})
	if err != nil {
		var handlerErr apiutil.HandlerError
		if errors.As(err, &handlerErr) {
			apiutil.WriteError(w, handlerErr.Status, handlerErr.Message)
			return
		}
		logger.Error().Err(err).Msg("Failed to record match")
		apiutil.WriteError(w, http.StatusInternalServerError, "Failed to record match")
		return
	}

	logger.Info().
		Int64("match_id", created.ID).
		Int64("home_team_id", created.HomeTeamID).
		Int64("away_team_id", created.AwayTeamID).
		Msg("Match recorded")
	apiutil.WriteJSON(w, http.StatusCreated, created)
}

func validateMatchRequest(req matchRequest) error {
	if req.HomeTeamID < 1 || req.AwayTeamID < 1 {
		return apiutil.FieldError{Field: "homeTeamId/awayTeamId", Reason: "are required"}
	}
	if req.HomeTeamID == req.AwayTeamID {
		return apiutil.FieldError{Field: "awayTeamId", Reason: "must differ from homeTeamId"}
	}
	if req.PlayedAt.IsZero() {
		return apiutil.FieldError{Field: "playedAt", Reason: "is required"}
	}

	seenPlayers := make(map[int64]bool, len(req.Players))
	for _, entry := range req.Players {
		if entry.Position < 1 || entry.Position > engine.MaxPosition {
			return apiutil.FieldError{
				Field:  "position",
				Reason: fmt.Sprintf("must be between 1 and %d", engine.MaxPosition),
			}
		}
		if seenPlayers[entry.PlayerID] {
			return apiutil.FieldError{
				Field:  "playerId",
				Reason: fmt.Sprintf("%d appears twice", entry.PlayerID),
			}
		}
		seenPlayers[entry.PlayerID] = true

		legs := make(map[int]bool, len(entry.Scores))
		for _, score := range entry.Scores {
			if score.Leg < 1 || score.Leg > engine.LegsPerMatch {
				return apiutil.FieldError{
					Field:  "leg",
					Reason: fmt.Sprintf("must be between 1 and %d", engine.LegsPerMatch),
				}
			}
			if legs[score.Leg] {
				return apiutil.FieldError{
					Field:  "leg",
					Reason: fmt.Sprintf("%d appears twice for player %d", score.Leg, entry.PlayerID),
				}
			}
			if score.Pins < 0 {
				return apiutil.FieldError{Field: "pins", Reason: "must not be negative"}
			}
			legs[score.Leg] = true
		}
	}
	return nil
}
