package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/alphington/skittles/internal/db"
	"github.com/alphington/skittles/internal/engine"
)

const auditTimeout = 2 * time.Minute

// RegisterAuditJob schedules a recurring pass over every stored match,
// re-validating the score data through the engine and logging anything that
// cannot be scored. It never mutates data; incomplete matches are a normal
// state while results are still being entered, so they log at warn rather
// than error.
func RegisterAuditJob(database *db.DB, cronExpr string) error {
	if database == nil {
		return fmt.Errorf("audit job requires database")
	}

	jobName := "score_audit"
	jobLogger := log.With().
		Str("component", "score_audit_job").
		Str("job_name", jobName).
		Str("cron", cronExpr).
		Logger()

	_, err := AddJob(jobName, cronExpr, func() {
		ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
		defer cancel()

		rows, err := database.Queries.ListScoreRows(ctx)
		if err != nil {
			jobLogger.Error().Err(err).Msg("Failed to load score rows for audit")
			return
		}

		matches, err := engine.BuildMatches(db.ScoreRows(rows))
		if err != nil {
			jobLogger.Error().Err(err).Msg("Stored score data failed validation")
			return
		}

		incomplete := 0
		for _, match := range matches {
			if _, err := engine.ScoreMatch(match); err != nil {
				switch {
				case errors.Is(err, engine.ErrIncompleteMatch), errors.Is(err, engine.ErrEmptyInput):
					incomplete++
					jobLogger.Warn().Err(err).Int64("match_id", match.MatchID).Msg("Match cannot be scored yet")
				default:
					jobLogger.Error().Err(err).Int64("match_id", match.MatchID).Msg("Match failed score audit")
				}
			}
		}

		jobLogger.Info().
			Int("matches", len(matches)).
			Int("incomplete", incomplete).
			Msg("Score audit completed")
	})
	return err
}
