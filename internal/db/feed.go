// internal/db/feed.go
package db

import (
	dbgen "github.com/alphington/skittles/internal/db/generated"
	"github.com/alphington/skittles/internal/engine"
)

// ScoreRows converts stored score rows into the engine's input shape. The
// engine stays free of database types; this is the only seam between the
// two.
func ScoreRows(rows []dbgen.ListScoreRowsRow) []engine.ScoreRow {
	out := make([]engine.ScoreRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, engine.ScoreRow{
			MatchID:      row.MatchID,
			PlayedAt:     row.PlayedAt,
			HomeTeamID:   row.HomeTeamID,
			HomeTeam:     row.HomeTeam,
			AwayTeamID:   row.AwayTeamID,
			AwayTeam:     row.AwayTeam,
			AppearanceID: row.MatchPlayerID,
			PlayerID:     row.PlayerID,
			Player:       row.Player,
			Gender:       engine.Gender(row.Gender),
			TeamID:       row.TeamID,
			Team:         row.Team,
			Position:     int(row.Position),
			Leg:          int(row.Leg),
			Pins:         int(row.Pins),
		})
	}
	return out
}

// TeamSeeds converts stored teams into the standings universe, preserving
// the query's name ordering.
func TeamSeeds(teams []dbgen.Team) []engine.TeamSeed {
	seeds := make([]engine.TeamSeed, 0, len(teams))
	for _, team := range teams {
		seeds = append(seeds, engine.TeamSeed{TeamID: team.ID, Name: team.Name})
	}
	return seeds
}
