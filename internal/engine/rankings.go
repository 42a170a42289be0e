package engine

import (
	"fmt"
	"sort"
)

// DefaultRankingLimit is the top-N cutoff applied when a caller does not
// supply one.
const DefaultRankingLimit = 20

// AverageRow is one player's line in an averages ranking.
type AverageRow struct {
	PlayerID int64   `json:"playerId"`
	Player   string  `json:"player"`
	Team     string  `json:"team"`
	Played   int     `json:"played"`
	Average  float64 `json:"average"`
}

// DisplayAverage renders the average to two decimal places. Sorting always
// uses the unrounded value.
func (r AverageRow) DisplayAverage() string {
	return fmt.Sprintf("%.2f", r.Average)
}

// NinesRow is one player's line in the nines league.
type NinesRow struct {
	PlayerID int64  `json:"playerId"`
	Player   string `json:"player"`
	Team     string `json:"team"`
	Played   int    `json:"played"`
	Nines    int    `json:"nines"`
	Spares   int    `json:"spares"`
	Total    int    `json:"total"`
}

type playerTally struct {
	playerID int64
	player   string
	team     string
	pins     int
	nines    int
	spares   int
	matches  map[int64]struct{}
}

// tallyScores groups scores per player, preserving first-seen player order
// so later sorts stay deterministic for fully tied players.
func tallyScores(scores []PlayerScore, gender Gender) []*playerTally {
	var order []*playerTally
	byPlayer := make(map[int64]*playerTally)

	for _, score := range scores {
		if gender != "" && score.Gender != gender {
			continue
		}
		tally, ok := byPlayer[score.PlayerID]
		if !ok {
			tally = &playerTally{
				playerID: score.PlayerID,
				player:   score.Player,
				team:     score.Team,
				matches:  make(map[int64]struct{}),
			}
			byPlayer[score.PlayerID] = tally
			order = append(order, tally)
		}
		tally.pins += score.Pins
		tally.matches[score.MatchID] = struct{}{}
		if score.Spare() {
			tally.spares++
		} else if score.Nine() {
			tally.nines++
		}
	}
	return order
}

// Averages ranks players by mean pins per match, optionally filtered to one
// gender. Played counts distinct matches, not legs; players with no
// qualifying scores are omitted rather than shown with a zero average.
// Rows sort by average descending, then played descending, and are truncated
// to limit after the sort (limit <= 0 applies DefaultRankingLimit).
func Averages(scores []PlayerScore, gender Gender, limit int) []AverageRow {
	tallies := tallyScores(scores, gender)

	rows := make([]AverageRow, 0, len(tallies))
	for _, tally := range tallies {
		played := len(tally.matches)
		if played == 0 {
			continue
		}
		rows = append(rows, AverageRow{
			PlayerID: tally.playerID,
			Player:   tally.player,
			Team:     tally.team,
			Played:   played,
			Average:  float64(tally.pins) / float64(played),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Average != rows[j].Average {
			return rows[i].Average > rows[j].Average
		}
		return rows[i].Played > rows[j].Played
	})

	return truncate(rows, limit)
}

// NinesLeague ranks players by their count of nine-or-better legs: nines hit
// exactly nine pins, spares beat it, and total is their sum. Players with no
// nine-or-better legs are omitted. Rows sort by total descending, spares
// descending, then played ascending, and are truncated after the sort.
func NinesLeague(scores []PlayerScore, limit int) []NinesRow {
	tallies := tallyScores(scores, "")

	rows := make([]NinesRow, 0, len(tallies))
	for _, tally := range tallies {
		total := tally.nines + tally.spares
		if total == 0 {
			continue
		}
		rows = append(rows, NinesRow{
			PlayerID: tally.playerID,
			Player:   tally.player,
			Team:     tally.team,
			Played:   len(tally.matches),
			Nines:    tally.nines,
			Spares:   tally.spares,
			Total:    total,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Total != rows[j].Total {
			return rows[i].Total > rows[j].Total
		}
		if rows[i].Spares != rows[j].Spares {
			return rows[i].Spares > rows[j].Spares
		}
		return rows[i].Played < rows[j].Played
	})

	return truncate(rows, limit)
}

func truncate[T any](rows []T, limit int) []T {
	if limit <= 0 {
		limit = DefaultRankingLimit
	}
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}
