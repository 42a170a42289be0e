// Package engine computes match results, league standings, player rankings
// and leaderboard facts from raw per-leg score records. Every entry point is
// a pure function over already-fetched rows; the package performs no I/O and
// keeps no state between calls.
package engine

import (
	"fmt"
	"time"
)

const (
	// LegsPerMatch is the fixed number of scored legs in a completed match.
	LegsPerMatch = 6

	// MaxPosition is the highest roster slot a player can occupy.
	MaxPosition = 8

	// NinePins is the highest single-leg score attainable without a spare.
	NinePins = 9
)

// Gender partitions the averages ranking views. The empty value means
// "no filter".
type Gender string

const (
	GenderMen    Gender = "men"
	GenderLadies Gender = "ladies"
)

// ScoreRow is one stored score joined with its match, appearance, player and
// team context — the raw shape the storage layer feeds the engine.
type ScoreRow struct {
	MatchID      int64
	PlayedAt     time.Time
	HomeTeamID   int64
	HomeTeam     string
	AwayTeamID   int64
	AwayTeam     string
	AppearanceID int64
	PlayerID     int64
	Player       string
	Gender       Gender
	TeamID       int64
	Team         string
	Position     int
	Leg          int
	Pins         int
}

// LegScore is a single scored leg within an appearance.
type LegScore struct {
	Leg  int
	Pins int
}

// Spare reports whether this leg beat the nine-pin ceiling.
func (s LegScore) Spare() bool { return s.Pins > NinePins }

// Nine reports whether this leg hit exactly nine pins.
func (s LegScore) Nine() bool { return s.Pins == NinePins }

// Appearance is one player's slot on one side of a match, with their scores
// ordered by leg.
type Appearance struct {
	AppearanceID int64
	PlayerID     int64
	Player       string
	TeamID       int64
	Position     int
	Legs         []LegScore
}

// MatchRecord is the normalized projection of one match: two rosters of
// appearances with their per-leg scores.
type MatchRecord struct {
	MatchID    int64
	PlayedAt   time.Time
	HomeTeamID int64
	HomeTeam   string
	AwayTeamID int64
	AwayTeam   string
	Home       []Appearance
	Away       []Appearance
}

// PlayerScore is the normalized projection of one (player, leg) score,
// carrying the identity context the ranking and leaderboard views need.
type PlayerScore struct {
	MatchID  int64
	PlayedAt time.Time
	PlayerID int64
	Player   string
	Gender   Gender
	TeamID   int64
	Team     string
	Opponent string
	Leg      int
	Pins     int
}

// Spare reports whether this score beat the nine-pin ceiling.
func (p PlayerScore) Spare() bool { return p.Pins > NinePins }

// Nine reports whether this score hit exactly nine pins.
func (p PlayerScore) Nine() bool { return p.Pins == NinePins }

func validateRow(row ScoreRow) error {
	if row.Leg < 1 || row.Leg > LegsPerMatch {
		return fmt.Errorf("%w: match %d player %d leg %d out of range", ErrInvalidScoreData, row.MatchID, row.PlayerID, row.Leg)
	}
	if row.Pins < 0 {
		return fmt.Errorf("%w: match %d player %d leg %d has negative pins", ErrInvalidScoreData, row.MatchID, row.PlayerID, row.Leg)
	}
	if row.Position < 1 || row.Position > MaxPosition {
		return fmt.Errorf("%w: match %d player %d position %d out of range", ErrInvalidScoreData, row.MatchID, row.PlayerID, row.Position)
	}
	if row.TeamID != row.HomeTeamID && row.TeamID != row.AwayTeamID {
		return fmt.Errorf("%w: match %d player %d plays for team %d which is not in the match", ErrInvalidScoreData, row.MatchID, row.PlayerID, row.TeamID)
	}
	return nil
}

// BuildMatches groups raw score rows into one MatchRecord per match,
// preserving the input order of matches and of appearances within each
// roster. Rows failing the structural invariants return ErrInvalidScoreData;
// completeness (six legs per appearance, non-empty rosters) is checked later
// by ScoreMatch so callers can decide per match whether to skip or abort.
func BuildMatches(rows []ScoreRow) ([]MatchRecord, error) {
	type matchGroup struct {
		record MatchRecord
		home   []*Appearance
		away   []*Appearance
	}

	var order []*matchGroup
	matchIdx := make(map[int64]*matchGroup)
	appIdx := make(map[int64]*Appearance)

	for _, row := range rows {
		if err := validateRow(row); err != nil {
			return nil, err
		}

		group, ok := matchIdx[row.MatchID]
		if !ok {
			group = &matchGroup{record: MatchRecord{
				MatchID:    row.MatchID,
				PlayedAt:   row.PlayedAt,
				HomeTeamID: row.HomeTeamID,
				HomeTeam:   row.HomeTeam,
				AwayTeamID: row.AwayTeamID,
				AwayTeam:   row.AwayTeam,
			}}
			matchIdx[row.MatchID] = group
			order = append(order, group)
		}

		app, ok := appIdx[row.AppearanceID]
		if !ok {
			app = &Appearance{
				AppearanceID: row.AppearanceID,
				PlayerID:     row.PlayerID,
				Player:       row.Player,
				TeamID:       row.TeamID,
				Position:     row.Position,
			}
			appIdx[row.AppearanceID] = app
			if row.TeamID == group.record.AwayTeamID {
				group.away = append(group.away, app)
			} else {
				group.home = append(group.home, app)
			}
		}

		for _, leg := range app.Legs {
			if leg.Leg == row.Leg {
				return nil, fmt.Errorf("%w: match %d player %d has duplicate leg %d", ErrInvalidScoreData, row.MatchID, row.PlayerID, row.Leg)
			}
		}
		app.Legs = append(app.Legs, LegScore{Leg: row.Leg, Pins: row.Pins})
	}

	matches := make([]MatchRecord, 0, len(order))
	for _, group := range order {
		m := group.record
		m.Home = make([]Appearance, 0, len(group.home))
		for _, app := range group.home {
			m.Home = append(m.Home, *app)
		}
		m.Away = make([]Appearance, 0, len(group.away))
		for _, app := range group.away {
			m.Away = append(m.Away, *app)
		}
		matches = append(matches, m)
	}
	return matches, nil
}

// BuildPlayerScores normalizes raw score rows into one PlayerScore per
// (player, leg), the shape the ranking aggregator and leaderboard consume.
// Input order is preserved. A duplicated (appearance, leg) row returns
// ErrInvalidScoreData, matching BuildMatches; rankings never double-count a
// leg.
func BuildPlayerScores(rows []ScoreRow) ([]PlayerScore, error) {
	scores := make([]PlayerScore, 0, len(rows))
	seenLegs := make(map[int64]map[int]bool)
	for _, row := range rows {
		if err := validateRow(row); err != nil {
			return nil, err
		}

		legs, ok := seenLegs[row.AppearanceID]
		if !ok {
			legs = make(map[int]bool, LegsPerMatch)
			seenLegs[row.AppearanceID] = legs
		}
		if legs[row.Leg] {
			return nil, fmt.Errorf("%w: match %d player %d has duplicate leg %d", ErrInvalidScoreData, row.MatchID, row.PlayerID, row.Leg)
		}
		legs[row.Leg] = true

		opponent := row.AwayTeam
		if row.TeamID == row.AwayTeamID {
			opponent = row.HomeTeam
		}
		scores = append(scores, PlayerScore{
			MatchID:  row.MatchID,
			PlayedAt: row.PlayedAt,
			PlayerID: row.PlayerID,
			Player:   row.Player,
			Gender:   row.Gender,
			TeamID:   row.TeamID,
			Team:     row.Team,
			Opponent: opponent,
			Leg:      row.Leg,
			Pins:     row.Pins,
		})
	}
	return scores, nil
}
