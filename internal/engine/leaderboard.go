package engine

import (
	"sort"
	"strings"
	"time"
)

// MatchTotal is one player's aggregate line for one match: the summed score
// plus its best and worst legs and the nine/spare counts.
type MatchTotal struct {
	MatchID    int64     `json:"matchId"`
	PlayedAt   time.Time `json:"playedAt"`
	PlayerID   int64     `json:"playerId"`
	Player     string    `json:"player"`
	Team       string    `json:"team"`
	Opponent   string    `json:"opponent"`
	Gender     Gender    `json:"-"`
	Score      int       `json:"score"`
	HighestLeg int       `json:"highestLeg"`
	LowestLeg  int       `json:"lowestLeg"`
	Nines      int       `json:"nines"`
	Spares     int       `json:"spares"`
}

// MatchTotals folds per-leg scores into one MatchTotal per (player, match),
// optionally filtered to one gender. First-seen order is preserved, so
// callers feeding rows ordered by match date get totals in that order.
func MatchTotals(scores []PlayerScore, gender Gender) []MatchTotal {
	type key struct {
		playerID int64
		matchID  int64
	}

	var order []*MatchTotal
	byKey := make(map[key]*MatchTotal)

	for _, score := range scores {
		if gender != "" && score.Gender != gender {
			continue
		}
		k := key{playerID: score.PlayerID, matchID: score.MatchID}
		total, ok := byKey[k]
		if !ok {
			total = &MatchTotal{
				MatchID:    score.MatchID,
				PlayedAt:   score.PlayedAt,
				PlayerID:   score.PlayerID,
				Player:     score.Player,
				Team:       score.Team,
				Opponent:   score.Opponent,
				Gender:     score.Gender,
				HighestLeg: score.Pins,
				LowestLeg:  score.Pins,
			}
			byKey[k] = total
			order = append(order, total)
		}
		total.Score += score.Pins
		if score.Pins > total.HighestLeg {
			total.HighestLeg = score.Pins
		}
		if score.Pins < total.LowestLeg {
			total.LowestLeg = score.Pins
		}
		if score.Spare() {
			total.Spares++
		} else if score.Nine() {
			total.Nines++
		}
	}

	totals := make([]MatchTotal, 0, len(order))
	for _, total := range order {
		totals = append(totals, *total)
	}
	return totals
}

// HighestTotal returns the match total with the greatest Score. Ties are not
// collected: the first record to reach the maximum keeps it. The second
// return is false when there are no totals.
func HighestTotal(totals []MatchTotal) (MatchTotal, bool) {
	if len(totals) == 0 {
		return MatchTotal{}, false
	}
	best := totals[0]
	for _, total := range totals[1:] {
		if total.Score > best.Score {
			best = total
		}
	}
	return best, true
}

// HighestLeg returns every match total sharing the greatest single-leg
// score: a strictly greater value resets the set, an equal value joins it.
func HighestLeg(totals []MatchTotal) []MatchTotal {
	var leaders []MatchTotal
	for _, total := range totals {
		switch {
		case len(leaders) == 0 || total.HighestLeg > leaders[0].HighestLeg:
			leaders = []MatchTotal{total}
		case total.HighestLeg == leaders[0].HighestLeg:
			leaders = append(leaders, total)
		}
	}
	return leaders
}

// JointHolders renders tied leaders as a sorted, comma-joined list of
// "Player (Team)".
func JointHolders(leaders []MatchTotal) string {
	names := make([]string, 0, len(leaders))
	for _, leader := range leaders {
		names = append(names, leader.Player+" ("+leader.Team+")")
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
