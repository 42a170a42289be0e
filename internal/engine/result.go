package engine

import "fmt"

const (
	winBonusPoints = 6
	tieBonusPoints = 3
)

// MatchResult is the computed outcome of one match: total pins and league
// points per side. A side earns one point per leg won outright, plus a
// six-point bonus for winning on total pins (split three apiece on a tie).
type MatchResult struct {
	MatchID        int64 `json:"matchId"`
	HomeTeamID     int64 `json:"homeTeamId"`
	AwayTeamID     int64 `json:"awayTeamId"`
	HomeTeamPins   int   `json:"homeTeamPins"`
	AwayTeamPins   int   `json:"awayTeamPins"`
	HomeTeamPoints int   `json:"homeTeamPoints"`
	AwayTeamPoints int   `json:"awayTeamPoints"`
}

// ScoreMatch computes the result of one match, leg by leg.
//
// Each of the six legs is summed across a side's roster; the strictly
// greater sum earns one point, and a tied leg earns neither side anything.
// After the sixth leg the side with strictly more total pins takes a
// six-point bonus; equal totals split it three each.
//
// A match with no appearances at all returns ErrEmptyInput. A side with an
// empty roster, or any appearance with fewer than six legs, returns
// ErrIncompleteMatch — missing legs are never scored as zero, since that
// would silently corrupt standings.
func ScoreMatch(m MatchRecord) (MatchResult, error) {
	result := MatchResult{
		MatchID:    m.MatchID,
		HomeTeamID: m.HomeTeamID,
		AwayTeamID: m.AwayTeamID,
	}

	if len(m.Home) == 0 && len(m.Away) == 0 {
		return MatchResult{}, fmt.Errorf("%w: match %d has no appearances", ErrEmptyInput, m.MatchID)
	}
	if len(m.Home) == 0 {
		return MatchResult{}, fmt.Errorf("%w: match %d has an empty home roster", ErrIncompleteMatch, m.MatchID)
	}
	if len(m.Away) == 0 {
		return MatchResult{}, fmt.Errorf("%w: match %d has an empty away roster", ErrIncompleteMatch, m.MatchID)
	}

	homeLegs, err := rosterLegSums(m.MatchID, m.Home)
	if err != nil {
		return MatchResult{}, err
	}
	awayLegs, err := rosterLegSums(m.MatchID, m.Away)
	if err != nil {
		return MatchResult{}, err
	}

	for leg := 0; leg < LegsPerMatch; leg++ {
		result.HomeTeamPins += homeLegs[leg]
		result.AwayTeamPins += awayLegs[leg]
		if homeLegs[leg] > awayLegs[leg] {
			result.HomeTeamPoints++
		} else if awayLegs[leg] > homeLegs[leg] {
			result.AwayTeamPoints++
		}
	}

	switch {
	case result.HomeTeamPins > result.AwayTeamPins:
		result.HomeTeamPoints += winBonusPoints
	case result.AwayTeamPins > result.HomeTeamPins:
		result.AwayTeamPoints += winBonusPoints
	default:
		result.HomeTeamPoints += tieBonusPoints
		result.AwayTeamPoints += tieBonusPoints
	}

	return result, nil
}

// rosterLegSums sums a roster's pins per leg, indexed 0..5 for legs 1..6.
func rosterLegSums(matchID int64, roster []Appearance) ([LegsPerMatch]int, error) {
	var sums [LegsPerMatch]int
	for _, app := range roster {
		if len(app.Legs) < LegsPerMatch {
			return sums, fmt.Errorf("%w: match %d player %d has %d of %d legs",
				ErrIncompleteMatch, matchID, app.PlayerID, len(app.Legs), LegsPerMatch)
		}
		var seen [LegsPerMatch]bool
		for _, leg := range app.Legs {
			if leg.Leg < 1 || leg.Leg > LegsPerMatch {
				return sums, fmt.Errorf("%w: match %d player %d leg %d out of range",
					ErrInvalidScoreData, matchID, app.PlayerID, leg.Leg)
			}
			if seen[leg.Leg-1] {
				return sums, fmt.Errorf("%w: match %d player %d has duplicate leg %d",
					ErrInvalidScoreData, matchID, app.PlayerID, leg.Leg)
			}
			if leg.Pins < 0 {
				return sums, fmt.Errorf("%w: match %d player %d leg %d has negative pins",
					ErrInvalidScoreData, matchID, app.PlayerID, leg.Leg)
			}
			seen[leg.Leg-1] = true
			sums[leg.Leg-1] += leg.Pins
		}
	}
	return sums, nil
}
