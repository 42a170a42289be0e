package engine

import "sort"

// TeamSeed identifies a team in the league universe. Teams passed to
// BuildStandings appear in the table even with no matches played.
type TeamSeed struct {
	TeamID int64
	Name   string
}

// StandingsRow is one team's line in the league table.
type StandingsRow struct {
	TeamID      int64  `json:"teamId"`
	Team        string `json:"team"`
	Played      int    `json:"played"`
	Won         int    `json:"won"`
	Drawn       int    `json:"drawn"`
	Lost        int    `json:"lost"`
	PinsFor     int    `json:"pinsFor"`
	PinsAgainst int    `json:"pinsAgainst"`
	PinsDiff    int    `json:"pinsDiff"`
	Points      int    `json:"points"`
}

// BuildStandings folds match results into one row per team, seeded with the
// supplied team universe so teams without matches still appear. A match is
// won on points, lost on points, and otherwise drawn — a 6-6 bonus split
// with no leg points either way is a legitimate draw.
//
// Rows are ordered by points descending only. Teams level on points keep the
// stable order of the team universe; no secondary tie-break is applied.
//
// The universe is expected to cover every team appearing in results. A team
// found only in results is still counted but gets an empty Team name,
// appended after the seeded universe.
func BuildStandings(teams []TeamSeed, results []MatchResult) []StandingsRow {
	var order []*StandingsRow
	byTeam := make(map[int64]*StandingsRow)

	row := func(teamID int64, name string) *StandingsRow {
		if r, ok := byTeam[teamID]; ok {
			return r
		}
		r := &StandingsRow{TeamID: teamID, Team: name}
		byTeam[teamID] = r
		order = append(order, r)
		return r
	}

	for _, team := range teams {
		row(team.TeamID, team.Name)
	}

	for _, result := range results {
		home := row(result.HomeTeamID, "")
		away := row(result.AwayTeamID, "")

		home.Played++
		away.Played++
		home.PinsFor += result.HomeTeamPins
		home.PinsAgainst += result.AwayTeamPins
		away.PinsFor += result.AwayTeamPins
		away.PinsAgainst += result.HomeTeamPins
		home.Points += result.HomeTeamPoints
		away.Points += result.AwayTeamPoints

		switch {
		case result.HomeTeamPoints > result.AwayTeamPoints:
			home.Won++
			away.Lost++
		case result.AwayTeamPoints > result.HomeTeamPoints:
			away.Won++
			home.Lost++
		default:
			home.Drawn++
			away.Drawn++
		}
	}

	standings := make([]StandingsRow, 0, len(order))
	for _, r := range order {
		r.PinsDiff = r.PinsFor - r.PinsAgainst
		standings = append(standings, *r)
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Points > standings[j].Points
	})

	return standings
}
